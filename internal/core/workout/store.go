// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workout

import "context"

// # Workout Data Access

// Repository defines the data access contract for workouts.
//
// Every owner-scoped method treats a row owned by someone else exactly like a
// missing row.
type Repository interface {

	/*
		List returns the owner's workouts in insertion order.
	*/
	List(context context.Context, ownerID int64) ([]*Workout, error)

	/*
		ListAll returns every workout regardless of owner. Admin export only.
	*/
	ListAll(context context.Context) ([]*Workout, error)

	/*
		FindByID retrieves one owned workout.

		Returns:
		  - error: NOT_FOUND "Workout doesn't exist"
	*/
	FindByID(context context.Context, ownerID int64, id string) (*Workout, error)

	/*
		Create inserts all workouts in one transaction and fills in CreatedAt.
	*/
	Create(context context.Context, workouts []*Workout) error

	/*
		Update applies the non-nil patch fields to one owned workout.
	*/
	Update(context context.Context, ownerID int64, id string, patch Patch) error

	/*
		Delete removes one owned workout; its exercises and sets cascade.
	*/
	Delete(context context.Context, ownerID int64, id string) error
}
