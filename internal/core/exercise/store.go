// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise

import "context"

// # Exercise Data Access

// Repository defines the data access contract for exercises.
type Repository interface {

	/*
		List returns the owner's exercises in insertion order, narrowed by filter.
	*/
	List(context context.Context, ownerID int64, filter Filter) ([]*Exercise, error)

	/*
		ListAll returns every exercise regardless of owner. Admin export only.
	*/
	ListAll(context context.Context) ([]*Exercise, error)

	/*
		FindByID retrieves one owned exercise.

		Returns:
		  - error: NOT_FOUND "Exercise doesn't exist"
	*/
	FindByID(context context.Context, ownerID int64, id string) (*Exercise, error)

	/*
		Create inserts all exercises in one transaction and fills in CreatedAt.
	*/
	Create(context context.Context, exercises []*Exercise) error

	/*
		Update applies one change. When the workout changes, the exercise's sets
		follow it in the same transaction.
	*/
	Update(context context.Context, ownerID int64, change Change) error

	/*
		UpdateMany applies every change in one transaction. A missing row aborts
		the whole batch with NOT_FOUND and nothing is written.
	*/
	UpdateMany(context context.Context, ownerID int64, changes []Change) error

	/*
		Delete removes one owned exercise; its sets cascade.
	*/
	Delete(context context.Context, ownerID int64, id string) error
}
