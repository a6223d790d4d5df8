// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import "context"

// Repository defines the data access contract for sets.
type Repository interface {
	// List returns the owner's sets in insertion order, narrowed by filter.
	List(context context.Context, ownerID int64, filter Filter) ([]*Set, error)

	// ListAll returns every set regardless of owner. Admin export only.
	ListAll(context context.Context) ([]*Set, error)

	// FindByID retrieves one owned set, NOT_FOUND "Set doesn't exist" otherwise.
	FindByID(context context.Context, ownerID int64, id string) (*Set, error)

	// Create inserts all sets in one transaction and fills in CreatedAt.
	Create(context context.Context, sets []*Set) error

	// Update applies one change to an owned set.
	Update(context context.Context, ownerID int64, change Change) error

	// UpdateMany applies every change in one transaction; a missing row aborts the batch.
	UpdateMany(context context.Context, ownerID int64, changes []Change) error

	// Delete removes one owned set.
	Delete(context context.Context, ownerID int64, id string) error
}
