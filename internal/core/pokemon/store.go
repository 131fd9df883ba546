// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the persistence operations for the Pokemon domain.
type Repository interface {
	// List returns every Pokemon ordered by id.
	List(context context.Context) ([]*Pokemon, error)

	// Get returns the Pokemon with id, or dberr.ErrNotFound.
	Get(context context.Context, id int) (*Pokemon, error)

	// Exists reports whether a Pokemon with id is stored.
	Exists(context context.Context, id int) (bool, error)

	// Rating returns the mean review rating, or zero when there are no reviews.
	Rating(context context.Context, id int) (decimal.Decimal, error)

	// Create stores pokemon and links it to the owner and category in one transaction.
	Create(context context.Context, ownerID, categoryID int, pokemon *Pokemon) error

	// Update rewrites the scalar fields and links the owner and category if not yet linked.
	Update(context context.Context, ownerID, categoryID int, pokemon *Pokemon) error

	// Delete removes the Pokemon; its links and reviews go with it.
	Delete(context context.Context, id int) error
}
