// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

// Repository defines the persistence operations for reviews.
type Repository interface {
	List(context context.Context) ([]*Review, error)
	Get(context context.Context, id int) (*Review, error)
	Exists(context context.Context, id int) (bool, error)
	ListByPokemon(context context.Context, pokemonID int) ([]*Review, error)

	Create(context context.Context, review *Review) error

	// Update rewrites title, text and rating. Pokemon and reviewer stay fixed.
	Update(context context.Context, review *Review) error

	Delete(context context.Context, id int) error

	// DeleteByReviewer removes every review written by reviewerID.
	// It reports dberr.ErrNotSaved when there was nothing to remove.
	DeleteByReviewer(context context.Context, reviewerID int) error
}
