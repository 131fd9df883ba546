// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

// resource names the entity in client-facing messages.
const resource = "Pokemon"

// # Service Layer

// Service runs the guard sequence in front of every Pokemon repository call.
//
// Owner and category existence is checked through their own repositories,
// which the caller injects as [validate.ExistenceChecker].
type Service struct {
	repo       Repository
	owners     validate.ExistenceChecker
	categories validate.ExistenceChecker
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, owners, categories validate.ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		owners:     owners,
		categories: categories,
		logger:     logger,
	}
}

// # Lookups

// List returns the whole catalogue.
func (service *Service) List(context context.Context) ([]*Pokemon, error) {
	return service.repo.List(context)
}

/*
Get returns one Pokemon.

Returns:
  - *Pokemon: The stored entity
  - error: 404 "Pokemon not found!" when id is unknown
*/
func (service *Service) Get(context context.Context, id int) (*Pokemon, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

/*
Rating returns the mean of all review ratings for a Pokemon.

Returns:
  - decimal.Decimal: The average, or zero when no review exists
  - error: 404 when id is unknown
*/
func (service *Service) Rating(context context.Context, id int) (decimal.Decimal, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return decimal.Zero, err
	}

	rating, err := service.repo.Rating(context, id)
	if err != nil {
		return decimal.Zero, apperr.Internal(err)
	}
	return rating, nil
}

// # Mutations

/*
Create registers a new Pokemon owned by ownerID in categoryID.

Description: Guards run in order and the first failure wins:
 1. Missing body: 400
 2. Name already used (trimmed, case-insensitive): 422
 3. Field rules: 400

Owner and category are not looked up here. An unknown id makes the join
insert fail, the transaction rolls back, and the call returns 500.
*/
func (service *Service) Create(context context.Context, ownerID, categoryID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.Name, func(p *Pokemon) string { return p.Name }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	pokemon := FromDTO(*dto)
	if err := service.repo.Create(context, ownerID, categoryID, pokemon); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			service.logger.WarnContext(context, "pokemon_create_reference_missing",
				slog.Int("owner_id", ownerID),
				slog.Int("category_id", categoryID),
			)
		}
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "pokemon_created",
		slog.Int("pokemon_id", pokemon.ID),
		slog.Int("owner_id", ownerID),
		slog.Int("category_id", categoryID),
	)
	return nil
}

/*
Update rewrites Pokemon pokemonID and ensures it is linked to ownerID and categoryID.

Description: Guards run in order and the first failure wins:
 1. Missing body, ownerId or catId: 400
 2. Body id differs from pokemonID: 400
 3. Unknown Pokemon, Owner, then Category: 404 each
 4. Field rules: 400
*/
func (service *Service) Update(context context.Context, pokemonID, ownerID, categoryID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	v.Positive("ownerId", ownerID).Positive("catId", categoryID)
	if err := v.Err(); err != nil {
		return err
	}

	if err := v.Custom("id", dto.ID != pokemonID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, pokemonID, resource); err != nil {
		return err
	}
	if err := validate.Found(context, service.owners, ownerID, "Owner"); err != nil {
		return err
	}
	if err := validate.Found(context, service.categories, categoryID, "Category"); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, ownerID, categoryID, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "pokemon_updated", slog.Int("pokemon_id", pokemonID))
	return nil
}

// Delete removes a Pokemon together with its links and reviews.
func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "pokemon_deleted", slog.Int("pokemon_id", id))
	return nil
}
