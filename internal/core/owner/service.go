// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package owner

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

const resource = "Owner"

// Service runs the owner guard sequence.
type Service struct {
	repo        Repository
	countries   validate.ExistenceChecker
	pokemonRepo validate.ExistenceChecker
	logger      *slog.Logger
}

// NewService constructs a new [Service]. countries and pokemonRepo back the
// referenced-entity checks.
func NewService(repo Repository, countries, pokemonRepo validate.ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		countries:   countries,
		pokemonRepo: pokemonRepo,
		logger:      logger,
	}
}

// # Lookups

func (service *Service) List(context context.Context) ([]*Owner, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int) (*Owner, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// ListByPokemon returns the owners of a Pokemon, or 404 if the Pokemon is unknown.
func (service *Service) ListByPokemon(context context.Context, pokemonID int) ([]*Owner, error) {
	if err := validate.Found(context, service.pokemonRepo, pokemonID, "Pokemon"); err != nil {
		return nil, err
	}
	return service.repo.ListByPokemon(context, pokemonID)
}

// ListPokemon returns the Pokemon of an owner, or 404 if the owner is unknown.
func (service *Service) ListPokemon(context context.Context, ownerID int) ([]*pokemon.Pokemon, error) {
	if err := validate.Found(context, service.repo, ownerID, resource); err != nil {
		return nil, err
	}
	return service.repo.ListPokemon(context, ownerID)
}

// # Mutations

/*
Create registers an owner living in countryID.

Description: Guards run in order and the first failure wins:
 1. Missing body: 400
 2. Last name already used (trimmed, case-insensitive): 422
 3. Unknown country: 404
 4. Field rules: 400
*/
func (service *Service) Create(context context.Context, countryID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.LastName, func(o *Owner) string { return o.LastName }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Found(context, service.countries, countryID, "Country"); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	owner := FromDTO(*dto)
	owner.CountryID = countryID

	if err := service.repo.Create(context, owner); err != nil {
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "owner_created",
		slog.Int("owner_id", owner.ID),
		slog.Int("country_id", countryID),
	)
	return nil
}

func (service *Service) Update(context context.Context, ownerID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	if err := v.Custom("id", dto.ID != ownerID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, ownerID, resource); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "owner_updated", slog.Int("owner_id", ownerID))
	return nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "owner_deleted", slog.Int("owner_id", id))
	return nil
}
