// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

const resource = "Review"

// # Service Layer

// Service runs the review guard sequence. Reviewer and Pokemon existence is
// checked through the injected repositories.
type Service struct {
	repo      Repository
	reviewers validate.ExistenceChecker
	pokemon   validate.ExistenceChecker
	logger    *slog.Logger
}

// NewService constructs a new [Service]. reviewers and pokemon back the
// referenced-entity checks.
func NewService(repo Repository, reviewers, pokemon validate.ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		reviewers: reviewers,
		pokemon:   pokemon,
		logger:    logger,
	}
}

// # Lookups

func (service *Service) List(context context.Context) ([]*Review, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int) (*Review, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// ListByPokemon returns the reviews of a Pokemon, or 404 if it is unknown.
func (service *Service) ListByPokemon(context context.Context, pokemonID int) ([]*Review, error) {
	if err := validate.Found(context, service.pokemon, pokemonID, "Pokemon"); err != nil {
		return nil, err
	}
	return service.repo.ListByPokemon(context, pokemonID)
}

// # Mutations

/*
Create stores a review of pokemonID written by reviewerID.

Description: Guards run in order and the first failure wins:
 1. Missing body: 400
 2. Title already used (trimmed, case-insensitive): 422
 3. Unknown reviewer, then unknown Pokemon: 404 each
 4. Field rules: 400
*/
func (service *Service) Create(context context.Context, reviewerID, pokemonID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.Title, func(r *Review) string { return r.Title }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Found(context, service.reviewers, reviewerID, "Reviewer"); err != nil {
		return err
	}
	if err := validate.Found(context, service.pokemon, pokemonID, "Pokemon"); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	review := FromDTO(*dto)
	review.ReviewerID = reviewerID
	review.PokemonID = pokemonID

	if err := service.repo.Create(context, review); err != nil {
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "review_created",
		slog.Int("review_id", review.ID),
		slog.Int("reviewer_id", reviewerID),
		slog.Int("pokemon_id", pokemonID),
	)
	return nil
}

func (service *Service) Update(context context.Context, reviewID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	if err := v.Custom("id", dto.ID != reviewID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, reviewID, resource); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "review_updated", slog.Int("review_id", reviewID))
	return nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "review_deleted", slog.Int("review_id", id))
	return nil
}

// DeleteByReviewer removes every review a reviewer wrote. A reviewer without
// reviews yields the same 500 as any other mutation that changed nothing.
func (service *Service) DeleteByReviewer(context context.Context, reviewerID int) error {
	if err := validate.Found(context, service.reviewers, reviewerID, "Reviewer"); err != nil {
		return err
	}

	if err := service.repo.DeleteByReviewer(context, reviewerID); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "reviewer_reviews_deleted", slog.Int("reviewer_id", reviewerID))
	return nil
}
