// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/core/category"
	"github.com/taibuivan/pokereview/internal/core/country"
	"github.com/taibuivan/pokereview/internal/core/owner"
	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/core/review"
	"github.com/taibuivan/pokereview/internal/core/reviewer"
)

// NewHandlers builds every repository, service and handler on the shared db.
//
// Repositories double as the existence checkers other services depend on.
func NewHandlers(db *sqlx.DB, deps HealthDependencies, log *slog.Logger) Handlers {
	pokemonRepository := pokemon.NewSQLRepository(db)
	categoryRepository := category.NewSQLRepository(db)
	countryRepository := country.NewSQLRepository(db)
	ownerRepository := owner.NewSQLRepository(db)
	reviewRepository := review.NewSQLRepository(db)
	reviewerRepository := reviewer.NewSQLRepository(db)

	liveness, readiness := NewHealthHandlers(deps, log)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,

		Pokemon:  pokemon.NewHandler(pokemon.NewService(pokemonRepository, ownerRepository, categoryRepository, log)),
		Category: category.NewHandler(category.NewService(categoryRepository, log)),
		Country:  country.NewHandler(country.NewService(countryRepository, ownerRepository, log)),
		Owner:    owner.NewHandler(owner.NewService(ownerRepository, countryRepository, pokemonRepository, log)),
		Review:   review.NewHandler(review.NewService(reviewRepository, reviewerRepository, pokemonRepository, log)),
		Reviewer: reviewer.NewHandler(reviewer.NewService(reviewerRepository, log)),
	}
}
