package category

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

const resource = "Category"

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int) (*Category, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// ListPokemon returns every Pokemon in the category.
func (service *Service) ListPokemon(context context.Context, categoryID int) ([]*pokemon.Pokemon, error) {
	if err := validate.Found(context, service.repo, categoryID, resource); err != nil {
		return nil, err
	}
	return service.repo.ListPokemon(context, categoryID)
}

// Create stores a new category unless one with the same name already exists.
func (service *Service) Create(context context.Context, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.Name, func(c *Category) string { return c.Name }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	category := FromDTO(*dto)
	if err := service.repo.Create(context, category); err != nil {
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "category_created", slog.Int("category_id", category.ID))
	return nil
}

func (service *Service) Update(context context.Context, categoryID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	if err := v.Custom("id", dto.ID != categoryID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, categoryID, resource); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "category_updated", slog.Int("category_id", categoryID))
	return nil
}

// Delete removes the category; its Pokemon links are removed with it.
func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "category_deleted", slog.Int("category_id", id))
	return nil
}
