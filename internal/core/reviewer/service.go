package reviewer

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokereview/internal/core/review"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

const resource = "Reviewer"

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

func (service *Service) List(context context.Context) ([]*Reviewer, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int) (*Reviewer, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// ListReviews returns every review written by the reviewer.
func (service *Service) ListReviews(context context.Context, reviewerID int) ([]*review.Review, error) {
	if err := validate.Found(context, service.repo, reviewerID, resource); err != nil {
		return nil, err
	}
	return service.repo.ListReviews(context, reviewerID)
}

// Create stores a reviewer unless one with the same last name already exists.
func (service *Service) Create(context context.Context, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.LastName, func(r *Reviewer) string { return r.LastName }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	reviewer := FromDTO(*dto)
	if err := service.repo.Create(context, reviewer); err != nil {
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "reviewer_created", slog.Int("reviewer_id", reviewer.ID))
	return nil
}

func (service *Service) Update(context context.Context, reviewerID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	if err := v.Custom("id", dto.ID != reviewerID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, reviewerID, resource); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "reviewer_updated", slog.Int("reviewer_id", reviewerID))
	return nil
}

func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "reviewer_deleted", slog.Int("reviewer_id", id))
	return nil
}
