package country

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokereview/internal/core/owner"
	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

const resource = "Country"

// Service runs the country guard sequence. GetByOwner checks the owner
// through the injected checker first.
type Service struct {
	repo   Repository
	owners validate.ExistenceChecker
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, owners validate.ExistenceChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		logger: logger,
	}
}

func (service *Service) List(context context.Context) ([]*Country, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int) (*Country, error) {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// GetByOwner returns the country an owner lives in.
func (service *Service) GetByOwner(context context.Context, ownerID int) (*Country, error) {
	if err := validate.Found(context, service.owners, ownerID, "Owner"); err != nil {
		return nil, err
	}

	country, err := service.repo.GetByOwner(context, ownerID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound(resource)
		}
		return nil, err
	}
	return country, nil
}

func (service *Service) ListOwners(context context.Context, countryID int) ([]*owner.Owner, error) {
	if err := validate.Found(context, service.repo, countryID, resource); err != nil {
		return nil, err
	}
	return service.repo.ListOwners(context, countryID)
}

func (service *Service) Create(context context.Context, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	existing, err := service.repo.List(context)
	if err != nil {
		return apperr.Internal(err)
	}
	if validate.ContainsName(existing, dto.Name, func(c *Country) string { return c.Name }) {
		return apperr.AlreadyExists(resource)
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	country := FromDTO(*dto)
	if err := service.repo.Create(context, country); err != nil {
		return apperr.SaveFailed("saving", err)
	}

	service.logger.InfoContext(context, "country_created", slog.Int("country_id", country.ID))
	return nil
}

func (service *Service) Update(context context.Context, countryID int, dto *DTO) error {
	if dto == nil {
		return validate.ErrBodyRequired
	}

	v := &validate.Validator{}
	if err := v.Custom("id", dto.ID != countryID, "Must match the identifier in the path").Err(); err != nil {
		return err
	}

	if err := validate.Found(context, service.repo, countryID, resource); err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return err
	}

	if err := service.repo.Update(context, FromDTO(*dto)); err != nil {
		return apperr.SaveFailed("updating", err)
	}

	service.logger.InfoContext(context, "country_updated", slog.Int("country_id", countryID))
	return nil
}

// Delete removes a country. Storage refuses while owners still reference it,
// which surfaces as a 500.
func (service *Service) Delete(context context.Context, id int) error {
	if err := validate.Found(context, service.repo, id, resource); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return apperr.SaveFailed("deleting", err)
	}

	service.logger.InfoContext(context, "country_deleted", slog.Int("country_id", id))
	return nil
}
