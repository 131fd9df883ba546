package country

import (
	"context"

	"github.com/taibuivan/pokereview/internal/core/owner"
)

type Repository interface {
	// List returns every country in alphabetical order.
	List(context context.Context) ([]*Country, error)
	Get(context context.Context, id int) (*Country, error)
	Exists(context context.Context, id int) (bool, error)

	// GetByOwner returns the country ownerID lives in, or dberr.ErrNotFound.
	GetByOwner(context context.Context, ownerID int) (*Country, error)

	// ListOwners returns the owners living in countryID.
	ListOwners(context context.Context, countryID int) ([]*owner.Owner, error)

	Create(context context.Context, country *Country) error
	Update(context context.Context, country *Country) error
	Delete(context context.Context, id int) error
}
