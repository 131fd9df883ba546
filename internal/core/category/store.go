package category

import (
	"context"

	"github.com/taibuivan/pokereview/internal/core/pokemon"
)

type Repository interface {
	List(context context.Context) ([]*Category, error)
	Get(context context.Context, id int) (*Category, error)
	Exists(context context.Context, id int) (bool, error)
	ListPokemon(context context.Context, categoryID int) ([]*pokemon.Pokemon, error)
	Create(context context.Context, category *Category) error
	Update(context context.Context, category *Category) error
	Delete(context context.Context, id int) error
}
