package reviewer

import (
	"context"

	"github.com/taibuivan/pokereview/internal/core/review"
)

type Repository interface {
	List(context context.Context) ([]*Reviewer, error)
	Get(context context.Context, id int) (*Reviewer, error)
	Exists(context context.Context, id int) (bool, error)
	ListReviews(context context.Context, reviewerID int) ([]*review.Review, error)
	Create(context context.Context, reviewer *Reviewer) error
	Update(context context.Context, reviewer *Reviewer) error

	// Delete removes the reviewer together with every review they wrote.
	Delete(context context.Context, id int) error
}
