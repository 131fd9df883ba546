package reviewer

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/pokereview/internal/core/review"
	"github.com/taibuivan/pokereview/internal/platform/database/schema"
	"github.com/taibuivan/pokereview/internal/platform/dberr"
)

// SQLRepository implements [Repository] with sqlx.
type SQLRepository struct {
	db *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (repository *SQLRepository) List(context context.Context) ([]*Reviewer, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.Select("", schema.Reviewer.Columns()), schema.Reviewer.Table, schema.Reviewer.ID)

	items := make([]*Reviewer, 0)
	if err := repository.db.SelectContext(context, &items, query); err != nil {
		return nil, dberr.Wrap(err, "list_reviewers")
	}
	return items, nil
}

func (repository *SQLRepository) Get(context context.Context, id int) (*Reviewer, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Select("", schema.Reviewer.Columns()), schema.Reviewer.Table, schema.Reviewer.ID))

	reviewer := &Reviewer{}
	if err := repository.db.GetContext(context, reviewer, query, id); err != nil {
		return nil, dberr.Wrap(err, "get_reviewer")
	}
	return reviewer, nil
}

func (repository *SQLRepository) Exists(context context.Context, id int) (bool, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)`,
		schema.Reviewer.Table, schema.Reviewer.ID))

	var exists bool
	if err := repository.db.QueryRowxContext(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("reviewer_exists: %w", err)
	}
	return exists, nil
}

func (repository *SQLRepository) ListReviews(context context.Context, reviewerID int) ([]*review.Review, error) {
	query := repository.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC`,
		schema.Select("", schema.Review.Columns()), schema.Review.Table, schema.Review.ReviewerID, schema.Review.ID))

	items := make([]*review.Review, 0)
	if err := repository.db.SelectContext(context, &items, query, reviewerID); err != nil {
		return nil, dberr.Wrap(err, "list_reviewer_reviews")
	}
	return items, nil
}

func (repository *SQLRepository) Create(context context.Context, reviewer *Reviewer) error {
	query := repository.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?) RETURNING %s`,
		schema.Reviewer.Table, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.ID))

	if err := repository.db.QueryRowxContext(context, query, reviewer.FirstName, reviewer.LastName).Scan(&reviewer.ID); err != nil {
		return fmt.Errorf("create_reviewer: %w", err)
	}
	return nil
}

func (repository *SQLRepository) Update(context context.Context, reviewer *Reviewer) error {
	query := repository.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ? WHERE %s = ?`,
		schema.Reviewer.Table, schema.Reviewer.FirstName, schema.Reviewer.LastName, schema.Reviewer.ID))

	result, err := repository.db.ExecContext(context, query, reviewer.FirstName, reviewer.LastName, reviewer.ID)
	return dberr.Saved(result, err, "update_reviewer")
}

func (repository *SQLRepository) Delete(context context.Context, id int) error {
	query := repository.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		schema.Reviewer.Table, schema.Reviewer.ID))

	result, err := repository.db.ExecContext(context, query, id)
	return dberr.Saved(result, err, "delete_reviewer")
}
