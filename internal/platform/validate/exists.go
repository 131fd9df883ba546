// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"context"
	"fmt"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
)

// ExistenceChecker is satisfied by every repository that can answer
// "is there a row with this id".
type ExistenceChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Found returns a 404 [apperr.AppError] named after resource when no row with
// id exists, and a 500 when the lookup itself fails.
//
// # Example
//
//	validate.Found(ctx, owners, ownerID, "Owner") // "Owner not found!"
func Found(ctx context.Context, checker ExistenceChecker, id int, resource string) error {
	exists, err := checker.Exists(ctx, id)
	if err != nil {
		return apperr.Internal(fmt.Errorf("check %s %d: %w", resource, id, err))
	}
	if !exists {
		return apperr.NotFound(resource)
	}
	return nil
}
