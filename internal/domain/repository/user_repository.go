package repository

import (
	"context"
	"errors"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
	"github.com/xpnews/xpnews-backend/pkg/pagination"
)

// ErrIntegrityViolation is returned by Save and Delete when the store rejects
// a write because of a uniqueness or referential constraint. The caller must
// not assume which constraint was violated.
var ErrIntegrityViolation = errors.New("integrity violation")

// UserRepository is the persistence gateway for the users table.
//
// Lookups return (nil, nil) when no row matches: absence is a normal result,
// not an error.
type UserRepository interface {
	// Save inserts u when its ID is zero, otherwise updates the matching row.
	// On insert the assigned identifier is written back into u.
	Save(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Delete removes the row matching u.ID.
	Delete(ctx context.Context, u *entity.User) error
	// FindAllPageable returns one page of projections in primary-key order,
	// together with the total element and page counts.
	FindAllPageable(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[entity.UserProjection], error)
}
