package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
	"github.com/xpnews/xpnews-backend/internal/domain/repository"
	"github.com/xpnews/xpnews-backend/pkg/pagination"
)

// SQLSTATE classes translated into the gateway's integrity error.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Constraints that signal a duplicate user. Other integrity failures are not
// conflated with duplicates and surface as plain errors.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save inserts when the identifier is unset and updates otherwise. The unique
// constraints on username and email are the single source of truth for
// duplicates; a violation surfaces as repository.ErrIntegrityViolation.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	if u.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO users (full_name, username, email, password, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`, u.FullName, u.Username, u.Email, u.Password, string(u.Role))
		if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return translateUniqueViolation(err)
		}
		return nil
	}

	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET full_name = $1, username = $2, email = $3, password = $4, role = $5, updated_at = $6
		WHERE id = $7
	`, u.FullName, u.Username, u.Email, u.Password, string(u.Role), u.UpdatedAt, u.ID)
	if err != nil {
		return translateUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var role string

	row := r.pool.QueryRow(ctx, `
		SELECT id, full_name, username, email, password, role, created_at, updated_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Password,
		&role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence is a normal result, not an error.
			return nil, nil
		}
		return nil, err
	}
	u.Role = entity.Role(role)

	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return repository.ErrIntegrityViolation
		}
		return err
	}
	return nil
}

// FindAllPageable slices the user table in primary-key order and reports the
// totals the slice was taken from.
func (r *UserRepository) FindAllPageable(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[entity.UserProjection], error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, username, role
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, pageable.Size, pageable.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	content := make([]entity.UserProjection, 0, pageable.Size)
	for rows.Next() {
		var p entity.UserProjection
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Username, &p.Role); err != nil {
			return nil, err
		}
		content = append(content, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pagination.NewPage(content, pageable, total), nil
}

// translateUniqueViolation reports ErrIntegrityViolation only for the
// username/email unique constraints, so an unrelated integrity failure is not
// mistaken for a duplicate user.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case usernameConstraint, emailConstraint:
			return repository.ErrIntegrityViolation
		}
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
