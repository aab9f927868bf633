package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mader-backend/internal/domains/user/model"
	"mader-backend/pkg/database"
)

const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

type postgresRepository struct {
	db database.DBTX
}

// NewPostgresRepository creates a user repository backed by PostgreSQL
func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (email, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, email, username, password
	`

	created, err := scanUser(r.db.QueryRow(ctx, query, u.Email, u.Username, u.Password))
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, email, username, password FROM users WHERE id = $1`
	return r.findOne(ctx, "id", query, id)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, username, password FROM users WHERE email = $1`
	return r.findOne(ctx, "email", query, email)
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, email, username, password FROM users WHERE username = $1`
	return r.findOne(ctx, "username", query, username)
}

func (r *postgresRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		UPDATE users
		SET email = $1, username = $2, password = $3
		WHERE id = $4
		RETURNING id, email, username, password
	`

	updated, err := scanUser(r.db.QueryRow(ctx, query, u.Email, u.Username, u.Password, u.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		if conflict := uniqueConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) findOne(ctx context.Context, by, query string, arg any) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", by, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password); err != nil {
		return nil, err
	}
	return &u, nil
}

// uniqueConflict maps a unique violation to the matching domain error
func uniqueConflict(err error) error {
	constraint, ok := database.ConstraintViolation(err, database.CodeUniqueViolation)
	if !ok {
		return nil
	}

	switch constraint {
	case usernameConstraint:
		return model.ErrUsernameExists.Wrap(err)
	case emailConstraint:
		return model.ErrEmailExists.Wrap(err)
	default:
		return model.ErrUserConflict.Wrap(err)
	}
}
