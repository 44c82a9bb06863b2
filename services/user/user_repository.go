package userservice

import (
	"context"
	"database/sql"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type UserRepository interface {
	IsEmailTaken(ctx context.Context, tx *sqlx.Tx, email string) (bool, error)
	InsertUser(ctx context.Context, tx *sqlx.Tx, username, email, passwordHash string) (uuid.UUID, error)
	InsertUserRole(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, role models.Role) error
	HasUserRole(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, role models.Role) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (User, error)
	GetUserRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type PostgresUserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) IsEmailTaken(ctx context.Context, tx *sqlx.Tx, email string) (bool, error) {
	var count int
	err := tx.GetContext(ctx, &count, `
		SELECT count(*) FROM users WHERE email = $1
	`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresUserRepository) InsertUser(ctx context.Context, tx *sqlx.Tx, username, email, passwordHash string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := tx.GetContext(ctx, &userID, `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id
	`, username, email, passwordHash)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return userID, nil
}

func (r *PostgresUserRepository) InsertUserRole(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, role models.Role) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO user_roles (user_id, role, created_at)
		VALUES ($1, $2, now())
	`, userID, role)
	if err != nil {
		return fmt.Errorf("failed to insert user role: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) HasUserRole(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, role models.Role) (bool, error) {
	var count int
	err := tx.GetContext(ctx, &count, `
		SELECT count(*) FROM user_roles WHERE user_id = $1 AND role = $2
	`, userID, role)
	if err != nil {
		return false, fmt.Errorf("failed to check user role: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.DB.GetContext(ctx, &user, `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, errors.Wrap(models.ErrNotFound, "user not found")
		}
		return User{}, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := r.DB.GetContext(ctx, &user, `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, errors.Wrap(models.ErrNotFound, "user not found")
		}
		return User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	roles := make([]string, 0)
	err := r.DB.SelectContext(ctx, &roles, `
		SELECT role FROM user_roles WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user roles: %w", err)
	}
	return roles, nil
}
