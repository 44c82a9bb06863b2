package userservice

import (
	"context"
	"fmt"
	"strings"

	"workorder/models"
	middlewareprovider "workorder/providers/middlewareprovider"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req RegisterUserReq) (uuid.UUID, error)
	Login(ctx context.Context, req LoginReq) (AuthTokensRes, error)
	AssignRole(ctx context.Context, req AssignRoleReq) error
	GetProfile(ctx context.Context, userID uuid.UUID) (UserProfileRes, error)
}

type userService struct {
	repo UserRepository
	db   *sqlx.DB
}

func NewUserService(repo UserRepository, db *sqlx.DB) UserService {
	return &userService{repo: repo, db: db}
}

// Register creates a user with the default User role. Everyone starts as a
// plain requester; Technician and Manager are granted separately.
func (s *userService) Register(ctx context.Context, req RegisterUserReq) (userID uuid.UUID, err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	taken, err := s.repo.IsEmailTaken(ctx, tx, email)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		err = errors.Wrap(models.ErrConflict, "email already registered")
		return uuid.Nil, err
	}

	userID, err = s.repo.InsertUser(ctx, tx, req.Username, email, string(hash))
	if err != nil {
		return uuid.Nil, err
	}
	if err = s.repo.InsertUserRole(ctx, tx, userID, models.UserRole); err != nil {
		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return userID, nil
}

func (s *userService) Login(ctx context.Context, req LoginReq) (AuthTokensRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return AuthTokensRes{}, errors.Wrap(models.ErrForbidden, "invalid credentials")
		}
		return AuthTokensRes{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return AuthTokensRes{}, errors.Wrap(models.ErrForbidden, "invalid credentials")
	}

	roles, err := s.repo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return AuthTokensRes{}, err
	}

	accessToken, err := middlewareprovider.GenerateJWT(user.ID.String(), roles)
	if err != nil {
		return AuthTokensRes{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := middlewareprovider.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return AuthTokensRes{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return AuthTokensRes{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// AssignRole grants an additional role to a user. Role gating is enforced at
// the route level; duplicates are a conflict.
func (s *userService) AssignRole(ctx context.Context, req AssignRoleReq) (err error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errors.Wrap(models.ErrValidation, "invalid user id")
	}
	role := models.Role(req.Role)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	has, err := s.repo.HasUserRole(ctx, tx, userID, role)
	if err != nil {
		return err
	}
	if has {
		err = errors.Wrap(models.ErrConflict, "user already has this role")
		return err
	}
	if err = s.repo.InsertUserRole(ctx, tx, userID, role); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (UserProfileRes, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return UserProfileRes{}, err
	}
	roles, err := s.repo.GetUserRoles(ctx, userID)
	if err != nil {
		return UserProfileRes{}, err
	}
	return UserProfileRes{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}, nil
}
