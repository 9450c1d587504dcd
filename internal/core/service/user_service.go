package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies name/email changes. An email already owned by another
// account is rejected with domain.ErrAccountExists.
func (s *UserService) UpdateUser(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error) {
	if changes.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	if changes.Email != nil {
		owner, err := s.repo.FindByEmail(ctx, *changes.Email)
		switch {
		case err == nil && owner.ID != id:
			return nil, domain.ErrAccountExists
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	updated, err := s.repo.UpdateFields(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("account updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return nil
}
