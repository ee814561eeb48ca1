package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/meetingmind/backend/services/sso/storage/postgres/ent/user"
)

func (s *storage) CreateUser(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error) {
	log := logger.FromContext(ctx)

	entUser, err := s.User.Create().
		SetName(req.Name).
		SetNillableSurname(req.Surname).
		SetEmail(req.Email).
		SetPasswordHash(req.Password).
		Save(ctx)
	if err != nil {
		log.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Debug("created user", "user_id", entUser.ID)

	return entity.MakeUserEntToEntity(entUser), nil
}

func (s *storage) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	log := logger.FromContext(ctx)

	entUser, err := s.User.Query().
		Where(
			user.Email(email),
		).First(ctx)
	if err != nil {
		log.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return entity.MakeUserEntToEntity(entUser), nil
}

func (s *storage) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	log := logger.FromContext(ctx)

	userUUID, err := uuid.Parse(id)
	if err != nil {
		log.Error("failed to parse user id", "error", err)
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entUser, err := s.User.Query().
		Where(
			user.ID(userUUID),
		).First(ctx)
	if err != nil {
		log.Error("failed to get user by id", "error", err)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return entity.MakeUserEntToEntity(entUser), nil
}
