package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/meetingmind/backend/services/sso/storage/postgres/ent/profile"
)

func (s *storage) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	log := logger.FromContext(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		log.Error("failed to parse user id", "error", err)
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entProfile, err := s.Profile.Query().
		Where(
			profile.ID(userUUID),
		).First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return entity.MakeProfileEntToEntity(entProfile), nil
}

func (s *storage) CreateProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	log := logger.FromContext(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		log.Error("failed to parse user id", "error", err)
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entProfile, err := s.Profile.Create().
		SetID(userUUID).
		Save(ctx)
	if err != nil {
		log.Error("failed to create profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	log.Debug("created default profile", "user_id", userID)

	return entity.MakeProfileEntToEntity(entProfile), nil
}

func (s *storage) SetProfilePro(ctx context.Context, userID string, isPro bool) (*entity.Profile, error) {
	log := logger.FromContext(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		log.Error("failed to parse user id", "error", err)
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entProfile, err := s.Profile.UpdateOneID(userUUID).
		SetIsPro(isPro).
		Save(ctx)
	if err != nil {
		log.Error("failed to update profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return entity.MakeProfileEntToEntity(entProfile), nil
}
