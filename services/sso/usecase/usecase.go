package usecase

import (
	"context"
	"fmt"

	config "github.com/meetingmind/backend/config/sso"
	"github.com/meetingmind/backend/pkg/jwt"
	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/meetingmind/backend/services/sso/storage"
	"golang.org/x/crypto/bcrypt"
)

type usecase struct {
	cfg     *config.Config
	Storage storage.Storage
}

type Usecase interface {
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpgradeProfile(ctx context.Context, userID string) (*entity.Profile, error)
}

func New(cfg *config.Config, storage storage.Storage) Usecase {
	return &usecase{
		cfg:     cfg,
		Storage: storage,
	}
}

func (u *usecase) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	user, err := u.Storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	token, err := jwt.Generate(ctx, user.ID, u.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token: token,
	}, nil
}

func (u *usecase) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	req.Password = string(passwordHash)

	user, err := u.Storage.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(ctx, user.ID, u.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &entity.RegisterResponse{
		Token: token,
	}, nil
}

func (u *usecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.Storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetProfile is a self-healing read: a missing row is created with free-tier
// defaults, and if the create fails too a default profile is synthesized in
// memory. Profile absence never blocks a session.
func (u *usecase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := u.Storage.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	log.Debug("profile not found, creating default", "user_id", userID, "error", err)

	profile, err = u.Storage.CreateProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	log.Warn("failed to create default profile, synthesizing one", "user_id", userID, "error", err)

	return &entity.Profile{
		UserID: userID,
		IsPro:  false,
	}, nil
}

// UpgradeProfile flips the pro flag. There is no payment verification here:
// this is the simulated checkout, and a production deployment must gate the
// flip behind a payment-provider callback.
func (u *usecase) UpgradeProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	// Heals a missing row first so the update has something to hit.
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.Storage.SetProfilePro(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
