package storage

import (
	"context"

	"github.com/meetingmind/backend/services/sso/entity"
	"github.com/meetingmind/backend/services/sso/storage/postgres/ent"
)

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateUser(ctx context.Context, req *entity.RegisterRequest) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)

	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	CreateProfile(ctx context.Context, userID string) (*entity.Profile, error)
	SetProfilePro(ctx context.Context, userID string, isPro bool) (*entity.Profile, error)
}

func New(client *ent.Client) Storage {
	return &storage{
		Client: client,
	}
}
