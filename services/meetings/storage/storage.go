package storage

import (
	"context"
	"time"

	"github.com/meetingmind/backend/services/meetings/entity"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent"
)

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*entity.Meeting, error)
	// MarkMeetingCompleted and MarkMeetingError only touch rows still in
	// processing status; both report how many rows matched.
	MarkMeetingCompleted(ctx context.Context, id string, result *entity.AnalysisResult) (int, error)
	MarkMeetingError(ctx context.Context, id string, message string) (int, error)
	CountMeetingsSince(ctx context.Context, ownerUserID string, since time.Time) (int, error)
}

func New(client *ent.Client) Storage {
	return &storage{
		Client: client,
	}
}
