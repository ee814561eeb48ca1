package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/meetings/entity"
	"github.com/meetingmind/backend/services/meetings/storage"
)

// CountFailsOpen keeps the usage query permissive: a failed count reports zero
// used analyses instead of blocking the user. Flip to fail closed.
const CountFailsOpen = true

const fallbackErrorMessage = "processing failed"

type Usecase interface {
	CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error)
	CompleteMeeting(ctx context.Context, id string, result *entity.AnalysisResult) error
	FailMeeting(ctx context.Context, id string, message string) error
	GetMeeting(ctx context.Context, id string) (*entity.Meeting, error)
	CountMonthlyMeetings(ctx context.Context, ownerUserID string) (int, error)
}

type usecase struct {
	storage storage.Storage
}

func New(storage storage.Storage) Usecase {
	return &usecase{
		storage: storage,
	}
}

func (u *usecase) CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	if req.Title == "" {
		req.Title = fmt.Sprintf("Meeting - %s", time.Now().Format("Jan 2, 2006 15:04"))
	}

	return u.storage.CreateMeeting(ctx, req)
}

func (u *usecase) CompleteMeeting(ctx context.Context, id string, result *entity.AnalysisResult) error {
	if result == nil {
		return fmt.Errorf("meeting %s: missing analysis result", id)
	}

	n, err := u.storage.MarkMeetingCompleted(ctx, id, result)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("meeting %s is already finalized", id)
	}

	return nil
}

func (u *usecase) FailMeeting(ctx context.Context, id string, message string) error {
	if message == "" {
		message = fallbackErrorMessage
	}

	n, err := u.storage.MarkMeetingError(ctx, id, message)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("meeting %s is already finalized", id)
	}

	return nil
}

func (u *usecase) GetMeeting(ctx context.Context, id string) (*entity.Meeting, error) {
	return u.storage.GetMeeting(ctx, id)
}

func (u *usecase) CountMonthlyMeetings(ctx context.Context, ownerUserID string) (int, error) {
	count, err := u.storage.CountMeetingsSince(ctx, ownerUserID, monthStart(time.Now()))
	if err != nil {
		if CountFailsOpen {
			logger.FromContext(ctx).Warn("usage count failed, reporting zero", "error", err, "owner", ownerUserID)
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// monthStart returns the first instant of the calendar month containing t.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
