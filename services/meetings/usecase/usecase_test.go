package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/meetingmind/backend/services/meetings/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	meetings map[string]*entity.Meeting
	countErr error
	since    time.Time
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{meetings: make(map[string]*entity.Meeting)}
}

func (f *fakeStorage) CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	m := &entity.Meeting{
		ID:          fmt.Sprintf("meeting-%d", len(f.meetings)+1),
		OwnerUserID: req.OwnerUserID,
		Title:       req.Title,
		InputKind:   req.InputKind,
		Status:      entity.StatusProcessing,
		CreatedAt:   time.Now(),
	}
	f.meetings[m.ID] = m
	return m, nil
}

func (f *fakeStorage) GetMeeting(ctx context.Context, id string) (*entity.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, fmt.Errorf("meeting not found")
	}
	return m, nil
}

func (f *fakeStorage) MarkMeetingCompleted(ctx context.Context, id string, result *entity.AnalysisResult) (int, error) {
	m, ok := f.meetings[id]
	if !ok || m.Status != entity.StatusProcessing {
		return 0, nil
	}
	m.Status = entity.StatusCompleted
	m.Result = result
	return 1, nil
}

func (f *fakeStorage) MarkMeetingError(ctx context.Context, id string, message string) (int, error) {
	m, ok := f.meetings[id]
	if !ok || m.Status != entity.StatusProcessing {
		return 0, nil
	}
	m.Status = entity.StatusError
	m.ErrorMessage = &message
	return 1, nil
}

func (f *fakeStorage) CountMeetingsSince(ctx context.Context, ownerUserID string, since time.Time) (int, error) {
	f.since = since
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, m := range f.meetings {
		if m.OwnerUserID != nil && *m.OwnerUserID == ownerUserID && !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func TestCreateMeeting_DefaultTitle(t *testing.T) {
	stg := newFakeStorage()
	usc := New(stg)

	m, err := usc.CreateMeeting(context.Background(), &entity.CreateMeetingRequest{
		InputKind: entity.InputKindText,
	})
	require.NoError(t, err)
	assert.Contains(t, m.Title, "Meeting - ")
}

func TestCompleteMeeting(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(stg)

	m, err := usc.CreateMeeting(ctx, &entity.CreateMeetingRequest{
		Title:     "standup",
		InputKind: entity.InputKindAudio,
	})
	require.NoError(t, err)

	due := "Friday"
	result := &entity.AnalysisResult{
		Transcript:    "hello",
		SummaryPoints: []string{"A", "B"},
		Decisions:     []string{"ship it"},
		ActionItems: []entity.ActionItem{
			{Owner: "Bob", Description: "Follow up", DueDate: &due},
		},
	}
	require.NoError(t, usc.CompleteMeeting(ctx, m.ID, result))

	got, err := usc.GetMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)
	assert.Equal(t, result, got.Result)
}

func TestCompleteMeeting_WriteOnce(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(stg)

	m, err := usc.CreateMeeting(ctx, &entity.CreateMeetingRequest{
		Title:     "standup",
		InputKind: entity.InputKindText,
	})
	require.NoError(t, err)

	require.NoError(t, usc.FailMeeting(ctx, m.ID, "model unavailable"))

	// A finalized row must reject further transitions, in either direction.
	err = usc.CompleteMeeting(ctx, m.ID, &entity.AnalysisResult{Transcript: "x"})
	assert.Error(t, err)
	err = usc.FailMeeting(ctx, m.ID, "again")
	assert.Error(t, err)

	got, err := usc.GetMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusError, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "model unavailable", *got.ErrorMessage)
}

func TestFailMeeting_BlankMessageGetsFallback(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(stg)

	m, err := usc.CreateMeeting(ctx, &entity.CreateMeetingRequest{
		Title:     "standup",
		InputKind: entity.InputKindText,
	})
	require.NoError(t, err)

	require.NoError(t, usc.FailMeeting(ctx, m.ID, ""))

	got, err := usc.GetMeeting(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMessage)
	assert.NotEmpty(t, *got.ErrorMessage)
}

func TestCountMonthlyMeetings_WindowStartsAtMonthBoundary(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	usc := New(stg)

	_, err := usc.CountMonthlyMeetings(ctx, "user-1")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), stg.since.Year())
	assert.Equal(t, now.Month(), stg.since.Month())
	assert.Equal(t, 1, stg.since.Day())
	assert.Zero(t, stg.since.Hour())
	assert.Zero(t, stg.since.Minute())
}

func TestCountMonthlyMeetings_FailsOpen(t *testing.T) {
	ctx := context.Background()
	stg := newFakeStorage()
	stg.countErr = fmt.Errorf("db down")
	usc := New(stg)

	count, err := usc.CountMonthlyMeetings(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMonthStart(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	at := time.Date(2026, time.August, 29, 17, 45, 12, 0, loc)

	start := monthStart(at)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, loc), start)
}
