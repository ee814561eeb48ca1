package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/meetings/entity"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

func (s *storage) CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error) {
	log := logger.FromContext(ctx)

	create := s.Meeting.Create().
		SetTitle(req.Title).
		SetInputKind(meeting.InputKind(req.InputKind))

	if req.OwnerUserID != nil {
		ownerUUID, err := uuid.Parse(*req.OwnerUserID)
		if err != nil {
			log.Error("failed to parse owner id", "error", err)
			return nil, fmt.Errorf("failed to parse owner id: %w", err)
		}
		create = create.SetOwnerUserID(ownerUUID)
	}

	entMeeting, err := create.Save(ctx)
	if err != nil {
		log.Error("failed to create meeting", "error", err)
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	log.Debug("created meeting", "meeting_id", entMeeting.ID, "input_kind", req.InputKind)

	return makeMeetingEntToEntity(entMeeting), nil
}

func (s *storage) GetMeeting(ctx context.Context, id string) (*entity.Meeting, error) {
	log := logger.FromContext(ctx)

	meetingUUID, err := uuid.Parse(id)
	if err != nil {
		log.Error("failed to parse meeting id", "error", err)
		return nil, fmt.Errorf("failed to parse meeting id: %w", err)
	}

	entMeeting, err := s.Meeting.Query().
		Where(
			meeting.ID(meetingUUID),
		).First(ctx)
	if err != nil {
		log.Error("failed to get meeting", "error", err)
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return makeMeetingEntToEntity(entMeeting), nil
}

func (s *storage) MarkMeetingCompleted(ctx context.Context, id string, result *entity.AnalysisResult) (int, error) {
	log := logger.FromContext(ctx)

	meetingUUID, err := uuid.Parse(id)
	if err != nil {
		log.Error("failed to parse meeting id", "error", err)
		return 0, fmt.Errorf("failed to parse meeting id: %w", err)
	}

	items := make([]schema.ActionItem, len(result.ActionItems))
	for i, item := range result.ActionItems {
		items[i] = schema.ActionItem(item)
	}

	n, err := s.Meeting.Update().
		Where(
			meeting.ID(meetingUUID),
			meeting.StatusEQ(meeting.StatusProcessing),
		).
		SetStatus(meeting.StatusCompleted).
		SetTranscript(result.Transcript).
		SetSummaryPoints(result.SummaryPoints).
		SetDecisions(result.Decisions).
		SetActionItems(items).
		Save(ctx)
	if err != nil {
		log.Error("failed to mark meeting completed", "error", err)
		return 0, fmt.Errorf("failed to mark meeting completed: %w", err)
	}

	return n, nil
}

func (s *storage) MarkMeetingError(ctx context.Context, id string, message string) (int, error) {
	log := logger.FromContext(ctx)

	meetingUUID, err := uuid.Parse(id)
	if err != nil {
		log.Error("failed to parse meeting id", "error", err)
		return 0, fmt.Errorf("failed to parse meeting id: %w", err)
	}

	n, err := s.Meeting.Update().
		Where(
			meeting.ID(meetingUUID),
			meeting.StatusEQ(meeting.StatusProcessing),
		).
		SetStatus(meeting.StatusError).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		log.Error("failed to mark meeting error", "error", err)
		return 0, fmt.Errorf("failed to mark meeting error: %w", err)
	}

	return n, nil
}

func (s *storage) CountMeetingsSince(ctx context.Context, ownerUserID string, since time.Time) (int, error) {
	log := logger.FromContext(ctx)

	ownerUUID, err := uuid.Parse(ownerUserID)
	if err != nil {
		log.Error("failed to parse owner id", "error", err)
		return 0, fmt.Errorf("failed to parse owner id: %w", err)
	}

	count, err := s.Meeting.Query().
		Where(
			meeting.OwnerUserID(ownerUUID),
			meeting.CreatedAtGTE(since),
		).Count(ctx)
	if err != nil {
		log.Error("failed to count meetings", "error", err)
		return 0, fmt.Errorf("failed to count meetings: %w", err)
	}

	return count, nil
}

func makeMeetingEntToEntity(m *ent.Meeting) *entity.Meeting {
	var owner *string
	if m.OwnerUserID != nil {
		id := m.OwnerUserID.String()
		owner = &id
	}

	out := &entity.Meeting{
		ID:           m.ID.String(),
		OwnerUserID:  owner,
		Title:        m.Title,
		InputKind:    entity.InputKind(m.InputKind),
		Status:       entity.Status(m.Status),
		ErrorMessage: m.ErrorMessage,
		CreatedAt:    m.CreatedAt,
	}

	if m.Status == meeting.StatusCompleted {
		items := make([]entity.ActionItem, len(m.ActionItems))
		for i, item := range m.ActionItems {
			items[i] = entity.ActionItem(item)
		}
		out.Result = &entity.AnalysisResult{
			Transcript:    m.Transcript,
			SummaryPoints: m.SummaryPoints,
			Decisions:     m.Decisions,
			ActionItems:   items,
		}
	}

	return out
}
