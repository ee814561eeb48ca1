package entity

import "time"

type InputKind string

const (
	InputKindAudio InputKind = "audio"
	InputKindText  InputKind = "text"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

type (
	ActionItem struct {
		Owner       string  `json:"owner"`
		Description string  `json:"description"`
		DueDate     *string `json:"due_date"`
	}

	AnalysisResult struct {
		Transcript    string       `json:"transcript"`
		SummaryPoints []string     `json:"summary_points"`
		Decisions     []string     `json:"decisions"`
		ActionItems   []ActionItem `json:"action_items"`
	}

	// Meeting is one analysis request and its lifecycle record. The status is
	// written once: processing rows move to completed or error and stay there.
	Meeting struct {
		ID           string          `json:"id"`
		OwnerUserID  *string         `json:"owner_user_id"`
		Title        string          `json:"title"`
		InputKind    InputKind       `json:"input_kind"`
		Status       Status          `json:"status"`
		Result       *AnalysisResult `json:"result"`
		ErrorMessage *string         `json:"error_message"`
		CreatedAt    time.Time       `json:"created_at"`
	}

	CreateMeetingRequest struct {
		OwnerUserID *string
		Title       string
		InputKind   InputKind
	}
)
