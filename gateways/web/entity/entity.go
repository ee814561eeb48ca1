package entity

type InputKind string

const (
	InputKindAudio InputKind = "audio"
	InputKindText  InputKind = "text"
)

type (
	// ActionItem mirrors the model's output schema. Owner falls back to
	// "Unassigned" and DueDate to "TBD" inside the model prompt, so the values
	// arrive ready for display.
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

	ProcessingError struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}

	Profile struct {
		UserID string `json:"user_id"`
		IsPro  bool   `json:"is_pro"`
	}

	UsageStats struct {
		Used  int  `json:"used"`
		Limit int  `json:"limit"`
		IsPro bool `json:"is_pro"`
	}
)
