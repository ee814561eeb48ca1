package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/meetingmind/backend/gateways/web/entity"
)

type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
	StateError      State = "error"
	StatePricing    State = "pricing"
)

// FailOpen keeps profile and usage lookups permissive: a failed read yields a
// free-tier profile and zero usage instead of blocking session establishment.
// Flip to fail closed.
const FailOpen = true

const (
	errorTitle          = "Processing Failed"
	sizeGuidanceMessage = "The file is too large or invalid for the API. Please try a shorter recording (under 10MB) or check the file format."
	genericAudioMessage = "We couldn't process this meeting audio. Please ensure the file is valid and try again."
	genericTextMessage  = "We couldn't process the transcript. Please try again."
)

type AnalysisClient interface {
	AnalyzeAudio(ctx context.Context, data []byte, filename, declaredType string) (*entity.AnalysisResult, error)
	AnalyzeText(ctx context.Context, transcript string) (*entity.AnalysisResult, error)
}

type MeetingStore interface {
	CreateMeeting(ctx context.Context, ownerUserID, title string, kind entity.InputKind) (string, error)
	CompleteMeeting(ctx context.Context, meetingID string, result *entity.AnalysisResult) error
	FailMeeting(ctx context.Context, meetingID, message string) error
	CountMonthlyMeetings(ctx context.Context, ownerUserID string) (int, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpgradeProfile(ctx context.Context, userID string) (*entity.Profile, error)
}

// Snapshot is the externally visible view of one user's session.
type Snapshot struct {
	UserID string                  `json:"user_id"`
	State  State                   `json:"state"`
	Usage  entity.UsageStats       `json:"usage"`
	Result *entity.AnalysisResult  `json:"result,omitempty"`
	Error  *entity.ProcessingError `json:"error,omitempty"`
}

type session struct {
	mu      sync.Mutex
	userID  string
	state   State
	isPro   bool
	used    int
	result  *entity.AnalysisResult
	procErr *entity.ProcessingError
}

// Controller owns the per-user application state and sequences every
// submission: quota gate, best-effort record create, analysis call,
// best-effort record finalize, state transition. The in-memory used counter is
// an optimistic hint only; the meetings service stays authoritative and is
// re-read on Establish and Reset.
type Controller struct {
	analysis AnalysisClient
	meetings MeetingStore
	profiles ProfileStore
	limit    int
	sessions map[string]*session
	mu       sync.RWMutex
	log      *slog.Logger
}

func New(analysis AnalysisClient, meetings MeetingStore, profiles ProfileStore, limit int, log *slog.Logger) *Controller {
	return &Controller{
		analysis: analysis,
		meetings: meetings,
		profiles: profiles,
		limit:    limit,
		sessions: make(map[string]*session),
		log:      log,
	}
}

// Establish creates (or replaces) the session for a user entering the
// application. Profile and usage are fetched as two independent reads and
// combined; either failing falls back to permissive defaults.
func (c *Controller) Establish(ctx context.Context, userID string) *Snapshot {
	profile, used := c.fetchAccountState(ctx, userID)

	sess := &session{
		userID: userID,
		state:  StateIdle,
		isPro:  profile.IsPro,
		used:   used,
	}

	c.mu.Lock()
	c.sessions[userID] = sess
	c.mu.Unlock()

	c.log.Info("session established",
		slog.String("user_id", userID),
		slog.Bool("is_pro", profile.IsPro),
		slog.Int("used", used))

	return c.snapshot(sess)
}

func (c *Controller) fetchAccountState(ctx context.Context, userID string) (*entity.Profile, int) {
	var (
		profile *entity.Profile
		used    int
		wg      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		p, err := c.profiles.GetProfile(ctx, userID)
		if err != nil {
			c.log.Warn("profile read failed, using free-tier default",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			p = &entity.Profile{UserID: userID}
		}
		profile = p
	}()
	go func() {
		defer wg.Done()
		n, err := c.meetings.CountMonthlyMeetings(ctx, userID)
		if err != nil {
			c.log.Warn("usage count failed, reporting zero",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			n = 0
		}
		used = n
	}()
	wg.Wait()

	if !FailOpen && (profile == nil || used < 0) {
		// Unreachable under the current policy; left as the anchor for a
		// fail-closed variant.
		return &entity.Profile{UserID: userID}, 0
	}

	return profile, used
}

// SubmitAudio validates and runs the submission pipeline for an uploaded
// recording.
func (c *Controller) SubmitAudio(ctx context.Context, userID, filename, declaredType string, data []byte, title string) (*Snapshot, error) {
	if err := ValidateAudio(filename, declaredType, int64(len(data))); err != nil {
		return nil, err
	}

	return c.submit(ctx, userID, title, entity.InputKindAudio, func(ctx context.Context) (*entity.AnalysisResult, error) {
		return c.analysis.AnalyzeAudio(ctx, data, filename, declaredType)
	})
}

// SubmitText validates and runs the submission pipeline for a pasted
// transcript.
func (c *Controller) SubmitText(ctx context.Context, userID, text, title string) (*Snapshot, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	return c.submit(ctx, userID, title, entity.InputKindText, func(ctx context.Context) (*entity.AnalysisResult, error) {
		return c.analysis.AnalyzeText(ctx, text)
	})
}

func (c *Controller) submit(ctx context.Context, userID, title string, kind entity.InputKind, analyze func(context.Context) (*entity.AnalysisResult, error)) (*Snapshot, error) {
	sess := c.sessionFor(ctx, userID)

	sess.mu.Lock()
	if sess.state == StateProcessing {
		sess.mu.Unlock()
		return c.snapshot(sess), ErrSubmissionInFlight
	}
	if !sess.isPro && sess.used >= c.limit {
		sess.state = StatePricing
		sess.mu.Unlock()
		c.log.Info("quota exceeded, redirecting to pricing",
			slog.String("user_id", userID),
			slog.Int("used", sess.used),
			slog.Int("limit", c.limit))
		return c.snapshot(sess), ErrQuotaExceeded
	}
	sess.state = StateProcessing
	sess.result = nil
	sess.procErr = nil
	sess.mu.Unlock()

	// Record creation is best-effort audit logging: a failure here must not
	// abort the submission.
	meetingID, err := c.meetings.CreateMeeting(ctx, userID, title, kind)
	if err != nil {
		c.log.Warn("failed to create meeting record, continuing without one",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		meetingID = ""
	}

	// Optimistic usage hint, corrected by the authoritative re-read on the
	// next Reset or Establish.
	sess.mu.Lock()
	sess.used++
	sess.mu.Unlock()

	result, err := analyze(ctx)
	if err == nil && result != nil {
		if meetingID != "" {
			if err := c.meetings.CompleteMeeting(ctx, meetingID, result); err != nil {
				c.log.Warn("failed to finalize meeting record",
					slog.String("meeting_id", meetingID),
					slog.String("error", err.Error()))
			}
		}

		sess.mu.Lock()
		sess.state = StateCompleted
		sess.result = result
		sess.mu.Unlock()

		c.log.Info("submission completed",
			slog.String("user_id", userID),
			slog.String("meeting_id", meetingID))
		return c.snapshot(sess), nil
	}

	procErr := classify(err, kind)
	if meetingID != "" {
		if failErr := c.meetings.FailMeeting(ctx, meetingID, procErr.Message); failErr != nil {
			c.log.Warn("failed to record meeting error",
				slog.String("meeting_id", meetingID),
				slog.String("error", failErr.Error()))
		}
	}

	sess.mu.Lock()
	sess.state = StateError
	sess.procErr = procErr
	sess.mu.Unlock()

	c.log.Error("submission failed",
		slog.String("user_id", userID),
		slog.String("meeting_id", meetingID),
		slog.String("message", procErr.Message))
	return c.snapshot(sess), nil
}

// Reset returns the session to idle and replaces the optimistic usage counter
// with the authoritative remote count.
func (c *Controller) Reset(ctx context.Context, userID string) *Snapshot {
	sess := c.sessionFor(ctx, userID)

	used, err := c.meetings.CountMonthlyMeetings(ctx, userID)
	if err != nil {
		c.log.Warn("usage refresh failed, reporting zero",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		used = 0
	}

	sess.mu.Lock()
	sess.state = StateIdle
	sess.used = used
	sess.result = nil
	sess.procErr = nil
	sess.mu.Unlock()

	return c.snapshot(sess)
}

// RequestPricing moves the session to the pricing view on explicit user
// request.
func (c *Controller) RequestPricing(ctx context.Context, userID string) *Snapshot {
	sess := c.sessionFor(ctx, userID)

	sess.mu.Lock()
	sess.state = StatePricing
	sess.mu.Unlock()

	return c.snapshot(sess)
}

// Upgrade runs the simulated checkout and refreshes the pro flag in-session.
func (c *Controller) Upgrade(ctx context.Context, userID string) (*Snapshot, error) {
	sess := c.sessionFor(ctx, userID)

	profile, err := c.profiles.UpgradeProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.isPro = profile.IsPro
	sess.mu.Unlock()

	c.log.Info("profile upgraded", slog.String("user_id", userID))
	return c.snapshot(sess), nil
}

// Snapshot reports the current session view, establishing the session first if
// the user has none yet.
func (c *Controller) Snapshot(ctx context.Context, userID string) *Snapshot {
	return c.snapshot(c.sessionFor(ctx, userID))
}

// Drop removes the session on sign-out.
func (c *Controller) Drop(userID string) {
	c.mu.Lock()
	delete(c.sessions, userID)
	c.mu.Unlock()
}

// sessionFor returns the live session for a user, lazily establishing one for
// holders of a valid credential the controller has not seen yet (e.g. after a
// gateway restart).
func (c *Controller) sessionFor(ctx context.Context, userID string) *session {
	c.mu.RLock()
	sess, ok := c.sessions[userID]
	c.mu.RUnlock()
	if ok {
		return sess
	}

	c.Establish(ctx, userID)

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessions[userID]
}

func (c *Controller) snapshot(sess *session) *Snapshot {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &Snapshot{
		UserID: sess.userID,
		State:  sess.state,
		Usage: entity.UsageStats{
			Used:  sess.used,
			Limit: c.limit,
			IsPro: sess.isPro,
		},
		Result: sess.result,
		Error:  sess.procErr,
	}
}

// classify turns a pipeline failure into the user-facing title/message pair.
// Size and validation failures from the model API carry their HTTP status in
// the message, which is what the substring checks key on.
func classify(err error, kind entity.InputKind) *entity.ProcessingError {
	generic := genericTextMessage
	if kind == entity.InputKindAudio {
		generic = genericAudioMessage
	}

	message := generic
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "400") || strings.Contains(msg, "413"):
			message = sizeGuidanceMessage
		case msg != "":
			message = msg
		}
	}

	return &entity.ProcessingError{
		Title:   errorTitle,
		Message: message,
	}
}
