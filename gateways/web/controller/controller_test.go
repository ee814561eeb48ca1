package controller

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/meetingmind/backend/gateways/web/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysis struct {
	result *entity.AnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalysis) AnalyzeAudio(ctx context.Context, data []byte, filename, declaredType string) (*entity.AnalysisResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeAnalysis) AnalyzeText(ctx context.Context, transcript string) (*entity.AnalysisResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeMeetings struct {
	count     int
	countErr  error
	createErr error

	created   int
	completed map[string]*entity.AnalysisResult
	failed    map[string]string
}

func newFakeMeetings(count int) *fakeMeetings {
	return &fakeMeetings{
		count:     count,
		completed: make(map[string]*entity.AnalysisResult),
		failed:    make(map[string]string),
	}
}

func (f *fakeMeetings) CreateMeeting(ctx context.Context, ownerUserID, title string, kind entity.InputKind) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	return fmt.Sprintf("meeting-%d", f.created), nil
}

func (f *fakeMeetings) CompleteMeeting(ctx context.Context, meetingID string, result *entity.AnalysisResult) error {
	f.completed[meetingID] = result
	return nil
}

func (f *fakeMeetings) FailMeeting(ctx context.Context, meetingID, message string) error {
	f.failed[meetingID] = message
	return nil
}

func (f *fakeMeetings) CountMonthlyMeetings(ctx context.Context, ownerUserID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

type fakeProfiles struct {
	profile *entity.Profile
	err     error
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfiles) UpgradeProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	f.profile = &entity.Profile{UserID: userID, IsPro: true}
	return f.profile, nil
}

func testController(analysis *fakeAnalysis, meetings *fakeMeetings, profiles *fakeProfiles) *Controller {
	return New(analysis, meetings, profiles, 3, slog.Default())
}

func freeProfile() *fakeProfiles {
	return &fakeProfiles{profile: &entity.Profile{UserID: "user-1", IsPro: false}}
}

func sampleResult() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		Transcript:    "...",
		SummaryPoints: []string{"A"},
		Decisions:     []string{},
		ActionItems: []entity.ActionItem{
			{Owner: "Bob", Description: "Follow up", DueDate: nil},
		},
	}
}

func TestEstablish(t *testing.T) {
	ctx := context.Background()
	c := testController(&fakeAnalysis{}, newFakeMeetings(2), freeProfile())

	snap := c.Establish(ctx, "user-1")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 2, snap.Usage.Used)
	assert.Equal(t, 3, snap.Usage.Limit)
	assert.False(t, snap.Usage.IsPro)
}

func TestEstablish_ProfileReadFailsOpen(t *testing.T) {
	// Scenario F: a missing/unreadable profile must not block reaching idle.
	ctx := context.Background()
	c := testController(&fakeAnalysis{}, newFakeMeetings(0), &fakeProfiles{err: fmt.Errorf("row not found")})

	snap := c.Establish(ctx, "user-1")
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Usage.IsPro)
}

func TestEstablish_UsageCountFailsOpen(t *testing.T) {
	ctx := context.Background()
	meetings := newFakeMeetings(0)
	meetings.countErr = fmt.Errorf("service unavailable")
	c := testController(&fakeAnalysis{}, meetings, freeProfile())

	snap := c.Establish(ctx, "user-1")
	assert.Equal(t, StateIdle, snap.State)
	assert.Zero(t, snap.Usage.Used)
}

func TestSubmitAudio_TooLargeIsRejectedLocally(t *testing.T) {
	// Scenario A: 11 MiB upload is rejected before any remote call.
	ctx := context.Background()
	analysis := &fakeAnalysis{}
	meetings := newFakeMeetings(0)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	data := make([]byte, 11*1024*1024)
	_, err := c.SubmitAudio(ctx, "user-1", "long.mp3", "audio/mpeg", data, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, analysis.calls)
	assert.Zero(t, meetings.created)
	assert.Equal(t, StateIdle, c.Snapshot(ctx, "user-1").State)
}

func TestSubmitAudio_UnsupportedType(t *testing.T) {
	ctx := context.Background()
	c := testController(&fakeAnalysis{}, newFakeMeetings(0), freeProfile())
	c.Establish(ctx, "user-1")

	_, err := c.SubmitAudio(ctx, "user-1", "notes.pdf", "application/pdf", []byte("x"), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitText_BlankIsRejectedLocally(t *testing.T) {
	// Scenario B: whitespace-only input never leaves the process.
	ctx := context.Background()
	analysis := &fakeAnalysis{}
	c := testController(analysis, newFakeMeetings(0), freeProfile())
	c.Establish(ctx, "user-1")

	_, err := c.SubmitText(ctx, "user-1", "   \n\t ", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, analysis.calls)
	assert.Equal(t, StateIdle, c.Snapshot(ctx, "user-1").State)
}

func TestSubmitText_QuotaExceededRedirectsToPricing(t *testing.T) {
	// Scenario C: used == limit for a free user, no side effects.
	ctx := context.Background()
	analysis := &fakeAnalysis{}
	meetings := newFakeMeetings(3)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.ErrorIs(t, err, ErrQuotaExceeded)

	assert.Equal(t, StatePricing, snap.State)
	assert.Zero(t, analysis.calls)
	assert.Zero(t, meetings.created)
}

func TestSubmitText_ProBypassesQuota(t *testing.T) {
	ctx := context.Background()
	analysis := &fakeAnalysis{result: sampleResult()}
	meetings := newFakeMeetings(250)
	profiles := &fakeProfiles{profile: &entity.Profile{UserID: "user-1", IsPro: true}}
	c := testController(analysis, meetings, profiles)
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, 1, analysis.calls)
}

func TestSubmitText_Success(t *testing.T) {
	// Scenario D: the analysis payload flows through verbatim.
	ctx := context.Background()
	result := sampleResult()
	analysis := &fakeAnalysis{result: result}
	meetings := newFakeMeetings(2)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "standup")
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, result, snap.Result)
	require.Len(t, meetings.completed, 1)
	assert.Equal(t, result, meetings.completed["meeting-1"])
	// Optimistic counter moved without waiting for the remote count.
	assert.Equal(t, 3, snap.Usage.Used)
}

func TestSubmitText_TransportErrorWithSizeMarker(t *testing.T) {
	// Scenario E: a "413" in the failure produces the size-guidance message.
	ctx := context.Background()
	analysis := &fakeAnalysis{err: fmt.Errorf("API request failed with status 413: payload too large")}
	meetings := newFakeMeetings(2)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)

	assert.Equal(t, StateError, snap.State)
	require.NotNil(t, snap.Error)
	assert.Equal(t, "Processing Failed", snap.Error.Title)
	assert.Contains(t, snap.Error.Message, "under 10MB")
	assert.Equal(t, snap.Error.Message, meetings.failed["meeting-1"])
}

func TestSubmitText_PlainErrorSurfacesMessage(t *testing.T) {
	ctx := context.Background()
	analysis := &fakeAnalysis{err: fmt.Errorf("model unavailable")}
	meetings := newFakeMeetings(0)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)

	assert.Equal(t, StateError, snap.State)
	require.NotNil(t, snap.Error)
	assert.Equal(t, "model unavailable", snap.Error.Message)
}

func TestSubmit_RecordCreateFailureDoesNotAbort(t *testing.T) {
	ctx := context.Background()
	analysis := &fakeAnalysis{result: sampleResult()}
	meetings := newFakeMeetings(0)
	meetings.createErr = fmt.Errorf("service unavailable")
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, 1, analysis.calls)
	assert.Empty(t, meetings.completed)
	// The optimistic counter still moves.
	assert.Equal(t, 1, snap.Usage.Used)
}

func TestReset_RestoresAuthoritativeCount(t *testing.T) {
	ctx := context.Background()
	analysis := &fakeAnalysis{result: sampleResult()}
	meetings := newFakeMeetings(1)
	c := testController(analysis, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	snap, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Usage.Used) // optimistic

	// Repeated resets keep reporting the remote count, not the optimistic one.
	for i := 0; i < 3; i++ {
		snap = c.Reset(ctx, "user-1")
		assert.Equal(t, StateIdle, snap.State)
		assert.Equal(t, 1, snap.Usage.Used)
		assert.Nil(t, snap.Result)
		assert.Nil(t, snap.Error)
	}
}

func TestRequestPricingAndReset(t *testing.T) {
	ctx := context.Background()
	c := testController(&fakeAnalysis{}, newFakeMeetings(0), freeProfile())
	c.Establish(ctx, "user-1")

	snap := c.RequestPricing(ctx, "user-1")
	assert.Equal(t, StatePricing, snap.State)

	snap = c.Reset(ctx, "user-1")
	assert.Equal(t, StateIdle, snap.State)
}

func TestUpgrade(t *testing.T) {
	ctx := context.Background()
	meetings := newFakeMeetings(3)
	c := testController(&fakeAnalysis{result: sampleResult()}, meetings, freeProfile())
	c.Establish(ctx, "user-1")

	// Over quota as a free user...
	_, err := c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.ErrorIs(t, err, ErrQuotaExceeded)

	snap, err := c.Upgrade(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, snap.Usage.IsPro)

	// ...and through after the upgrade.
	snap, err = c.SubmitText(ctx, "user-1", "we met and talked", "")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, snap.State)
}

func TestDrop(t *testing.T) {
	ctx := context.Background()
	meetings := newFakeMeetings(2)
	c := testController(&fakeAnalysis{}, meetings, freeProfile())
	c.Establish(ctx, "user-1")
	c.Drop("user-1")

	// The next touch re-establishes from the remote state.
	snap := c.Snapshot(ctx, "user-1")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 2, snap.Usage.Used)
}
