// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/predicate"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMeeting = "Meeting"
)

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	owner_user_id        *uuid.UUID
	title                *string
	input_kind           *meeting.InputKind
	status               *meeting.Status
	transcript           *string
	summary_points       *[]string
	appendsummary_points []string
	decisions            *[]string
	appenddecisions      []string
	action_items         *[]schema.ActionItem
	appendaction_items   []schema.ActionItem
	error_message        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Meeting, error)
	predicates           []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id uuid.UUID) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *MeetingMutation) SetOwnerUserID(u uuid.UUID) {
	m.owner_user_id = &u
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *MeetingMutation) OwnerUserID() (r uuid.UUID, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldOwnerUserID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *MeetingMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[meeting.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *MeetingMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *MeetingMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, meeting.FieldOwnerUserID)
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
}

// SetInputKind sets the "input_kind" field.
func (m *MeetingMutation) SetInputKind(mk meeting.InputKind) {
	m.input_kind = &mk
}

// InputKind returns the value of the "input_kind" field in the mutation.
func (m *MeetingMutation) InputKind() (r meeting.InputKind, exists bool) {
	v := m.input_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldInputKind returns the old "input_kind" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldInputKind(ctx context.Context) (v meeting.InputKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputKind: %w", err)
	}
	return oldValue.InputKind, nil
}

// ResetInputKind resets all changes to the "input_kind" field.
func (m *MeetingMutation) ResetInputKind() {
	m.input_kind = nil
}

// SetStatus sets the "status" field.
func (m *MeetingMutation) SetStatus(value meeting.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MeetingMutation) Status() (r meeting.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStatus(ctx context.Context) (v meeting.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MeetingMutation) ResetStatus() {
	m.status = nil
}

// SetTranscript sets the "transcript" field.
func (m *MeetingMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *MeetingMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTranscript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ClearTranscript clears the value of the "transcript" field.
func (m *MeetingMutation) ClearTranscript() {
	m.transcript = nil
	m.clearedFields[meeting.FieldTranscript] = struct{}{}
}

// TranscriptCleared returns if the "transcript" field was cleared in this mutation.
func (m *MeetingMutation) TranscriptCleared() bool {
	_, ok := m.clearedFields[meeting.FieldTranscript]
	return ok
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *MeetingMutation) ResetTranscript() {
	m.transcript = nil
	delete(m.clearedFields, meeting.FieldTranscript)
}

// SetSummaryPoints sets the "summary_points" field.
func (m *MeetingMutation) SetSummaryPoints(s []string) {
	m.summary_points = &s
	m.appendsummary_points = nil
}

// SummaryPoints returns the value of the "summary_points" field in the mutation.
func (m *MeetingMutation) SummaryPoints() (r []string, exists bool) {
	v := m.summary_points
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryPoints returns the old "summary_points" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldSummaryPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryPoints: %w", err)
	}
	return oldValue.SummaryPoints, nil
}

// AppendSummaryPoints adds s to the "summary_points" field.
func (m *MeetingMutation) AppendSummaryPoints(s []string) {
	m.appendsummary_points = append(m.appendsummary_points, s...)
}

// AppendedSummaryPoints returns the list of values that were appended to the "summary_points" field in this mutation.
func (m *MeetingMutation) AppendedSummaryPoints() ([]string, bool) {
	if len(m.appendsummary_points) == 0 {
		return nil, false
	}
	return m.appendsummary_points, true
}

// ClearSummaryPoints clears the value of the "summary_points" field.
func (m *MeetingMutation) ClearSummaryPoints() {
	m.summary_points = nil
	m.appendsummary_points = nil
	m.clearedFields[meeting.FieldSummaryPoints] = struct{}{}
}

// SummaryPointsCleared returns if the "summary_points" field was cleared in this mutation.
func (m *MeetingMutation) SummaryPointsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldSummaryPoints]
	return ok
}

// ResetSummaryPoints resets all changes to the "summary_points" field.
func (m *MeetingMutation) ResetSummaryPoints() {
	m.summary_points = nil
	m.appendsummary_points = nil
	delete(m.clearedFields, meeting.FieldSummaryPoints)
}

// SetDecisions sets the "decisions" field.
func (m *MeetingMutation) SetDecisions(s []string) {
	m.decisions = &s
	m.appenddecisions = nil
}

// Decisions returns the value of the "decisions" field in the mutation.
func (m *MeetingMutation) Decisions() (r []string, exists bool) {
	v := m.decisions
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisions returns the old "decisions" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldDecisions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisions: %w", err)
	}
	return oldValue.Decisions, nil
}

// AppendDecisions adds s to the "decisions" field.
func (m *MeetingMutation) AppendDecisions(s []string) {
	m.appenddecisions = append(m.appenddecisions, s...)
}

// AppendedDecisions returns the list of values that were appended to the "decisions" field in this mutation.
func (m *MeetingMutation) AppendedDecisions() ([]string, bool) {
	if len(m.appenddecisions) == 0 {
		return nil, false
	}
	return m.appenddecisions, true
}

// ClearDecisions clears the value of the "decisions" field.
func (m *MeetingMutation) ClearDecisions() {
	m.decisions = nil
	m.appenddecisions = nil
	m.clearedFields[meeting.FieldDecisions] = struct{}{}
}

// DecisionsCleared returns if the "decisions" field was cleared in this mutation.
func (m *MeetingMutation) DecisionsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldDecisions]
	return ok
}

// ResetDecisions resets all changes to the "decisions" field.
func (m *MeetingMutation) ResetDecisions() {
	m.decisions = nil
	m.appenddecisions = nil
	delete(m.clearedFields, meeting.FieldDecisions)
}

// SetActionItems sets the "action_items" field.
func (m *MeetingMutation) SetActionItems(si []schema.ActionItem) {
	m.action_items = &si
	m.appendaction_items = nil
}

// ActionItems returns the value of the "action_items" field in the mutation.
func (m *MeetingMutation) ActionItems() (r []schema.ActionItem, exists bool) {
	v := m.action_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItems returns the old "action_items" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldActionItems(ctx context.Context) (v []schema.ActionItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItems: %w", err)
	}
	return oldValue.ActionItems, nil
}

// AppendActionItems adds si to the "action_items" field.
func (m *MeetingMutation) AppendActionItems(si []schema.ActionItem) {
	m.appendaction_items = append(m.appendaction_items, si...)
}

// AppendedActionItems returns the list of values that were appended to the "action_items" field in this mutation.
func (m *MeetingMutation) AppendedActionItems() ([]schema.ActionItem, bool) {
	if len(m.appendaction_items) == 0 {
		return nil, false
	}
	return m.appendaction_items, true
}

// ClearActionItems clears the value of the "action_items" field.
func (m *MeetingMutation) ClearActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	m.clearedFields[meeting.FieldActionItems] = struct{}{}
}

// ActionItemsCleared returns if the "action_items" field was cleared in this mutation.
func (m *MeetingMutation) ActionItemsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldActionItems]
	return ok
}

// ResetActionItems resets all changes to the "action_items" field.
func (m *MeetingMutation) ResetActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	delete(m.clearedFields, meeting.FieldActionItems)
}

// SetErrorMessage sets the "error_message" field.
func (m *MeetingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MeetingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MeetingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[meeting.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MeetingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[meeting.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MeetingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, meeting.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.owner_user_id != nil {
		fields = append(fields, meeting.FieldOwnerUserID)
	}
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.input_kind != nil {
		fields = append(fields, meeting.FieldInputKind)
	}
	if m.status != nil {
		fields = append(fields, meeting.FieldStatus)
	}
	if m.transcript != nil {
		fields = append(fields, meeting.FieldTranscript)
	}
	if m.summary_points != nil {
		fields = append(fields, meeting.FieldSummaryPoints)
	}
	if m.decisions != nil {
		fields = append(fields, meeting.FieldDecisions)
	}
	if m.action_items != nil {
		fields = append(fields, meeting.FieldActionItems)
	}
	if m.error_message != nil {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldOwnerUserID:
		return m.OwnerUserID()
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldInputKind:
		return m.InputKind()
	case meeting.FieldStatus:
		return m.Status()
	case meeting.FieldTranscript:
		return m.Transcript()
	case meeting.FieldSummaryPoints:
		return m.SummaryPoints()
	case meeting.FieldDecisions:
		return m.Decisions()
	case meeting.FieldActionItems:
		return m.ActionItems()
	case meeting.FieldErrorMessage:
		return m.ErrorMessage()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldInputKind:
		return m.OldInputKind(ctx)
	case meeting.FieldStatus:
		return m.OldStatus(ctx)
	case meeting.FieldTranscript:
		return m.OldTranscript(ctx)
	case meeting.FieldSummaryPoints:
		return m.OldSummaryPoints(ctx)
	case meeting.FieldDecisions:
		return m.OldDecisions(ctx)
	case meeting.FieldActionItems:
		return m.OldActionItems(ctx)
	case meeting.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldOwnerUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldInputKind:
		v, ok := value.(meeting.InputKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputKind(v)
		return nil
	case meeting.FieldStatus:
		v, ok := value.(meeting.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case meeting.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case meeting.FieldSummaryPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryPoints(v)
		return nil
	case meeting.FieldDecisions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisions(v)
		return nil
	case meeting.FieldActionItems:
		v, ok := value.([]schema.ActionItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItems(v)
		return nil
	case meeting.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldOwnerUserID) {
		fields = append(fields, meeting.FieldOwnerUserID)
	}
	if m.FieldCleared(meeting.FieldTranscript) {
		fields = append(fields, meeting.FieldTranscript)
	}
	if m.FieldCleared(meeting.FieldSummaryPoints) {
		fields = append(fields, meeting.FieldSummaryPoints)
	}
	if m.FieldCleared(meeting.FieldDecisions) {
		fields = append(fields, meeting.FieldDecisions)
	}
	if m.FieldCleared(meeting.FieldActionItems) {
		fields = append(fields, meeting.FieldActionItems)
	}
	if m.FieldCleared(meeting.FieldErrorMessage) {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	case meeting.FieldTranscript:
		m.ClearTranscript()
		return nil
	case meeting.FieldSummaryPoints:
		m.ClearSummaryPoints()
		return nil
	case meeting.FieldDecisions:
		m.ClearDecisions()
		return nil
	case meeting.FieldActionItems:
		m.ClearActionItems()
		return nil
	case meeting.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldInputKind:
		m.ResetInputKind()
		return nil
	case meeting.FieldStatus:
		m.ResetStatus()
		return nil
	case meeting.FieldTranscript:
		m.ResetTranscript()
		return nil
	case meeting.FieldSummaryPoints:
		m.ResetSummaryPoints()
		return nil
	case meeting.FieldDecisions:
		m.ResetDecisions()
		return nil
	case meeting.FieldActionItems:
		m.ResetActionItems()
		return nil
	case meeting.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Meeting edge %s", name)
}
