// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/predicate"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (mu *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetOwnerUserID sets the "owner_user_id" field.
func (mu *MeetingUpdate) SetOwnerUserID(u uuid.UUID) *MeetingUpdate {
	mu.mutation.SetOwnerUserID(u)
	return mu
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableOwnerUserID(u *uuid.UUID) *MeetingUpdate {
	if u != nil {
		mu.SetOwnerUserID(*u)
	}
	return mu
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (mu *MeetingUpdate) ClearOwnerUserID() *MeetingUpdate {
	mu.mutation.ClearOwnerUserID()
	return mu
}

// SetTitle sets the "title" field.
func (mu *MeetingUpdate) SetTitle(s string) *MeetingUpdate {
	mu.mutation.SetTitle(s)
	return mu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableTitle(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetTitle(*s)
	}
	return mu
}

// SetInputKind sets the "input_kind" field.
func (mu *MeetingUpdate) SetInputKind(mk meeting.InputKind) *MeetingUpdate {
	mu.mutation.SetInputKind(mk)
	return mu
}

// SetNillableInputKind sets the "input_kind" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableInputKind(mk *meeting.InputKind) *MeetingUpdate {
	if mk != nil {
		mu.SetInputKind(*mk)
	}
	return mu
}

// SetStatus sets the "status" field.
func (mu *MeetingUpdate) SetStatus(m meeting.Status) *MeetingUpdate {
	mu.mutation.SetStatus(m)
	return mu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableStatus(m *meeting.Status) *MeetingUpdate {
	if m != nil {
		mu.SetStatus(*m)
	}
	return mu
}

// SetTranscript sets the "transcript" field.
func (mu *MeetingUpdate) SetTranscript(s string) *MeetingUpdate {
	mu.mutation.SetTranscript(s)
	return mu
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableTranscript(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetTranscript(*s)
	}
	return mu
}

// ClearTranscript clears the value of the "transcript" field.
func (mu *MeetingUpdate) ClearTranscript() *MeetingUpdate {
	mu.mutation.ClearTranscript()
	return mu
}

// SetSummaryPoints sets the "summary_points" field.
func (mu *MeetingUpdate) SetSummaryPoints(s []string) *MeetingUpdate {
	mu.mutation.SetSummaryPoints(s)
	return mu
}

// AppendSummaryPoints appends s to the "summary_points" field.
func (mu *MeetingUpdate) AppendSummaryPoints(s []string) *MeetingUpdate {
	mu.mutation.AppendSummaryPoints(s)
	return mu
}

// ClearSummaryPoints clears the value of the "summary_points" field.
func (mu *MeetingUpdate) ClearSummaryPoints() *MeetingUpdate {
	mu.mutation.ClearSummaryPoints()
	return mu
}

// SetDecisions sets the "decisions" field.
func (mu *MeetingUpdate) SetDecisions(s []string) *MeetingUpdate {
	mu.mutation.SetDecisions(s)
	return mu
}

// AppendDecisions appends s to the "decisions" field.
func (mu *MeetingUpdate) AppendDecisions(s []string) *MeetingUpdate {
	mu.mutation.AppendDecisions(s)
	return mu
}

// ClearDecisions clears the value of the "decisions" field.
func (mu *MeetingUpdate) ClearDecisions() *MeetingUpdate {
	mu.mutation.ClearDecisions()
	return mu
}

// SetActionItems sets the "action_items" field.
func (mu *MeetingUpdate) SetActionItems(si []schema.ActionItem) *MeetingUpdate {
	mu.mutation.SetActionItems(si)
	return mu
}

// AppendActionItems appends si to the "action_items" field.
func (mu *MeetingUpdate) AppendActionItems(si []schema.ActionItem) *MeetingUpdate {
	mu.mutation.AppendActionItems(si)
	return mu
}

// ClearActionItems clears the value of the "action_items" field.
func (mu *MeetingUpdate) ClearActionItems() *MeetingUpdate {
	mu.mutation.ClearActionItems()
	return mu
}

// SetErrorMessage sets the "error_message" field.
func (mu *MeetingUpdate) SetErrorMessage(s string) *MeetingUpdate {
	mu.mutation.SetErrorMessage(s)
	return mu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableErrorMessage(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetErrorMessage(*s)
	}
	return mu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (mu *MeetingUpdate) ClearErrorMessage() *MeetingUpdate {
	mu.mutation.ClearErrorMessage()
	return mu
}

// SetCreatedAt sets the "created_at" field.
func (mu *MeetingUpdate) SetCreatedAt(t time.Time) *MeetingUpdate {
	mu.mutation.SetCreatedAt(t)
	return mu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableCreatedAt(t *time.Time) *MeetingUpdate {
	if t != nil {
		mu.SetCreatedAt(*t)
	}
	return mu
}

// Mutation returns the MeetingMutation object of the builder.
func (mu *MeetingUpdate) Mutation() *MeetingMutation {
	return mu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MeetingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MeetingUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mu *MeetingUpdate) check() error {
	if v, ok := mu.mutation.InputKind(); ok {
		if err := meeting.InputKindValidator(v); err != nil {
			return &ValidationError{Name: "input_kind", err: fmt.Errorf(`ent: validator failed for field "Meeting.input_kind": %w`, err)}
		}
	}
	if v, ok := mu.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	return nil
}

func (mu *MeetingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeUUID))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.OwnerUserID(); ok {
		_spec.SetField(meeting.FieldOwnerUserID, field.TypeUUID, value)
	}
	if mu.mutation.OwnerUserIDCleared() {
		_spec.ClearField(meeting.FieldOwnerUserID, field.TypeUUID)
	}
	if value, ok := mu.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := mu.mutation.InputKind(); ok {
		_spec.SetField(meeting.FieldInputKind, field.TypeEnum, value)
	}
	if value, ok := mu.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := mu.mutation.Transcript(); ok {
		_spec.SetField(meeting.FieldTranscript, field.TypeString, value)
	}
	if mu.mutation.TranscriptCleared() {
		_spec.ClearField(meeting.FieldTranscript, field.TypeString)
	}
	if value, ok := mu.mutation.SummaryPoints(); ok {
		_spec.SetField(meeting.FieldSummaryPoints, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedSummaryPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldSummaryPoints, value)
		})
	}
	if mu.mutation.SummaryPointsCleared() {
		_spec.ClearField(meeting.FieldSummaryPoints, field.TypeJSON)
	}
	if value, ok := mu.mutation.Decisions(); ok {
		_spec.SetField(meeting.FieldDecisions, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedDecisions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldDecisions, value)
		})
	}
	if mu.mutation.DecisionsCleared() {
		_spec.ClearField(meeting.FieldDecisions, field.TypeJSON)
	}
	if value, ok := mu.mutation.ActionItems(); ok {
		_spec.SetField(meeting.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldActionItems, value)
		})
	}
	if mu.mutation.ActionItemsCleared() {
		_spec.ClearField(meeting.FieldActionItems, field.TypeJSON)
	}
	if value, ok := mu.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if mu.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := mu.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetOwnerUserID sets the "owner_user_id" field.
func (muo *MeetingUpdateOne) SetOwnerUserID(u uuid.UUID) *MeetingUpdateOne {
	muo.mutation.SetOwnerUserID(u)
	return muo
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableOwnerUserID(u *uuid.UUID) *MeetingUpdateOne {
	if u != nil {
		muo.SetOwnerUserID(*u)
	}
	return muo
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (muo *MeetingUpdateOne) ClearOwnerUserID() *MeetingUpdateOne {
	muo.mutation.ClearOwnerUserID()
	return muo
}

// SetTitle sets the "title" field.
func (muo *MeetingUpdateOne) SetTitle(s string) *MeetingUpdateOne {
	muo.mutation.SetTitle(s)
	return muo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableTitle(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetTitle(*s)
	}
	return muo
}

// SetInputKind sets the "input_kind" field.
func (muo *MeetingUpdateOne) SetInputKind(mk meeting.InputKind) *MeetingUpdateOne {
	muo.mutation.SetInputKind(mk)
	return muo
}

// SetNillableInputKind sets the "input_kind" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableInputKind(mk *meeting.InputKind) *MeetingUpdateOne {
	if mk != nil {
		muo.SetInputKind(*mk)
	}
	return muo
}

// SetStatus sets the "status" field.
func (muo *MeetingUpdateOne) SetStatus(m meeting.Status) *MeetingUpdateOne {
	muo.mutation.SetStatus(m)
	return muo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableStatus(m *meeting.Status) *MeetingUpdateOne {
	if m != nil {
		muo.SetStatus(*m)
	}
	return muo
}

// SetTranscript sets the "transcript" field.
func (muo *MeetingUpdateOne) SetTranscript(s string) *MeetingUpdateOne {
	muo.mutation.SetTranscript(s)
	return muo
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableTranscript(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetTranscript(*s)
	}
	return muo
}

// ClearTranscript clears the value of the "transcript" field.
func (muo *MeetingUpdateOne) ClearTranscript() *MeetingUpdateOne {
	muo.mutation.ClearTranscript()
	return muo
}

// SetSummaryPoints sets the "summary_points" field.
func (muo *MeetingUpdateOne) SetSummaryPoints(s []string) *MeetingUpdateOne {
	muo.mutation.SetSummaryPoints(s)
	return muo
}

// AppendSummaryPoints appends s to the "summary_points" field.
func (muo *MeetingUpdateOne) AppendSummaryPoints(s []string) *MeetingUpdateOne {
	muo.mutation.AppendSummaryPoints(s)
	return muo
}

// ClearSummaryPoints clears the value of the "summary_points" field.
func (muo *MeetingUpdateOne) ClearSummaryPoints() *MeetingUpdateOne {
	muo.mutation.ClearSummaryPoints()
	return muo
}

// SetDecisions sets the "decisions" field.
func (muo *MeetingUpdateOne) SetDecisions(s []string) *MeetingUpdateOne {
	muo.mutation.SetDecisions(s)
	return muo
}

// AppendDecisions appends s to the "decisions" field.
func (muo *MeetingUpdateOne) AppendDecisions(s []string) *MeetingUpdateOne {
	muo.mutation.AppendDecisions(s)
	return muo
}

// ClearDecisions clears the value of the "decisions" field.
func (muo *MeetingUpdateOne) ClearDecisions() *MeetingUpdateOne {
	muo.mutation.ClearDecisions()
	return muo
}

// SetActionItems sets the "action_items" field.
func (muo *MeetingUpdateOne) SetActionItems(si []schema.ActionItem) *MeetingUpdateOne {
	muo.mutation.SetActionItems(si)
	return muo
}

// AppendActionItems appends si to the "action_items" field.
func (muo *MeetingUpdateOne) AppendActionItems(si []schema.ActionItem) *MeetingUpdateOne {
	muo.mutation.AppendActionItems(si)
	return muo
}

// ClearActionItems clears the value of the "action_items" field.
func (muo *MeetingUpdateOne) ClearActionItems() *MeetingUpdateOne {
	muo.mutation.ClearActionItems()
	return muo
}

// SetErrorMessage sets the "error_message" field.
func (muo *MeetingUpdateOne) SetErrorMessage(s string) *MeetingUpdateOne {
	muo.mutation.SetErrorMessage(s)
	return muo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableErrorMessage(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetErrorMessage(*s)
	}
	return muo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (muo *MeetingUpdateOne) ClearErrorMessage() *MeetingUpdateOne {
	muo.mutation.ClearErrorMessage()
	return muo
}

// SetCreatedAt sets the "created_at" field.
func (muo *MeetingUpdateOne) SetCreatedAt(t time.Time) *MeetingUpdateOne {
	muo.mutation.SetCreatedAt(t)
	return muo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableCreatedAt(t *time.Time) *MeetingUpdateOne {
	if t != nil {
		muo.SetCreatedAt(*t)
	}
	return muo
}

// Mutation returns the MeetingMutation object of the builder.
func (muo *MeetingUpdateOne) Mutation() *MeetingMutation {
	return muo.mutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (muo *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Meeting entity.
func (muo *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (muo *MeetingUpdateOne) check() error {
	if v, ok := muo.mutation.InputKind(); ok {
		if err := meeting.InputKindValidator(v); err != nil {
			return &ValidationError{Name: "input_kind", err: fmt.Errorf(`ent: validator failed for field "Meeting.input_kind": %w`, err)}
		}
	}
	if v, ok := muo.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	return nil
}

func (muo *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	if err := muo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeUUID))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.OwnerUserID(); ok {
		_spec.SetField(meeting.FieldOwnerUserID, field.TypeUUID, value)
	}
	if muo.mutation.OwnerUserIDCleared() {
		_spec.ClearField(meeting.FieldOwnerUserID, field.TypeUUID)
	}
	if value, ok := muo.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if value, ok := muo.mutation.InputKind(); ok {
		_spec.SetField(meeting.FieldInputKind, field.TypeEnum, value)
	}
	if value, ok := muo.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := muo.mutation.Transcript(); ok {
		_spec.SetField(meeting.FieldTranscript, field.TypeString, value)
	}
	if muo.mutation.TranscriptCleared() {
		_spec.ClearField(meeting.FieldTranscript, field.TypeString)
	}
	if value, ok := muo.mutation.SummaryPoints(); ok {
		_spec.SetField(meeting.FieldSummaryPoints, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedSummaryPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldSummaryPoints, value)
		})
	}
	if muo.mutation.SummaryPointsCleared() {
		_spec.ClearField(meeting.FieldSummaryPoints, field.TypeJSON)
	}
	if value, ok := muo.mutation.Decisions(); ok {
		_spec.SetField(meeting.FieldDecisions, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedDecisions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldDecisions, value)
		})
	}
	if muo.mutation.DecisionsCleared() {
		_spec.ClearField(meeting.FieldDecisions, field.TypeJSON)
	}
	if value, ok := muo.mutation.ActionItems(); ok {
		_spec.SetField(meeting.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldActionItems, value)
		})
	}
	if muo.mutation.ActionItemsCleared() {
		_spec.ClearField(meeting.FieldActionItems, field.TypeJSON)
	}
	if value, ok := muo.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if muo.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := muo.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Meeting{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
