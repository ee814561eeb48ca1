// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetOwnerUserID sets the "owner_user_id" field.
func (mc *MeetingCreate) SetOwnerUserID(u uuid.UUID) *MeetingCreate {
	mc.mutation.SetOwnerUserID(u)
	return mc
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableOwnerUserID(u *uuid.UUID) *MeetingCreate {
	if u != nil {
		mc.SetOwnerUserID(*u)
	}
	return mc
}

// SetTitle sets the "title" field.
func (mc *MeetingCreate) SetTitle(s string) *MeetingCreate {
	mc.mutation.SetTitle(s)
	return mc
}

// SetInputKind sets the "input_kind" field.
func (mc *MeetingCreate) SetInputKind(mk meeting.InputKind) *MeetingCreate {
	mc.mutation.SetInputKind(mk)
	return mc
}

// SetStatus sets the "status" field.
func (mc *MeetingCreate) SetStatus(m meeting.Status) *MeetingCreate {
	mc.mutation.SetStatus(m)
	return mc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableStatus(m *meeting.Status) *MeetingCreate {
	if m != nil {
		mc.SetStatus(*m)
	}
	return mc
}

// SetTranscript sets the "transcript" field.
func (mc *MeetingCreate) SetTranscript(s string) *MeetingCreate {
	mc.mutation.SetTranscript(s)
	return mc
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableTranscript(s *string) *MeetingCreate {
	if s != nil {
		mc.SetTranscript(*s)
	}
	return mc
}

// SetSummaryPoints sets the "summary_points" field.
func (mc *MeetingCreate) SetSummaryPoints(s []string) *MeetingCreate {
	mc.mutation.SetSummaryPoints(s)
	return mc
}

// SetDecisions sets the "decisions" field.
func (mc *MeetingCreate) SetDecisions(s []string) *MeetingCreate {
	mc.mutation.SetDecisions(s)
	return mc
}

// SetActionItems sets the "action_items" field.
func (mc *MeetingCreate) SetActionItems(si []schema.ActionItem) *MeetingCreate {
	mc.mutation.SetActionItems(si)
	return mc
}

// SetErrorMessage sets the "error_message" field.
func (mc *MeetingCreate) SetErrorMessage(s string) *MeetingCreate {
	mc.mutation.SetErrorMessage(s)
	return mc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableErrorMessage(s *string) *MeetingCreate {
	if s != nil {
		mc.SetErrorMessage(*s)
	}
	return mc
}

// SetCreatedAt sets the "created_at" field.
func (mc *MeetingCreate) SetCreatedAt(t time.Time) *MeetingCreate {
	mc.mutation.SetCreatedAt(t)
	return mc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableCreatedAt(t *time.Time) *MeetingCreate {
	if t != nil {
		mc.SetCreatedAt(*t)
	}
	return mc
}

// SetID sets the "id" field.
func (mc *MeetingCreate) SetID(u uuid.UUID) *MeetingCreate {
	mc.mutation.SetID(u)
	return mc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableID(u *uuid.UUID) *MeetingCreate {
	if u != nil {
		mc.SetID(*u)
	}
	return mc
}

// Mutation returns the MeetingMutation object of the builder.
func (mc *MeetingCreate) Mutation() *MeetingMutation {
	return mc.mutation
}

// Save creates the Meeting in the database.
func (mc *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	mc.defaults()
	return withHooks(ctx, mc.sqlSave, mc.mutation, mc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mc *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := mc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mc *MeetingCreate) Exec(ctx context.Context) error {
	_, err := mc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mc *MeetingCreate) ExecX(ctx context.Context) {
	if err := mc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mc *MeetingCreate) defaults() {
	if _, ok := mc.mutation.Status(); !ok {
		v := meeting.DefaultStatus
		mc.mutation.SetStatus(v)
	}
	if _, ok := mc.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		mc.mutation.SetCreatedAt(v)
	}
	if _, ok := mc.mutation.ID(); !ok {
		v := meeting.DefaultID()
		mc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mc *MeetingCreate) check() error {
	if _, ok := mc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Meeting.title"`)}
	}
	if _, ok := mc.mutation.InputKind(); !ok {
		return &ValidationError{Name: "input_kind", err: errors.New(`ent: missing required field "Meeting.input_kind"`)}
	}
	if v, ok := mc.mutation.InputKind(); ok {
		if err := meeting.InputKindValidator(v); err != nil {
			return &ValidationError{Name: "input_kind", err: fmt.Errorf(`ent: validator failed for field "Meeting.input_kind": %w`, err)}
		}
	}
	if _, ok := mc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Meeting.status"`)}
	}
	if v, ok := mc.mutation.Status(); ok {
		if err := meeting.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Meeting.status": %w`, err)}
		}
	}
	if _, ok := mc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	return nil
}

func (mc *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
	if err := mc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	mc.mutation.id = &_node.ID
	mc.mutation.done = true
	return _node, nil
}

func (mc *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: mc.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeUUID))
	)
	if id, ok := mc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := mc.mutation.OwnerUserID(); ok {
		_spec.SetField(meeting.FieldOwnerUserID, field.TypeUUID, value)
		_node.OwnerUserID = &value
	}
	if value, ok := mc.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := mc.mutation.InputKind(); ok {
		_spec.SetField(meeting.FieldInputKind, field.TypeEnum, value)
		_node.InputKind = value
	}
	if value, ok := mc.mutation.Status(); ok {
		_spec.SetField(meeting.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := mc.mutation.Transcript(); ok {
		_spec.SetField(meeting.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := mc.mutation.SummaryPoints(); ok {
		_spec.SetField(meeting.FieldSummaryPoints, field.TypeJSON, value)
		_node.SummaryPoints = value
	}
	if value, ok := mc.mutation.Decisions(); ok {
		_spec.SetField(meeting.FieldDecisions, field.TypeJSON, value)
		_node.Decisions = value
	}
	if value, ok := mc.mutation.ActionItems(); ok {
		_spec.SetField(meeting.FieldActionItems, field.TypeJSON, value)
		_node.ActionItems = value
	}
	if value, ok := mc.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := mc.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (mcb *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if mcb.err != nil {
		return nil, mcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mcb.builders))
	nodes := make([]*Meeting, len(mcb.builders))
	mutators := make([]Mutator, len(mcb.builders))
	for i := range mcb.builders {
		func(i int, root context.Context) {
			builder := mcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, mcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, mcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mcb *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := mcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mcb *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := mcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcb *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := mcb.Exec(ctx); err != nil {
		panic(err)
	}
}
