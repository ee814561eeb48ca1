// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerUserID holds the value of the "owner_user_id" field.
	OwnerUserID *uuid.UUID `json:"owner_user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// InputKind holds the value of the "input_kind" field.
	InputKind meeting.InputKind `json:"input_kind,omitempty"`
	// Status holds the value of the "status" field.
	Status meeting.Status `json:"status,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript string `json:"transcript,omitempty"`
	// SummaryPoints holds the value of the "summary_points" field.
	SummaryPoints []string `json:"summary_points,omitempty"`
	// Decisions holds the value of the "decisions" field.
	Decisions []string `json:"decisions,omitempty"`
	// ActionItems holds the value of the "action_items" field.
	ActionItems []schema.ActionItem `json:"action_items,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldOwnerUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case meeting.FieldSummaryPoints, meeting.FieldDecisions, meeting.FieldActionItems:
			values[i] = new([]byte)
		case meeting.FieldTitle, meeting.FieldInputKind, meeting.FieldStatus, meeting.FieldTranscript, meeting.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case meeting.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case meeting.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				m.ID = *value
			}
		case meeting.FieldOwnerUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value.Valid {
				m.OwnerUserID = new(uuid.UUID)
				*m.OwnerUserID = *value.S.(*uuid.UUID)
			}
		case meeting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				m.Title = value.String
			}
		case meeting.FieldInputKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_kind", values[i])
			} else if value.Valid {
				m.InputKind = meeting.InputKind(value.String)
			}
		case meeting.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				m.Status = meeting.Status(value.String)
			}
		case meeting.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				m.Transcript = value.String
			}
		case meeting.FieldSummaryPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.SummaryPoints); err != nil {
					return fmt.Errorf("unmarshal field summary_points: %w", err)
				}
			}
		case meeting.FieldDecisions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decisions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.Decisions); err != nil {
					return fmt.Errorf("unmarshal field decisions: %w", err)
				}
			}
		case meeting.FieldActionItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.ActionItems); err != nil {
					return fmt.Errorf("unmarshal field action_items: %w", err)
				}
			}
		case meeting.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				m.ErrorMessage = new(string)
				*m.ErrorMessage = value.String
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				m.CreatedAt = value.Time
			}
		default:
			m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (m *Meeting) Value(name string) (ent.Value, error) {
	return m.selectValues.Get(name)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(m.config).UpdateOne(m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (m *Meeting) Unwrap() *Meeting {
	_tx, ok := m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	m.config.driver = _tx.drv
	return m
}

// String implements the fmt.Stringer.
func (m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", m.ID))
	if v := m.OwnerUserID; v != nil {
		builder.WriteString("owner_user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(m.Title)
	builder.WriteString(", ")
	builder.WriteString("input_kind=")
	builder.WriteString(fmt.Sprintf("%v", m.InputKind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", m.Status))
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(m.Transcript)
	builder.WriteString(", ")
	builder.WriteString("summary_points=")
	builder.WriteString(fmt.Sprintf("%v", m.SummaryPoints))
	builder.WriteString(", ")
	builder.WriteString("decisions=")
	builder.WriteString(fmt.Sprintf("%v", m.Decisions))
	builder.WriteString(", ")
	builder.WriteString("action_items=")
	builder.WriteString(fmt.Sprintf("%v", m.ActionItems))
	builder.WriteString(", ")
	if v := m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
