// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldInputKind holds the string denoting the input_kind field in the database.
	FieldInputKind = "input_kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldSummaryPoints holds the string denoting the summary_points field in the database.
	FieldSummaryPoints = "summary_points"
	// FieldDecisions holds the string denoting the decisions field in the database.
	FieldDecisions = "decisions"
	// FieldActionItems holds the string denoting the action_items field in the database.
	FieldActionItems = "action_items"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldOwnerUserID,
	FieldTitle,
	FieldInputKind,
	FieldStatus,
	FieldTranscript,
	FieldSummaryPoints,
	FieldDecisions,
	FieldActionItems,
	FieldErrorMessage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// InputKind defines the type for the "input_kind" enum field.
type InputKind string

// InputKind values.
const (
	InputKindAudio InputKind = "audio"
	InputKindText  InputKind = "text"
)

func (ik InputKind) String() string {
	return string(ik)
}

// InputKindValidator is a validator for the "input_kind" field enum values. It is called by the builders before save.
func InputKindValidator(ik InputKind) error {
	switch ik {
	case InputKindAudio, InputKindText:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for input_kind field: %q", ik)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProcessing is the default value of the Status enum.
const DefaultStatus = StatusProcessing

// Status values.
const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProcessing, StatusCompleted, StatusError:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByInputKind orders the results by the input_kind field.
func ByInputKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTranscript orders the results by the transcript field.
func ByTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscript, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
