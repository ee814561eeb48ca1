package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/meetingmind/backend/pkg/gen"
)

// ActionItem is stored as part of the JSON analysis payload.
type ActionItem struct {
	Owner       string  `json:"owner"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

type Meeting struct {
	ent.Schema
}

func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default((func() uuid.UUID)(gen.UUID())),
		field.UUID("owner_user_id", uuid.UUID{}).Optional().Nillable(),
		field.String("title"),
		field.Enum("input_kind").Values("audio", "text"),
		field.Enum("status").Values("processing", "completed", "error").
			Default("processing"),
		field.Text("transcript").Optional(),
		field.JSON("summary_points", []string{}).Optional(),
		field.JSON("decisions", []string{}).Optional(),
		field.JSON("action_items", []ActionItem{}).Optional(),
		field.Text("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}
