// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "input_kind", Type: field.TypeEnum, Enums: []string{"audio", "text"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "completed", "error"}, Default: "processing"},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_points", Type: field.TypeJSON, Nullable: true},
		{Name: "decisions", Type: field.TypeJSON, Nullable: true},
		{Name: "action_items", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MeetingsTable,
	}
)

func init() {
}
