// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent/meeting"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[10].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	// meetingDescID is the schema descriptor for id field.
	meetingDescID := meetingFields[0].Descriptor()
	// meeting.DefaultID holds the default value on creation for the id field.
	meeting.DefaultID = meetingDescID.Default.(func() uuid.UUID)
}
