// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)
