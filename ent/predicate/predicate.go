// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Bot is the predicate function for bot builders.
type Bot func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// NovelPattern is the predicate function for novelpattern builders.
type NovelPattern func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
