// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
	"github.com/honeybotlabs/honeybot/ent/schema"
	"github.com/honeybotlabs/honeybot/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescAcknowledged is the schema descriptor for acknowledged field.
	alertDescAcknowledged := alertFields[7].Descriptor()
	// alert.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	alert.DefaultAcknowledged = alertDescAcknowledged.Default.(bool)
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[8].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	botFields := schema.Bot{}.Fields()
	_ = botFields
	// botDescRegisteredAt is the schema descriptor for registered_at field.
	botDescRegisteredAt := botFields[9].Descriptor()
	// bot.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	bot.DefaultRegisteredAt = botDescRegisteredAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[12].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	novelpatternFields := schema.NovelPattern{}.Fields()
	_ = novelpatternFields
	// novelpatternDescOccurrenceCount is the schema descriptor for occurrence_count field.
	novelpatternDescOccurrenceCount := novelpatternFields[3].Descriptor()
	// novelpattern.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	novelpattern.DefaultOccurrenceCount = novelpatternDescOccurrenceCount.Default.(int)
	// novelpatternDescFirstSeenAt is the schema descriptor for first_seen_at field.
	novelpatternDescFirstSeenAt := novelpatternFields[4].Descriptor()
	// novelpattern.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	novelpattern.DefaultFirstSeenAt = novelpatternDescFirstSeenAt.Default.(func() time.Time)
	// novelpatternDescLastSeenAt is the schema descriptor for last_seen_at field.
	novelpatternDescLastSeenAt := novelpatternFields[5].Descriptor()
	// novelpattern.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	novelpattern.DefaultLastSeenAt = novelpatternDescLastSeenAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[3].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescFinalScore is the schema descriptor for final_score field.
	sessionDescFinalScore := sessionFields[6].Descriptor()
	// session.DefaultFinalScore holds the default value on creation for the final_score field.
	session.DefaultFinalScore = sessionDescFinalScore.Default.(float64)
	// sessionDescMaxScore is the schema descriptor for max_score field.
	sessionDescMaxScore := sessionFields[7].Descriptor()
	// session.DefaultMaxScore holds the default value on creation for the max_score field.
	session.DefaultMaxScore = sessionDescMaxScore.Default.(float64)
	// sessionDescTotalMessages is the schema descriptor for total_messages field.
	sessionDescTotalMessages := sessionFields[8].Descriptor()
	// session.DefaultTotalMessages holds the default value on creation for the total_messages field.
	session.DefaultTotalMessages = sessionDescTotalMessages.Default.(int)
	// sessionDescDetectionCount is the schema descriptor for detection_count field.
	sessionDescDetectionCount := sessionFields[9].Descriptor()
	// session.DefaultDetectionCount holds the default value on creation for the detection_count field.
	session.DefaultDetectionCount = sessionDescDetectionCount.Default.(int)
	// sessionDescHoneypotResponses is the schema descriptor for honeypot_responses field.
	sessionDescHoneypotResponses := sessionFields[10].Descriptor()
	// session.DefaultHoneypotResponses holds the default value on creation for the honeypot_responses field.
	session.DefaultHoneypotResponses = sessionDescHoneypotResponses.Default.(int)
}
