package model

import (
	"database/sql"
	"strings"
	"time"
)

// RSVPStatus ...
type RSVPStatus string

const (
	// RSVPStatusGoing ...
	RSVPStatusGoing RSVPStatus = "going"

	// RSVPStatusNotGoing ...
	RSVPStatusNotGoing RSVPStatus = "not_going"

	// RSVPStatusMaybe ...
	RSVPStatusMaybe RSVPStatus = "maybe"
)

// RSVP of a user to an event
type RSVP struct {
	EventID string         `db:"event_id"`
	UserID  string         `db:"user_id"`
	Status  sql.NullString `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsGoing compares case-insensitively, an unset status counts as going
func (r RSVP) IsGoing() bool {
	if !r.Status.Valid || r.Status.String == "" {
		return true
	}
	return strings.EqualFold(r.Status.String, string(RSVPStatusGoing))
}
