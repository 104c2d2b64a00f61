package model

import (
	"database/sql"
	"time"
)

// Event is a club screening or meetup
type Event struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Slug      sql.NullString `db:"slug"`
	StartAt   time.Time      `db:"start_at"`
	ClubID    sql.NullString `db:"club_id"`
	CreatedBy sql.NullString `db:"created_by"`

	// Reminder24hSent is NULL for rows created before the column existed, treated as false
	Reminder24hSent sql.NullBool `db:"reminder_24h_sent"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ReminderSent ...
func (e Event) ReminderSent() bool {
	return e.Reminder24hSent.Valid && e.Reminder24hSent.Bool
}
