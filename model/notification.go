package model

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// NotificationType ...
type NotificationType string

const (
	// NotificationTypeEventReminder24h is produced by the reminder job
	NotificationTypeEventReminder24h NotificationType = "event_reminder_24h"
)

// Notification ...
type Notification struct {
	ID      int64               `db:"id"`
	UserID  string              `db:"user_id"`
	Type    NotificationType    `db:"type"`
	ActorID sql.NullString      `db:"actor_id"`
	ClubID  sql.NullString      `db:"club_id"`
	Payload NotificationPayload `db:"payload"`
	IsRead  bool                `db:"is_read"`

	CreatedAt time.Time `db:"created_at"`
}

// NotificationPayload is stored as JSON, denormalized so the client renders without a join
type NotificationPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`

	EventID    string `json:"event_id"`
	EventSlug  string `json:"event_slug,omitempty"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
}

var _ driver.Valuer = NotificationPayload{}
var _ sql.Scanner = &NotificationPayload{}

// Value ...
func (p NotificationPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan ...
func (p *NotificationPayload) Scan(src interface{}) error {
	*p = NotificationPayload{}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		return nil
	default:
		return errors.New("notification payload: unsupported scan type")
	}
}
