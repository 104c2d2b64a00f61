package model

import (
	"database/sql"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newNullString(s string) sql.NullString {
	return sql.NullString{Valid: true, String: s}
}

func TestRSVP_IsGoing(t *testing.T) {
	table := []struct {
		name   string
		status sql.NullString
		going  bool
	}{
		{name: "null", status: sql.NullString{}, going: true},
		{name: "empty", status: newNullString(""), going: true},
		{name: "going", status: newNullString("going"), going: true},
		{name: "upper-case", status: newNullString("GOING"), going: true},
		{name: "mixed-case", status: newNullString("Going"), going: true},
		{name: "not-going", status: newNullString("not_going"), going: false},
		{name: "maybe", status: newNullString("maybe"), going: false},
	}
	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			r := RSVP{EventID: "ev01", UserID: "u01", Status: e.status}
			assert.Equal(t, e.going, r.IsGoing())
		})
	}
}

func TestEvent_ReminderSent(t *testing.T) {
	assert.Equal(t, false, Event{}.ReminderSent())
	assert.Equal(t, false, Event{Reminder24hSent: sql.NullBool{Valid: true, Bool: false}}.ReminderSent())
	assert.Equal(t, true, Event{Reminder24hSent: sql.NullBool{Valid: true, Bool: true}}.ReminderSent())
}

func TestNotificationPayload_Value_Scan(t *testing.T) {
	p := NotificationPayload{
		Title:      "Movie Night",
		Message:    `Reminder: "Movie Night" starts in 24 hours.`,
		Link:       "/events/movie-night-42",
		EventID:    "ev01",
		EventSlug:  "movie-night-42",
		EventTitle: "Movie Night",
		EventDate:  "2022-05-10T10:00:00Z",
	}

	v, err := p.Value()
	assert.Equal(t, nil, err)

	var scanned NotificationPayload
	err = scanned.Scan(v)
	assert.Equal(t, nil, err)
	assert.Equal(t, p, scanned)

	err = scanned.Scan(`{"title":"A","link":"/events"}`)
	assert.Equal(t, nil, err)
	assert.Equal(t, NotificationPayload{Title: "A", Link: "/events"}, scanned)

	err = scanned.Scan(nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, NotificationPayload{}, scanned)

	err = scanned.Scan(12)
	assert.Error(t, err)
}
