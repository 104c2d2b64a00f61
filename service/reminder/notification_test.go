package reminder

import (
	"database/sql"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEventLink(t *testing.T) {
	assert.Equal(t, "/events/movie-night-42", eventLink(model.Event{Slug: newNullString("movie-night-42")}))
	assert.Equal(t, "/events", eventLink(model.Event{}))
	assert.Equal(t, "/events", eventLink(model.Event{Slug: newNullString("")}))
}

func TestReminderMessage(t *testing.T) {
	assert.Equal(t, `Reminder: "Movie Night" starts in 24 hours.`, reminderMessage("Movie Night"))
}

func TestBuildNotifications(t *testing.T) {
	e := movieNight()
	e.StartAt = newTime("2022-05-11T12:05:00+02:00")

	result := buildNotifications([]model.Event{e}, map[string][]string{
		"ev01": {"u01", "u02"},
	})

	payload := model.NotificationPayload{
		Title:      "Movie Night",
		Message:    `Reminder: "Movie Night" starts in 24 hours.`,
		Link:       "/events/movie-night-42",
		EventID:    "ev01",
		EventSlug:  "movie-night-42",
		EventTitle: "Movie Night",
		EventDate:  "2022-05-11T10:05:00Z",
	}
	assert.Equal(t, []model.Notification{
		{
			UserID:  "u01",
			Type:    model.NotificationTypeEventReminder24h,
			ActorID: sql.NullString{},
			ClubID:  newNullString("club01"),
			Payload: payload,
		},
		{
			UserID:  "u02",
			Type:    model.NotificationTypeEventReminder24h,
			ActorID: sql.NullString{},
			ClubID:  newNullString("club01"),
			Payload: payload,
		},
	}, result)
}

func TestBuildNotifications_No_Recipients(t *testing.T) {
	result := buildNotifications([]model.Event{movieNight()}, map[string][]string{"ev01": {}})
	assert.Equal(t, 0, len(result))
}
