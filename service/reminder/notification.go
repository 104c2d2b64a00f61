package reminder

import (
	"database/sql"
	"github.com/QuangTung97/club-reminder/model"
	"time"
)

const eventsPath = "/events"

func reminderMessage(title string) string {
	return `Reminder: "` + title + `" starts in 24 hours.`
}

func eventLink(e model.Event) string {
	if e.Slug.Valid && e.Slug.String != "" {
		return eventsPath + "/" + e.Slug.String
	}
	return eventsPath
}

func newReminderPayload(e model.Event) model.NotificationPayload {
	return model.NotificationPayload{
		Title:   e.Title,
		Message: reminderMessage(e.Title),
		Link:    eventLink(e),

		EventID:    e.ID,
		EventSlug:  e.Slug.String,
		EventTitle: e.Title,
		EventDate:  e.StartAt.UTC().Format(time.RFC3339),
	}
}

// buildNotifications keeps the order of events, then recipients
func buildNotifications(events []model.Event, recipients map[string][]string) []model.Notification {
	var result []model.Notification
	for _, e := range events {
		payload := newReminderPayload(e)
		for _, userID := range recipients[e.ID] {
			result = append(result, model.Notification{
				UserID:  userID,
				Type:    model.NotificationTypeEventReminder24h,
				ActorID: sql.NullString{},
				ClubID:  e.ClubID,
				Payload: payload,
			})
		}
	}
	return result
}

func eventIDs(events []model.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
