package repository

import (
	"context"
	"github.com/QuangTung97/club-reminder/model"
)

// Notification ...
type Notification interface {
	// InsertNotifications inserts all rows in a single statement
	InsertNotifications(ctx context.Context, notifications []model.Notification) error
	FindNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error)
}

type notificationImpl struct {
}

// NewNotification ...
func NewNotification() Notification {
	return &notificationImpl{}
}

// InsertNotifications ...
func (r *notificationImpl) InsertNotifications(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `
INSERT INTO notification (user_id, type, actor_id, club_id, payload)
VALUES (:user_id, :type, :actor_id, :club_id, :payload)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, notifications)
	return err
}

// FindNotificationsByUser ...
func (r *notificationImpl) FindNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	query := `
SELECT id, user_id, type, actor_id, club_id, payload, is_read, created_at
FROM notification
WHERE user_id = ?
ORDER BY id
`
	var result []model.Notification
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, userID)
	return result, err
}
