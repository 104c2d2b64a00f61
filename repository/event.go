package repository

import (
	"context"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/jmoiron/sqlx"
	"time"
)

// Event ...
type Event interface {
	// FindDueEvents returns events with begin <= start_at < end and reminder flag false or NULL
	FindDueEvents(ctx context.Context, begin time.Time, end time.Time) ([]model.Event, error)

	// LockDueEvents is FindDueEvents with row locks, skipping rows locked by other transactions
	LockDueEvents(ctx context.Context, begin time.Time, end time.Time) ([]model.Event, error)

	MarkReminderSent(ctx context.Context, eventIDs []string) error
	UpsertEvent(ctx context.Context, event model.Event) error
	GetEvent(ctx context.Context, id string) (model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

const selectDueEventsQuery = `
SELECT id, title, slug, start_at, club_id, created_by, reminder_24h_sent
FROM event
WHERE start_at >= ? AND start_at < ?
	AND (reminder_24h_sent = FALSE OR reminder_24h_sent IS NULL)
ORDER BY start_at, id
`

// FindDueEvents ...
func (r *eventImpl) FindDueEvents(ctx context.Context, begin time.Time, end time.Time) ([]model.Event, error) {
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, selectDueEventsQuery, begin.UTC(), end.UTC())
	return result, err
}

// LockDueEvents ...
func (r *eventImpl) LockDueEvents(ctx context.Context, begin time.Time, end time.Time) ([]model.Event, error) {
	query := selectDueEventsQuery + `FOR UPDATE SKIP LOCKED`

	var result []model.Event
	err := GetTx(ctx).SelectContext(ctx, &result, query, begin.UTC(), end.UTC())
	return result, err
}

// MarkReminderSent ...
func (r *eventImpl) MarkReminderSent(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE event SET reminder_24h_sent = TRUE WHERE id IN (?)`, eventIDs)
	if err != nil {
		return err
	}
	_, err = GetTx(ctx).ExecContext(ctx, query, args...)
	return err
}

// UpsertEvent ...
func (r *eventImpl) UpsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO event (
	id, title, slug, start_at, club_id, created_by, reminder_24h_sent
) VALUES (
	:id, :title, :slug, :start_at, :club_id, :created_by, :reminder_24h_sent
) AS NEW
ON DUPLICATE KEY UPDATE
	title = NEW.title,
	slug = NEW.slug,
	start_at = NEW.start_at,
	club_id = NEW.club_id,
	created_by = NEW.created_by,
	reminder_24h_sent = NEW.reminder_24h_sent
`
	event.StartAt = event.StartAt.UTC()
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// GetEvent ...
func (r *eventImpl) GetEvent(ctx context.Context, id string) (model.Event, error) {
	query := `
SELECT id, title, slug, start_at, club_id, created_by, reminder_24h_sent
FROM event WHERE id = ?
`
	var result model.Event
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}
