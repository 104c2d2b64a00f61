package repository

import (
	"context"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/jmoiron/sqlx"
)

// RSVP ...
type RSVP interface {
	FindRSVPsByEvents(ctx context.Context, eventIDs []string) ([]model.RSVP, error)
	UpsertRSVP(ctx context.Context, rsvp model.RSVP) error
}

type rsvpImpl struct {
}

// NewRSVP ...
func NewRSVP() RSVP {
	return &rsvpImpl{}
}

// FindRSVPsByEvents ...
func (r *rsvpImpl) FindRSVPsByEvents(ctx context.Context, eventIDs []string) ([]model.RSVP, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT event_id, user_id, status
FROM event_rsvp
WHERE event_id IN (?)
ORDER BY event_id, user_id
`, eventIDs)
	if err != nil {
		return nil, err
	}

	var result []model.RSVP
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// UpsertRSVP ...
func (r *rsvpImpl) UpsertRSVP(ctx context.Context, rsvp model.RSVP) error {
	query := `
INSERT INTO event_rsvp (event_id, user_id, status)
VALUES (:event_id, :user_id, :status) AS NEW
ON DUPLICATE KEY UPDATE status = NEW.status
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, rsvp)
	return err
}
