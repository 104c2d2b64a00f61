//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/QuangTung97/club-reminder/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

type eventTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Event
}

func newEventTest() *eventTest {
	tc := integration.NewTestCase()
	tc.Truncate("event")
	return &eventTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewEvent(),
	}
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newNullString(s string) sql.NullString {
	return sql.NullString{Valid: true, String: s}
}

func newNullBool(b bool) sql.NullBool {
	return sql.NullBool{Valid: true, Bool: b}
}

func newRSVP(eventID string, userID string, status string) model.RSVP {
	return model.RSVP{
		EventID: eventID,
		UserID:  userID,
		Status:  newNullString(status),
	}
}

func (e *eventTest) upsert(t *testing.T, events ...model.Event) {
	err := e.provider.Transact(newContext(), func(ctx context.Context) error {
		for _, ev := range events {
			if err := e.repo.UpsertEvent(ctx, ev); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)
}

func TestEvent_FindDueEvents__Window_Boundaries(t *testing.T) {
	e := newEventTest()

	begin := newTime("2022-05-11T09:45:00Z")
	end := newTime("2022-05-11T10:15:00Z")

	e.upsert(t,
		model.Event{ID: "ev-lower", Title: "Lower", StartAt: begin, Reminder24hSent: newNullBool(false)},
		model.Event{ID: "ev-upper", Title: "Upper", StartAt: end, Reminder24hSent: newNullBool(false)},
		model.Event{ID: "ev-before", Title: "Before", StartAt: begin.Add(-time.Second)},
		model.Event{ID: "ev-middle", Title: "Middle", StartAt: newTime("2022-05-11T10:00:00Z"),
			Slug: newNullString("middle"), ClubID: newNullString("club01"), CreatedBy: newNullString("u01")},
	)

	events, err := e.repo.FindDueEvents(e.provider.Readonly(newContext()), begin, end)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Event{
		{ID: "ev-lower", Title: "Lower", StartAt: begin, Reminder24hSent: newNullBool(false)},
		{
			ID: "ev-middle", Title: "Middle", StartAt: newTime("2022-05-11T10:00:00Z"),
			Slug: newNullString("middle"), ClubID: newNullString("club01"), CreatedBy: newNullString("u01"),
		},
	}, events)
}

func TestEvent_FindDueEvents__Null_And_False_Flags_Match(t *testing.T) {
	e := newEventTest()

	start := newTime("2022-05-11T10:00:00Z")
	e.upsert(t,
		model.Event{ID: "ev01", Title: "Null Flag", StartAt: start},
		model.Event{ID: "ev02", Title: "False Flag", StartAt: start, Reminder24hSent: newNullBool(false)},
		model.Event{ID: "ev03", Title: "Sent", StartAt: start, Reminder24hSent: newNullBool(true)},
	)

	events, err := e.repo.FindDueEvents(e.provider.Readonly(newContext()),
		start.Add(-15*time.Minute), start.Add(15*time.Minute))
	assert.Equal(t, nil, err)

	var ids []string
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"ev01", "ev02"}, ids)
}

func TestEvent_MarkReminderSent(t *testing.T) {
	e := newEventTest()

	start := newTime("2022-05-11T10:00:00Z")
	e.upsert(t,
		model.Event{ID: "ev01", Title: "A", StartAt: start},
		model.Event{ID: "ev02", Title: "B", StartAt: start, Reminder24hSent: newNullBool(false)},
		model.Event{ID: "ev03", Title: "C", StartAt: start},
	)

	err := e.provider.Transact(newContext(), func(ctx context.Context) error {
		return e.repo.MarkReminderSent(ctx, []string{"ev01", "ev02"})
	})
	assert.Equal(t, nil, err)

	readCtx := e.provider.Readonly(newContext())
	for _, id := range []string{"ev01", "ev02"} {
		ev, err := e.repo.GetEvent(readCtx, id)
		assert.Equal(t, nil, err)
		assert.Equal(t, true, ev.ReminderSent())
	}

	ev, err := e.repo.GetEvent(readCtx, "ev03")
	assert.Equal(t, nil, err)
	assert.Equal(t, sql.NullBool{}, ev.Reminder24hSent)

	events, err := e.repo.FindDueEvents(readCtx, start.Add(-time.Minute), start.Add(time.Minute))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, "ev03", events[0].ID)

	// empty ids is a no-op
	err = e.provider.Transact(newContext(), func(ctx context.Context) error {
		return e.repo.MarkReminderSent(ctx, nil)
	})
	assert.Equal(t, nil, err)
}

func TestEvent_LockDueEvents(t *testing.T) {
	e := newEventTest()

	start := newTime("2022-05-11T10:00:00Z")
	e.upsert(t,
		model.Event{ID: "ev01", Title: "A", StartAt: start},
		model.Event{ID: "ev02", Title: "B", StartAt: start, Reminder24hSent: newNullBool(true)},
	)

	err := e.provider.Transact(newContext(), func(ctx context.Context) error {
		events, err := e.repo.LockDueEvents(ctx, start.Add(-time.Minute), start.Add(time.Minute))
		if err != nil {
			return err
		}
		assert.Equal(t, 1, len(events))
		assert.Equal(t, "ev01", events[0].ID)
		return e.repo.MarkReminderSent(ctx, []string{events[0].ID})
	})
	assert.Equal(t, nil, err)

	ev, err := e.repo.GetEvent(e.provider.Readonly(newContext()), "ev01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ev.ReminderSent())
}
