package reminder

import (
	"context"
	"github.com/QuangTung97/club-reminder/config"
	"github.com/QuangTung97/club-reminder/model"
	"github.com/QuangTung97/club-reminder/pkg/otellib"
	"github.com/QuangTung97/club-reminder/repository"
	"go.uber.org/zap"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	RunEventReminders(ctx context.Context) Result
}

// Result of a single invocation, Err is nil on success
type Result struct {
	EventsProcessed      int
	NotificationsCreated int

	// Skipped when another invocation holds the lock
	Skipped bool

	Err error
}

// Success ...
func (r Result) Success() bool {
	return r.Err == nil
}

// Service ...
type Service struct {
	conf     config.ReminderConfig
	provider repository.Provider

	eventRepo        repository.Event
	rsvpRepo         repository.RSVP
	notificationRepo repository.Notification

	opts  serviceOptions
	timer timer
}

var _ IService = &Service{}

// NewService ...
func NewService(
	conf config.ReminderConfig,
	provider repository.Provider,
	eventRepo repository.Event,
	rsvpRepo repository.RSVP,
	notificationRepo repository.Notification,
	options ...Option,
) *Service {
	return &Service{
		conf:     conf,
		provider: provider,

		eventRepo:        eventRepo,
		rsvpRepo:         rsvpRepo,
		notificationRepo: notificationRepo,

		opts:  newServiceOptions(options...),
		timer: realTimer{},
	}
}

func failedResult(ctx context.Context, step string, err error) Result {
	otellib.Extract(ctx).Error("run event reminders failed",
		zap.String("step", step), zap.Error(err))
	return Result{Err: err}
}

// RunEventReminders finds events starting in about 24 hours, notifies their creators and attendees,
// and flags the events so that later invocations skip them.
// No transaction spans the notification insert and the flag update.
func (s *Service) RunEventReminders(ctx context.Context) Result {
	start := s.timer.Now()
	result := s.runWithLock(ctx, start)
	s.opts.metrics.observe(result, s.timer.Now().Sub(start))
	return result
}

func (s *Service) runWithLock(ctx context.Context, now time.Time) Result {
	locker := s.opts.locker
	if locker == nil {
		return s.run(ctx, now)
	}

	acquired, err := locker.TryLock(ctx)
	if err != nil {
		return failedResult(ctx, "lock", err)
	}
	if !acquired {
		otellib.Extract(ctx).Info("event reminders already running elsewhere, skipped")
		return Result{Skipped: true}
	}
	defer func() {
		if err := locker.Unlock(ctx); err != nil {
			otellib.Extract(ctx).Warn("unlock event reminders", zap.Error(err))
		}
	}()

	return s.run(ctx, now)
}

func (s *Service) run(ctx context.Context, now time.Time) Result {
	logger := otellib.Extract(ctx)
	window := NewWindow(now, s.conf.Tolerance)

	events, err := s.findEvents(ctx, window)
	if err != nil {
		return failedResult(ctx, "find events", err)
	}

	if len(events) == 0 {
		logger.Info("no events due for reminder",
			zap.Time("window_begin", window.Begin), zap.Time("window_end", window.End))
		return Result{}
	}

	ids := eventIDs(events)
	readCtx := s.provider.Readonly(ctx)

	rsvps, err := s.rsvpRepo.FindRSVPsByEvents(readCtx, ids)
	if err != nil {
		return failedResult(ctx, "find rsvps", err)
	}

	notifications := buildNotifications(events, buildRecipients(events, rsvps))

	if len(notifications) > 0 {
		err = s.provider.Transact(ctx, func(ctx context.Context) error {
			return s.notificationRepo.InsertNotifications(ctx, notifications)
		})
		if err != nil {
			return failedResult(ctx, "insert notifications", err)
		}
	}

	// claimed events are already flagged
	if !s.conf.ClaimEvents {
		err = s.provider.Transact(ctx, func(ctx context.Context) error {
			return s.eventRepo.MarkReminderSent(ctx, ids)
		})
		if err != nil {
			r := failedResult(ctx, "mark reminder sent", err)
			r.NotificationsCreated = len(notifications)
			return r
		}
	}

	logger.Info("event reminders sent",
		zap.Int("events", len(events)),
		zap.Int("notifications", len(notifications)),
		zap.Strings("event_ids", ids),
	)

	return Result{
		EventsProcessed:      len(events),
		NotificationsCreated: len(notifications),
	}
}

func (s *Service) findEvents(ctx context.Context, window Window) ([]model.Event, error) {
	if !s.conf.ClaimEvents {
		return s.eventRepo.FindDueEvents(s.provider.Readonly(ctx), window.Begin, window.End)
	}

	var events []model.Event
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		events, err = s.eventRepo.LockDueEvents(ctx, window.Begin, window.End)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return s.eventRepo.MarkReminderSent(ctx, eventIDs(events))
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
