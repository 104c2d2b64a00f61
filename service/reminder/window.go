package reminder

import (
	"github.com/QuangTung97/club-reminder/config"
	"time"
)

// Window is [Begin, End)
type Window struct {
	Begin time.Time
	End   time.Time
}

// NewWindow centers the window at now + config.ReminderLeadTime
func NewWindow(now time.Time, tolerance time.Duration) Window {
	target := now.Add(config.ReminderLeadTime)
	return Window{
		Begin: target.Add(-tolerance),
		End:   target.Add(tolerance),
	}
}

// Contains ...
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Begin) && t.Before(w.End)
}

type timer interface {
	Now() time.Time
}

type realTimer struct {
}

func (realTimer) Now() time.Time {
	return time.Now()
}
