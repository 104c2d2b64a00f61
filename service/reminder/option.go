package reminder

import "context"

//go:generate moq -out reminder_mocks_test.go . Locker

// Locker guards against overlapping invocations across processes
type Locker interface {
	// TryLock returns false when another invocation holds the lock
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

type serviceOptions struct {
	locker  Locker
	metrics *Metrics
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := serviceOptions{}
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithLocker ...
func WithLocker(l Locker) Option {
	return func(opts *serviceOptions) {
		opts.locker = l
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(opts *serviceOptions) {
		opts.metrics = m
	}
}
