package database

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultReconnectDelay = 5 * time.Second

// Reconnector retries a connection attempt with a fixed delay.
type Reconnector struct {
	Delay time.Duration
	// MaxAttempts of zero retries until ctx is done
	MaxAttempts int
	Logger      *zap.Logger
}

// Connect calls dial until it returns a connection. It gives up with the
// last dial error once MaxAttempts is reached, or with ctx.Err() when the
// context ends first.
func (r *Reconnector) Connect(ctx context.Context, dial func() (*gorm.DB, error)) (*gorm.DB, error) {
	delay := r.Delay
	if delay <= 0 {
		delay = defaultReconnectDelay
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for attempt := 1; ; attempt++ {
		db, err := dial()
		if err == nil {
			return db, nil
		}
		if r.MaxAttempts > 0 && attempt >= r.MaxAttempts {
			return nil, err
		}

		log.Warn("database connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
