package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReconnector_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	want := &gorm.DB{}
	r := &Reconnector{Delay: time.Millisecond}

	db, err := r.Connect(context.Background(), func() (*gorm.DB, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return want, nil
	})

	require.NoError(t, err)
	assert.Same(t, want, db)
	assert.Equal(t, 3, calls)
}

func TestReconnector_StopsAtMaxAttempts(t *testing.T) {
	calls := 0
	r := &Reconnector{Delay: time.Millisecond, MaxAttempts: 2}

	_, err := r.Connect(context.Background(), func() (*gorm.DB, error) {
		calls++
		return nil, errors.New("connection refused")
	})

	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 2, calls)
}

func TestReconnector_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Reconnector{Delay: time.Hour}

	calls := 0
	_, err := r.Connect(ctx, func() (*gorm.DB, error) {
		calls++
		cancel()
		return nil, errors.New("connection refused")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
