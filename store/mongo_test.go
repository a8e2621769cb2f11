package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsBreakerSuccess(t *testing.T) {
	assert.True(t, isBreakerSuccess(nil))
	assert.True(t, isBreakerSuccess(ErrProfileNotFound))
	assert.True(t, isBreakerSuccess(mongo.ErrNoDocuments))
	assert.True(t, isBreakerSuccess(context.Canceled))
	assert.True(t, isBreakerSuccess(fmt.Errorf("wrapped: %w", ErrProfileNotFound)))

	assert.False(t, isBreakerSuccess(context.DeadlineExceeded))
	assert.False(t, isBreakerSuccess(errors.New("connection refused")))
}

func TestBreakerTripsOnConsecutiveFailures(t *testing.T) {
	cb := newBreaker(BreakerConfig{
		Timeout:             time.Minute,
		ConsecutiveFailures: 2,
	})
	m := &mongoDB{breaker: cb}

	down := errors.New("connection refused")
	fail := func() (interface{}, error) { return nil, down }

	_, err := m.execute(fail)
	assert.Equal(t, down, err)
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, err = m.execute(fail)
	assert.Equal(t, down, err)
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err = m.execute(func() (interface{}, error) { return "ok", nil })
	assert.Equal(t, gobreaker.ErrOpenState, err)
}

func TestBreakerIgnoresRequestErrors(t *testing.T) {
	cb := newBreaker(BreakerConfig{ConsecutiveFailures: 1})
	m := &mongoDB{breaker: cb}

	for i := 0; i < 5; i++ {
		_, err := m.execute(func() (interface{}, error) { return nil, ErrProfileNotFound })
		assert.Equal(t, ErrProfileNotFound, err)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
