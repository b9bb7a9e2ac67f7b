package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_NowIsUTC(t *testing.T) {
	p := NewRealTimeProvider()
	assert.Equal(t, time.UTC, p.Now().Location())
}

func TestRealTimeProvider_Sleep(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("completes", func(t *testing.T) {
		assert.NoError(t, p.Sleep(context.Background(), time.Millisecond))
	})

	t.Run("cancelled context interrupts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		start := time.Now()
		err := p.Sleep(ctx, time.Minute)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		assert.NoError(t, p.Sleep(context.Background(), 0))
	})
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p := NewRealTimeProvider()
	ctx, cancel := p.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
