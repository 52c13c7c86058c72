package views_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		breakpoint int
		width      int
		expected   bool
	}{
		{name: "Unknown width is wide", breakpoint: 768, width: 0, expected: false},
		{name: "At the breakpoint", breakpoint: 768, width: 768, expected: true},
		{name: "Just above the breakpoint", breakpoint: 768, width: 769, expected: false},
		{name: "Default breakpoint", breakpoint: 0, width: 1024, expected: true},
		{name: "Wide desktop", breakpoint: 0, width: 1440, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout := views.NewLayout(tc.breakpoint)

			assert.Equal(t, tc.expected, layout.CompactAt(tc.width))
		})
	}

	assert.Equal(t, views.DefaultCompactBreakpoint, views.NewLayout(-1).Breakpoint())
}

func TestSuperseder(t *testing.T) {
	t.Run("A newer request cancels the older one", func(t *testing.T) {
		// Arrange
		var s views.Superseder
		oldCtx, oldTicket := s.Begin(t.Context())

		// Act
		newCtx, newTicket := s.Begin(t.Context())
		defer newTicket.Done()

		// Assert
		require.ErrorIs(t, oldCtx.Err(), context.Canceled)
		assert.NoError(t, newCtx.Err())
		assert.False(t, oldTicket.Current())
		assert.True(t, newTicket.Current())

		applied := oldTicket.Apply(func() { t.Fatal("stale result applied") })
		assert.False(t, applied)
		oldTicket.Done()
		assert.True(t, newTicket.Current())
	})

	t.Run("Stale results are discarded", func(t *testing.T) {
		var s views.Superseder

		var mu sync.Mutex
		var rendered []string

		apply := func(v string) {
			mu.Lock()
			rendered = append(rendered, v)
			mu.Unlock()
		}

		slowStarted := make(chan struct{})
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()

			applied, err := views.Latest(t.Context(), &s, func(ctx context.Context) (string, error) {
				close(slowStarted)
				<-ctx.Done()

				return "", ctx.Err()
			}, apply)

			assert.False(t, applied)
			assert.NoError(t, err)
		}()

		<-slowStarted

		applied, err := views.Latest(t.Context(), &s, func(context.Context) (string, error) {
			return "page 2", nil
		}, apply)

		wg.Wait()

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, []string{"page 2"}, rendered)
	})

	t.Run("Errors of the current request are returned", func(t *testing.T) {
		var s views.Superseder
		cause := errors.New("upstream down")

		applied, err := views.Latest(t.Context(), &s, func(context.Context) (int, error) {
			return 0, cause
		}, func(int) {})

		assert.False(t, applied)
		assert.ErrorIs(t, err, cause)
	})
}

func TestSupersedeGroup(t *testing.T) {
	var g views.SupersedeGroup

	sA1, releaseA1 := g.Acquire("client-a")
	sB, releaseB := g.Acquire("client-b")
	sA2, releaseA2 := g.Acquire("client-a")

	require.Same(t, sA1, sA2)
	assert.NotSame(t, sA1, sB)
	assert.Equal(t, 2, g.Len())

	ctxA1, ticketA1 := sA1.Begin(t.Context())
	ctxB, ticketB := sB.Begin(t.Context())
	ctxA2, ticketA2 := sA2.Begin(t.Context())

	assert.ErrorIs(t, ctxA1.Err(), context.Canceled)
	assert.NoError(t, ctxB.Err())
	assert.NoError(t, ctxA2.Err())

	ticketA1.Done()
	releaseA1()
	assert.True(t, ticketA2.Current())
	assert.Equal(t, 2, g.Len())

	ticketA2.Done()
	releaseA2()
	ticketB.Done()
	releaseB()
	assert.Equal(t, 0, g.Len())
	assert.ErrorIs(t, ctxA2.Err(), context.Canceled)
}
