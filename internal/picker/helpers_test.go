package picker

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// march15 is a Friday morning in March 2024.
var march15 = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

func newTestController(t *testing.T, start time.Time, opts ...Option) (*Controller, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(start)
	c := New(append([]Option{WithClock(clock)}, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c, clock
}

// waitForTimers blocks until exactly n timers are armed on clock.
func waitForTimers(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n), "waiting for %d timers", n)
}

func requireView(t *testing.T, c *Controller, month time.Month, year int) {
	t.Helper()
	require.Eventually(t, func() bool {
		s := c.State()
		return s.Month == month && s.Year == year
	}, time.Second, time.Millisecond, "want view %s %d, got %+v", month, year, c.State())
}
