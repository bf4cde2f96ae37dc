package picker

import (
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// nextMidnight returns the start of the local day after now.
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// armMidnightLocked schedules the rollover of "today" at the next local
// midnight. The timer re-arms itself on every firing.
func (c *Controller) armMidnightLocked() {
	now := c.clock.Now()
	wait := nextMidnight(now).Sub(now)
	c.midnight = c.clock.AfterFunc(wait, c.rollover)
}

func (c *Controller) rollover() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.today = calendar.FromTime(c.clock.Now())
	c.armMidnightLocked()
	today := c.today
	c.mu.Unlock()

	c.log.Debug("day rolled over", zap.Stringer("today", today))
	c.refresh()
}
