package picker

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// press is an active press-and-hold gesture. gen identifies it so a timer
// that fires after the gesture was released or replaced does nothing.
type press struct {
	gen   uint64
	dir   Direction
	unit  Unit
	timer clockwork.Timer
}

// Press performs one step immediately and, while the gesture is held,
// repeats it every repeat interval once the initial delay has passed.
// A new Press replaces any gesture in progress.
func (c *Controller) Press(dir Direction, unit Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.stopPressLocked()
	c.stepLocked(dir, unit)

	c.pressGen++
	p := &press{gen: c.pressGen, dir: dir, unit: unit}
	p.timer = c.clock.AfterFunc(c.delay, func() { c.repeat(p.gen) })
	c.press = p
}

// Release ends the press-and-hold gesture, cancelling any pending repeat.
// Releasing with no gesture in progress is a no-op.
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.press != nil {
		c.log.Debug("press released", zap.Uint64("gen", c.press.gen))
	}
	c.stopPressLocked()
}

// Pressing reports whether a press-and-hold gesture is in progress.
func (c *Controller) Pressing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.press != nil
}

func (c *Controller) repeat(gen uint64) {
	c.mu.Lock()
	p := c.press
	if c.closed || p == nil || p.gen != gen {
		c.mu.Unlock()
		return
	}
	c.stepLocked(p.dir, p.unit)
	p.timer = c.clock.AfterFunc(c.interval, func() { c.repeat(gen) })
	c.mu.Unlock()

	c.refresh()
}

func (c *Controller) stopPressLocked() {
	if c.press == nil {
		return
	}
	c.press.timer.Stop()
	c.press = nil
}
