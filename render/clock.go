package render

import "time"

// Clock reports milliseconds of unpaused time since it was created.
type Clock struct {
	now    func() time.Time
	start  time.Time
	paused time.Time
	frozen bool
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

func (c *Clock) Ticks() int64 {
	t := c.now()
	if c.frozen {
		t = c.paused
	}
	return t.Sub(c.start).Milliseconds()
}

// Pause freezes Ticks until Resume.
func (c *Clock) Pause() {
	if c.frozen {
		return
	}
	c.paused = c.now()
	c.frozen = true
}

func (c *Clock) Resume() {
	if !c.frozen {
		return
	}
	c.start = c.start.Add(c.now().Sub(c.paused))
	c.frozen = false
}

func (c *Clock) Paused() bool { return c.frozen }
