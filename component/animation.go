package component

// Animation steps through a run of frames on a sprite sheet. Frames are
// sheet indices starting at Start; each is shown for Delay updates.
type Animation struct {
	Start      int
	FrameCount int
	Delay      int
	// Loops is the number of full cycles to play; 0 repeats forever.
	Loops int

	current  int
	tick     int
	cycles   int
	finished bool
}

// NewAnimation creates an Animation. A delay <= 0 shows every frame for one
// update.
func NewAnimation(start, frameCount, delay, loops int) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	if delay < 1 {
		delay = 1
	}
	if loops < 0 {
		loops = 0
	}
	return &Animation{
		Start:      start,
		FrameCount: frameCount,
		Delay:      delay,
		Loops:      loops,
	}
}

// Update advances the animation by one game update.
func (a *Animation) Update() {
	if a == nil || a.finished {
		return
	}
	a.tick++
	if a.tick < a.Delay {
		return
	}
	a.tick = 0
	a.current++
	if a.current < a.FrameCount {
		return
	}
	a.cycles++
	if a.Loops > 0 && a.cycles >= a.Loops {
		a.current = a.FrameCount - 1
		a.finished = true
		return
	}
	a.current = 0
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
	a.cycles = 0
	a.finished = false
}

// Frame returns the sheet index of the current frame.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.Start + a.current
}

func (a *Animation) Finished() bool {
	return a != nil && a.finished
}
