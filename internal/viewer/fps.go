package viewer

import "time"

// FPSCounter averages frame rate over one-second windows.
type FPSCounter struct {
	start  time.Time
	frames int
	fps    float64
}

// Tick records one frame at now. It returns true when a new average is ready.
func (c *FPSCounter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed < time.Second {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}

// FPS returns the last completed average.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
