package debug

import "time"

// FrameCounter measures frame rate over fixed reporting intervals.
type FrameCounter struct {
	Interval time.Duration

	frames    int
	start     time.Time
	worst     time.Duration
	lastFrame time.Time
}

// FrameReport summarises one interval.
type FrameReport struct {
	Frames int
	FPS    float64
	Avg    time.Duration
	Worst  time.Duration
}

// NewFrameCounter creates a counter reporting every interval.
func NewFrameCounter(interval time.Duration, now time.Time) *FrameCounter {
	if interval <= 0 {
		interval = time.Second
	}
	return &FrameCounter{Interval: interval, start: now, lastFrame: now}
}

// Tick records a frame finishing at now. When an interval has elapsed it
// returns the report and true, and starts a new interval.
func (c *FrameCounter) Tick(now time.Time) (FrameReport, bool) {
	c.frames++
	if dt := now.Sub(c.lastFrame); dt > c.worst {
		c.worst = dt
	}
	c.lastFrame = now

	elapsed := now.Sub(c.start)
	if elapsed < c.Interval {
		return FrameReport{}, false
	}
	r := FrameReport{
		Frames: c.frames,
		FPS:    float64(c.frames) / elapsed.Seconds(),
		Avg:    elapsed / time.Duration(c.frames),
		Worst:  c.worst,
	}
	c.frames = 0
	c.worst = 0
	c.start = now
	return r, true
}
