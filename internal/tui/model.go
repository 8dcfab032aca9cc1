package tui

import (
	"sync"
	"time"

	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/render"
)

// frameInterval paces animation frames while a reveal runs.
const frameInterval = 33 * time.Millisecond

// Clock is the time source for the dial face. Animations always run on the
// animation package's clock.
type Clock interface {
	Now() time.Time
}

// speedClock runs wall time forward speed times faster than real time
// from the moment it was created.
type speedClock struct {
	mu     sync.Mutex
	origin time.Time
	start  time.Time
	speed  float64
	now    func() time.Time
}

func newSpeedClock(speed float64, now func() time.Time) *speedClock {
	t := now()
	return &speedClock{origin: t, start: t, speed: speed, now: now}
}

func (c *speedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	elapsed := c.now().Sub(c.start)
	return c.origin.Add(time.Duration(float64(elapsed) * c.speed))
}

// model is the Bubbletea model for the watch view.
type model struct {
	state  *display.State
	raster *render.Raster
	clock  Clock
	speed  float64

	width  int
	height int

	animating bool
	reveals   int
	dropped   int
	stalled   bool
	quitting  bool
}

func newModel(state *display.State, raster *render.Raster, clock Clock, speed float64) model {
	if speed <= 0 {
		speed = 1
	}
	return model{
		state:  state,
		raster: raster,
		clock:  clock,
		speed:  speed,
		width:  80,
		height: 24,
	}
}

// tickDelay returns how long to wait until the dial clock crosses the next
// minute (or second) boundary after now. Fast-forwarded clocks wait
// proportionally less, but never less than a frame.
func (m model) tickDelay(now time.Time) time.Duration {
	unit := m.state.TickUnit().Interval()
	next := now.Truncate(unit).Add(unit)
	d := time.Duration(float64(next.Sub(now)) / m.speed)
	return max(d, frameInterval)
}
