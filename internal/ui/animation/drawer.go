// Package animation drives the drawer between its open and closed offsets
// after a touch drag ends.
package animation

import (
	"math"
	"time"
)

const (
	DefaultStep      = 20.0
	DefaultThreshold = 0.25
	DefaultRateHz    = 120
)

// Direction is the way the drag that started the animation was heading.
type Direction int

const (
	Opening Direction = iota
	Closing
)

func (d Direction) String() string {
	if d == Opening {
		return "opening"
	}
	return "closing"
}

// DirectionFor maps the touch session's opening flag to a Direction.
func DirectionFor(opening bool) Direction {
	if opening {
		return Opening
	}
	return Closing
}

// Params controls the snap animation.
type Params struct {
	// Step is the offset change per tick in logical pixels.
	Step float64
	// Threshold is the fraction of the drawer height past which an opening
	// drag completes. Closing uses 1 - Threshold.
	Threshold float64
	// Interval is the delay between ticks.
	Interval time.Duration
}

func DefaultParams() Params {
	return Params{
		Step:      DefaultStep,
		Threshold: DefaultThreshold,
		Interval:  IntervalForRate(DefaultRateHz),
	}
}

// IntervalForRate converts a tick rate to a tick interval.
func IntervalForRate(hz int) time.Duration {
	if hz <= 0 {
		hz = DefaultRateHz
	}
	return time.Second / time.Duration(hz)
}

// Outcome is the state of the animation after a tick.
type Outcome int

const (
	Running Outcome = iota
	Opened
	Closed
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Done reports whether the animation reached a terminal state.
func (o Outcome) Done() bool {
	return o != Running
}

// Threshold returns the snap point for dir on a drawer of height maxOffset.
func Threshold(maxOffset float64, dir Direction, p Params) float64 {
	if dir == Opening {
		return maxOffset * p.Threshold
	}
	return maxOffset - maxOffset*p.Threshold
}

// Step advances offset by one tick. Offsets at or past the snap point move
// toward maxOffset, the rest toward zero. Terminal offsets are clamped.
func Step(offset, maxOffset float64, dir Direction, p Params) (float64, Outcome) {
	if offset >= Threshold(maxOffset, dir, p) {
		offset += p.Step
	} else {
		offset -= p.Step
	}

	switch {
	case offset <= 0:
		return 0, Closed
	case offset >= maxOffset:
		return maxOffset, Opened
	default:
		return offset, Running
	}
}

// MaxTicks is the upper bound of ticks Step needs to reach a terminal state.
func MaxTicks(maxOffset float64, p Params) int {
	if maxOffset <= 0 || p.Step <= 0 {
		return 0
	}
	return int(math.Ceil(maxOffset / p.Step))
}

// Driver holds the single drawer animation.
type Driver struct {
	params    Params
	direction Direction
	active    bool
	ticks     int
}

func NewDriver(p Params) *Driver {
	return &Driver{params: p}
}

// Start begins an animation, replacing any running one.
func (d *Driver) Start(dir Direction) {
	d.direction = dir
	d.active = true
	d.ticks = 0
}

// Stop abandons the running animation.
func (d *Driver) Stop() {
	d.active = false
}

func (d *Driver) Active() bool {
	return d.active
}

func (d *Driver) Direction() Direction {
	return d.direction
}

// Ticks returns the number of ticks the current or last animation ran.
func (d *Driver) Ticks() int {
	return d.ticks
}

func (d *Driver) Interval() time.Duration {
	return d.params.Interval
}

func (d *Driver) Params() Params {
	return d.params
}

// SetParams replaces the animation parameters. A running animation picks
// them up on its next tick.
func (d *Driver) SetParams(p Params) {
	d.params = p
}

// Tick advances the running animation. A drawer with no height yet snaps
// straight to Opened at offset zero.
func (d *Driver) Tick(offset, maxOffset float64) (float64, Outcome) {
	if !d.active {
		if offset <= 0 {
			return 0, Closed
		}
		return offset, Opened
	}
	d.ticks++
	if maxOffset <= 0 {
		d.active = false
		return 0, Opened
	}

	next, outcome := Step(offset, maxOffset, d.direction, d.params)
	if outcome.Done() {
		d.active = false
	}
	return next, outcome
}
