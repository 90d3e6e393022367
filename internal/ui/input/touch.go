package input

import (
	"context"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// DefaultCloseHandleRatio is the fraction of the drawer height above which a
// touch-down grabs the drawer handle.
const DefaultCloseHandleRatio = 0.95

// TouchState is the recognizer state.
type TouchState int

const (
	TouchIdle TouchState = iota
	TouchTrackingOpen
	TouchTrackingClose
)

func (s TouchState) String() string {
	switch s {
	case TouchIdle:
		return "idle"
	case TouchTrackingOpen:
		return "tracking-open"
	case TouchTrackingClose:
		return "tracking-close"
	default:
		return "unknown"
	}
}

// TouchSession is the single tracked touch point.
type TouchSession struct {
	ID      int32
	Start   entity.Point
	Offset  float64
	Origin  entity.WindowKind
	Opening bool
}

// GestureAction tells the caller which side effect a touch event requires.
type GestureAction int

const (
	// GestureNone means the event was ignored.
	GestureNone GestureAction = iota
	// GestureOpen means a drag started on the panel: show the drawer.
	GestureOpen
	// GestureClose means a drag started on the drawer handle.
	GestureClose
	// GestureMove means the tracked touch moved: update the offset.
	GestureMove
	// GestureRelease means the tracked touch ended: start the animation.
	GestureRelease
)

func (a GestureAction) String() string {
	switch a {
	case GestureNone:
		return "none"
	case GestureOpen:
		return "open"
	case GestureClose:
		return "close"
	case GestureMove:
		return "move"
	case GestureRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Gesture is the result of feeding one touch event to the recognizer.
type Gesture struct {
	Action  GestureAction
	Offset  float64
	Opening bool
}

// DrawerGeometry is the part of the drawer state the recognizer needs to
// decide whether a touch-down hit the close handle.
type DrawerGeometry struct {
	Mapped    bool
	MaxOffset float64
}

// GestureRecognizer classifies single-touch sequences into drawer open and
// close drags. Only one touch is tracked at a time: the first qualifying
// touch-down wins until it lifts.
type GestureRecognizer struct {
	ctx         context.Context
	session     *TouchSession
	handleRatio float64
}

func NewGestureRecognizer(ctx context.Context) *GestureRecognizer {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating gesture recognizer")

	return &GestureRecognizer{
		ctx:         ctx,
		handleRatio: DefaultCloseHandleRatio,
	}
}

// SetCloseHandleRatio changes the handle region. Values outside (0,1] are ignored.
func (r *GestureRecognizer) SetCloseHandleRatio(ratio float64) {
	if ratio <= 0 || ratio > 1 {
		return
	}
	r.handleRatio = ratio
}

// State returns the current recognizer state.
func (r *GestureRecognizer) State() TouchState {
	switch {
	case r.session == nil:
		return TouchIdle
	case r.session.Opening:
		return TouchTrackingOpen
	default:
		return TouchTrackingClose
	}
}

// Session returns a copy of the active session.
func (r *GestureRecognizer) Session() (TouchSession, bool) {
	if r.session == nil {
		return TouchSession{}, false
	}
	return *r.session, true
}

// Down handles a touch-down on the given window.
func (r *GestureRecognizer) Down(id int32, on entity.WindowKind, pos entity.Point, drawer DrawerGeometry) Gesture {
	log := logging.FromContext(r.ctx)

	if r.session != nil {
		log.Debug().
			Int32("touch_id", id).
			Int32("tracked_id", r.session.ID).
			Msg("touch ignored, session already active")
		return Gesture{Action: GestureNone}
	}

	switch {
	case on == entity.WindowPanel:
		r.begin(id, on, pos, true)
		return Gesture{Action: GestureOpen, Offset: pos.Y, Opening: true}

	case on == entity.WindowDrawer && drawer.Mapped && pos.Y >= drawer.MaxOffset*r.handleRatio:
		r.begin(id, on, pos, false)
		return Gesture{Action: GestureClose, Offset: pos.Y}
	}

	return Gesture{Action: GestureNone}
}

func (r *GestureRecognizer) begin(id int32, on entity.WindowKind, pos entity.Point, opening bool) {
	r.session = &TouchSession{
		ID:      id,
		Start:   pos,
		Offset:  pos.Y,
		Origin:  on,
		Opening: opening,
	}

	logging.FromContext(r.ctx).Debug().
		Int32("touch_id", id).
		Str("window", on.String()).
		Str("state", r.State().String()).
		Float64("y", pos.Y).
		Msg("touch session started")
}

// Motion handles a touch-motion event.
func (r *GestureRecognizer) Motion(id int32, pos entity.Point) Gesture {
	if r.session == nil || r.session.ID != id {
		return Gesture{Action: GestureNone}
	}

	r.session.Offset = pos.Y
	return Gesture{Action: GestureMove, Offset: pos.Y, Opening: r.session.Opening}
}

// Up handles a touch-up event.
func (r *GestureRecognizer) Up(id int32) Gesture {
	if r.session == nil || r.session.ID != id {
		return Gesture{Action: GestureNone}
	}
	return r.release("touch up")
}

// Cancel ends the active session as if the tracked touch lifted.
func (r *GestureRecognizer) Cancel() Gesture {
	if r.session == nil {
		return Gesture{Action: GestureNone}
	}
	return r.release("touch cancelled")
}

func (r *GestureRecognizer) release(reason string) Gesture {
	s := r.session
	r.session = nil

	logging.FromContext(r.ctx).Debug().
		Int32("touch_id", s.ID).
		Bool("opening", s.Opening).
		Float64("offset", s.Offset).
		Msg(reason)

	return Gesture{Action: GestureRelease, Offset: s.Offset, Opening: s.Opening}
}

// Reset drops the session without producing a release.
func (r *GestureRecognizer) Reset() {
	r.session = nil
}
