package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace tracks cold start milestones from process launch to the first
// panel frame. Enabled only when the logger level is debug or trace.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	enabled    bool
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	return &StartupTrace{
		t0:         time.Now(),
		milestones: make([]Milestone, 0, 8),
		logger:     logger,
		enabled:    logger != nil && logger.GetLevel() <= zerolog.DebugLevel,
	}
}

// Mark records a milestone with the given name.
func (st *StartupTrace) Mark(name string) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
}

// Finish marks the trace complete and emits a summary. Later calls are no-ops.
func (st *StartupTrace) Finish() {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first panel frame")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

// Enabled returns whether the trace is active.
func (st *StartupTrace) Enabled() bool {
	if st == nil {
		return false
	}
	return st.enabled
}
