package services

import "sync"

// ActionState is the lifecycle state of a single-flight async action
// (PDF export, logo background removal).
type ActionState int

const (
	StateIdle ActionState = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s ActionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in-flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ActionGate serializes one async action: Idle -> InFlight on trigger,
// InFlight -> Succeeded or Failed on completion. A trigger while InFlight
// is rejected, not queued; a completed gate passes through Idle before
// accepting the next trigger.
type ActionGate struct {
	mu    sync.Mutex
	state ActionState
}

func NewActionGate() *ActionGate {
	return &ActionGate{state: StateIdle}
}

// TryBegin attempts the Idle -> InFlight transition. It returns false when
// the action is already in flight. Terminal states re-arm through Idle.
func (g *ActionGate) TryBegin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateInFlight {
		return false
	}
	g.state = StateInFlight
	return true
}

// Finish records the outcome of the in-flight action. Calling it with no
// action in flight is a no-op.
func (g *ActionGate) Finish(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateInFlight {
		return
	}
	if err != nil {
		g.state = StateFailed
		return
	}
	g.state = StateSucceeded
}

// State returns the current lifecycle state.
func (g *ActionGate) State() ActionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
