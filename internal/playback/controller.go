// Package playback governs the wish page's audio autoplay attempt: the
// automatic attempt on entering recipient view, the manual fallback when the
// browser blocks unprompted audio, and the exactly-once celebration trigger
// when playback starts.
package playback

// State is the controller's position in the playback lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateAttempting State = "attempting"
	StatePlaying    State = "playing"
	StateBlocked    State = "blocked_awaiting_gesture"
)

// Result describes what the caller should do after a transition. Celebrate
// is true exactly once per entry into StatePlaying. SurfaceError is true
// only when a user-initiated attempt failed; automatic attempts fail
// silently into the manual affordance.
type Result struct {
	State        State
	Celebrate    bool
	SurfaceError bool
}

// Controller is the per-session playback state machine. It is driven from a
// single goroutine (one page, one socket); it does not lock.
type Controller struct {
	state  State
	manual bool
	onPlay func()
}

// NewController creates a controller in StateIdle. onPlay, if non-nil, runs
// on every transition into StatePlaying, once per transition.
func NewController(onPlay func()) *Controller {
	return &Controller{state: StateIdle, onPlay: onPlay}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Begin starts an automatic playback attempt: entering recipient view, or an
// explicit celebrate action. Valid from any state; a fresh attempt simply
// supersedes whatever was happening.
func (c *Controller) Begin() Result {
	c.state = StateAttempting
	c.manual = false
	return Result{State: c.state}
}

// ManualPlay re-attempts playback from the manual affordance. It only means
// something while blocked; in any other state it is ignored.
func (c *Controller) ManualPlay() Result {
	if c.state != StateBlocked {
		return Result{State: c.state}
	}
	c.state = StateAttempting
	c.manual = true
	return Result{State: c.state}
}

// ReportResult feeds back the outcome of the in-flight attempt. Success
// enters StatePlaying and triggers the celebration; failure enters
// StateBlocked, loudly when the attempt was user-initiated. Outside
// StateAttempting the report is stale and ignored.
func (c *Controller) ReportResult(ok bool) Result {
	if c.state != StateAttempting {
		return Result{State: c.state}
	}
	if ok {
		c.state = StatePlaying
		if c.onPlay != nil {
			c.onPlay()
		}
		return Result{State: c.state, Celebrate: true}
	}
	wasManual := c.manual
	c.state = StateBlocked
	return Result{State: c.state, SurfaceError: wasManual}
}
