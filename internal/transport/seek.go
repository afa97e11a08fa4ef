package transport

// DragPhase tracks the seek bar's local input state machine:
// Idle -> Dragging (accumulating a pending value) -> Committing -> Idle.
// Only the transition out of Dragging issues an engine command.
type DragPhase int

const (
	// DragIdle means the displayed position follows the transport state
	DragIdle DragPhase = iota
	// DragActive means a drag is in progress and holds a pending position
	DragActive
	// DragCommitting means the pending position is being handed to the engine
	DragCommitting
)

// SeekAdapter converts continuous scrub input into a single discrete seek
// command on release.  While a drag is in progress it suppresses
// reconciler-driven playhead updates from the DISPLAYED value only - the
// underlying transport state keeps tracking engine time-advanced events, but
// the handle shown to the user is the user's pointer position.  This is what
// prevents the handle jumping backward when a stale time-advanced event races
// the drag.
type SeekAdapter struct {
	controller *Controller
	phase      DragPhase
	pending    float64
}

// NewSeekAdapter creates a seek adapter bound to a transport controller
func NewSeekAdapter(controller *Controller) *SeekAdapter {
	return &SeekAdapter{
		controller: controller,
		phase:      DragIdle,
	}
}

// Dragging reports whether a drag is currently in progress
func (a *SeekAdapter) Dragging() bool {
	return a.phase == DragActive
}

// StartDrag begins a drag at the current playhead position
func (a *SeekAdapter) StartDrag() {
	if a.phase != DragIdle {
		return
	}
	if !a.controller.Ready() {
		return
	}
	a.pending = a.controller.State().PlayedSeconds
	a.phase = DragActive
}

// DragTo moves the pending position to an absolute value in seconds, clamped
// to [0, Duration].  Starts a drag implicitly if none is in progress.
func (a *SeekAdapter) DragTo(seconds float64) {
	if a.phase == DragIdle {
		a.StartDrag()
	}
	if a.phase != DragActive {
		return
	}
	a.pending = a.clamp(seconds)
}

// DragBy moves the pending position by a relative number of seconds.  This is
// what key-driven scrubbing uses: each repeat of the scrub key extends the
// same drag.
func (a *SeekAdapter) DragBy(delta float64) {
	if a.phase == DragIdle {
		a.StartDrag()
	}
	if a.phase != DragActive {
		return
	}
	a.pending = a.clamp(a.pending + delta)
}

// Release commits the drag: the single seek command for the whole gesture is
// issued here, and normal display synchronization resumes.
func (a *SeekAdapter) Release() {
	if a.phase != DragActive {
		return
	}
	a.phase = DragCommitting
	a.controller.SeekTo(a.pending)
	a.phase = DragIdle
}

// Cancel abandons the drag without issuing any command
func (a *SeekAdapter) Cancel() {
	if a.phase != DragActive {
		return
	}
	a.phase = DragIdle
	a.pending = 0
}

// DisplaySeconds returns the playhead position the seek bar should render:
// the pending drag value while a drag is in progress, the authoritative
// transport state otherwise.
func (a *SeekAdapter) DisplaySeconds() float64 {
	if a.phase == DragActive {
		return a.pending
	}
	return a.controller.State().PlayedSeconds
}

func (a *SeekAdapter) clamp(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	if d := a.controller.State().Duration; d > 0 && seconds > d {
		return d
	}
	return seconds
}
