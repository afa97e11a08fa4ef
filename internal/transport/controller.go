package transport

import (
	"github.com/abhiguop/netflix/internal/log"
	"github.com/abhiguop/netflix/internal/player"
)

// Phase tracks where a playback session is in its lifecycle.  Transitions are
// strictly forward: no phase ever returns to an earlier one.
type Phase int

const (
	// PhaseUninitialized means the engine has not reported ready yet
	PhaseUninitialized Phase = iota
	// PhaseAwaitingDuration means the engine is up but the media duration is unknown
	PhaseAwaitingDuration
	// PhaseReady means the duration is known and transport controls are live
	PhaseReady
	// PhaseTornDown means the session has ended; all state is inert
	PhaseTornDown
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseAwaitingDuration:
		return "awaiting-duration"
	case PhaseReady:
		return "ready"
	case PhaseTornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// transitions is the dispatch table mapping each engine event to a pure
// state-transition function.  A missing entry means the event does not touch
// transport state.
var transitions = map[player.EventType]func(State, Snapshot) State{
	player.EventReady:          State.withEngineSnapshot,
	player.EventDurationChange: func(s State, snap Snapshot) State { return s.withDuration(snap.Duration) },
	player.EventPlay:           func(s State, _ Snapshot) State { return s.withPaused(false) },
	player.EventPause:          func(s State, _ Snapshot) State { return s.withPaused(true) },
	player.EventTimeUpdate:     func(s State, snap Snapshot) State { return s.withPlayedSeconds(snap.CurrentTime) },
}

// Controller owns the TransportState for one playback session.  It is both
// sides of the synchronization loop: it folds engine events into the state
// (reconciliation) and translates user intents into engine commands with an
// optimistic state update (dispatch).  The engine's own events are always
// authoritative and overwrite any optimistic prediction they disagree with.
//
// The Controller holds a non-owning reference to the engine for the lifetime
// of the session and must not retain it after Detach.
type Controller struct {
	engine player.Engine
	state  State
	phase  Phase
}

// NewController creates a transport controller bound to a live engine handle
func NewController(engine player.Engine) *Controller {
	return &Controller{
		engine: engine,
		state:  NewState(),
		phase:  PhaseUninitialized,
	}
}

// State returns the current transport snapshot
func (c *Controller) State() State {
	return c.state
}

// Phase returns the session lifecycle phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Ready reports whether transport controls should render and accept commands
func (c *Controller) Ready() bool {
	return c.phase == PhaseReady
}

// live reports whether engine events may still mutate state.  Checked before
// every mutation so events racing an async teardown are dropped, not applied.
func (c *Controller) live() bool {
	return c.phase != PhaseTornDown && c.engine != nil
}

// HandleEvent folds one engine event into the transport state.  Events
// delivered after Detach are dropped without mutation.
func (c *Controller) HandleEvent(ev player.Event) {
	if !c.live() {
		log.Debug("Dropping engine event after teardown", "event", ev.Type)
		return
	}

	transition, ok := transitions[ev.Type]
	if !ok {
		return
	}

	c.state = transition(c.state, c.snapshot())

	switch ev.Type {
	case player.EventReady:
		if c.phase == PhaseUninitialized {
			c.phase = PhaseAwaitingDuration
		}
	case player.EventDurationChange:
		// One-shot latch: once ready, repeat duration events only update the
		// duration value, never the phase.
		if c.phase == PhaseUninitialized || c.phase == PhaseAwaitingDuration {
			c.phase = PhaseReady
			log.Info("Transport ready", "duration", c.state.Duration)
		}
	}
}

// snapshot re-reads the engine's best-effort getters
func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Paused:      c.engine.Paused(),
		Muted:       c.engine.Muted(),
		Volume:      c.engine.Volume(),
		CurrentTime: c.engine.CurrentTime(),
		Duration:    c.engine.Duration(),
	}
}

// canCommand reports whether a user command may be issued.  Commands arriving
// before readiness or after teardown are silently ignored: the controls are
// not rendered in those windows, so this is a guard against mount/unmount
// races, not an error.
func (c *Controller) canCommand(name string) bool {
	if c.Ready() && c.engine != nil {
		return true
	}
	log.Debug("Ignoring transport command", "command", name, "phase", c.phase)
	return false
}

// TogglePlay flips between play and pause based on the current state
func (c *Controller) TogglePlay() {
	if c.state.Paused {
		c.Play()
	} else {
		c.Pause()
	}
}

// Play resumes playback.  Paused is flipped optimistically so the UI does not
// lag the keypress; the engine's own play event confirms or corrects it.
func (c *Controller) Play() {
	if !c.canCommand("play") {
		return
	}
	if err := c.engine.Play(); err != nil {
		log.Warn("Play command failed", "error", err)
		return
	}
	c.state = c.state.withPaused(false)
}

// Pause pauses playback with an optimistic state update
func (c *Controller) Pause() {
	if !c.canCommand("pause") {
		return
	}
	if err := c.engine.Pause(); err != nil {
		log.Warn("Pause command failed", "error", err)
		return
	}
	c.state = c.state.withPaused(true)
}

// ToggleMute flips the mute flag.  Volume is left untouched.
func (c *Controller) ToggleMute() {
	if !c.canCommand("toggle_mute") {
		return
	}
	next := !c.state.Muted
	if err := c.engine.SetMuted(next); err != nil {
		log.Warn("Mute command failed", "error", err)
		return
	}
	c.state = c.state.withMuted(next)
}

// SetVolume sets the engine volume, clamped to [0, 1], with an optimistic
// state update.  Does not alter Muted.
func (c *Controller) SetVolume(volume float64) {
	if !c.canCommand("set_volume") {
		return
	}
	volume = clamp01(volume)
	if err := c.engine.SetVolume(volume); err != nil {
		log.Warn("Volume command failed", "error", err)
		return
	}
	c.state = c.state.withVolume(volume)
}

// SeekTo moves the playhead to an absolute position, clamped to
// [0, Duration].  PlayedSeconds is deliberately NOT updated optimistically:
// seeking is asynchronous and the true landing position can differ from the
// request (keyframe snapping), so the engine's time-advanced event is waited
// for instead.
func (c *Controller) SeekTo(seconds float64) {
	if !c.canCommand("seek") {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if d := c.state.Duration; d > 0 && seconds > d {
		seconds = d
	}
	if err := c.engine.Seek(seconds); err != nil {
		log.Warn("Seek command failed", "error", err)
	}
}

// SetFullscreen toggles the engine's fullscreen rendering
func (c *Controller) SetFullscreen(on bool) {
	if !c.canCommand("fullscreen") {
		return
	}
	if err := c.engine.SetFullscreen(on); err != nil {
		log.Warn("Fullscreen command failed", "error", err)
	}
}

// Detach ends the session: the engine handle is dropped and the state becomes
// inert.  Events and commands arriving afterwards are no-ops.  Idempotent.
func (c *Controller) Detach() {
	if c.phase == PhaseTornDown {
		return
	}
	log.Debug("Detaching transport controller", "phase", c.phase)
	c.phase = PhaseTornDown
	c.engine = nil
}
