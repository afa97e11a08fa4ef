// Package transport keeps the on-screen transport controls consistent with
// the live state of the media engine.  The engine emits asynchronous lifecycle
// events with no payload; this package folds them, together with optimistic
// updates from user commands, into a single TransportState snapshot that the
// UI renders from.
package transport

// State is an immutable snapshot of the transport controls.  It is owned
// exclusively by the Controller; the rendering layer only ever reads copies.
type State struct {
	// Paused is true until a play command succeeds or the engine reports resume
	Paused bool
	// Muted mirrors the engine mute flag
	Muted bool
	// Volume mirrors the engine volume in [0, 1].  Independent of Muted:
	// muting does not zero this value.
	Volume float64
	// PlayedSeconds is the last known playhead position
	PlayedSeconds float64
	// Duration is the total media length in seconds.  0 means unknown.
	Duration float64
	// Ready latches true once the engine first reports a known duration and
	// never reverts for the rest of the session.
	Ready bool
}

// NewState returns the transport defaults for a freshly mounted session
func NewState() State {
	return State{
		Paused: true,
		Volume: 1.0,
	}
}

// Snapshot carries the engine's best-effort getter values at the moment an
// event is applied.  Events carry no payload, so every transition re-reads the
// getters it needs through one of these.
type Snapshot struct {
	Paused      bool
	Muted       bool
	Volume      float64
	CurrentTime float64
	Duration    float64
}

// withEngineSnapshot captures the engine's initial state on the ready event.
// Duration may still read 0 here; readiness is latched by withDuration only.
func (s State) withEngineSnapshot(snap Snapshot) State {
	s.Paused = snap.Paused
	s.Muted = snap.Muted
	s.Volume = clamp01(snap.Volume)
	s.PlayedSeconds = snap.CurrentTime
	if snap.Duration > 0 {
		s.Duration = snap.Duration
	}
	return s
}

// withDuration records a duration-known event.  The Ready latch is one-shot:
// a repeat event overwrites Duration but is an idempotent no-op on Ready.
func (s State) withDuration(duration float64) State {
	if duration > 0 {
		s.Duration = duration
	}
	s.Ready = true
	return s
}

// withPaused records a level-triggered pause/resume event.  Repeated identical
// events are idempotent.
func (s State) withPaused(paused bool) State {
	s.Paused = paused
	return s
}

// withMuted records a mute flag change without touching Volume
func (s State) withMuted(muted bool) State {
	s.Muted = muted
	return s
}

// withVolume records a volume change without touching Muted
func (s State) withVolume(volume float64) State {
	s.Volume = clamp01(volume)
	return s
}

// withPlayedSeconds records a time-advanced event, clamped to [0, Duration]
// when the duration is known and passed through unclamped otherwise.
func (s State) withPlayedSeconds(seconds float64) State {
	if seconds < 0 {
		seconds = 0
	}
	if s.Duration > 0 && seconds > s.Duration {
		seconds = s.Duration
	}
	s.PlayedSeconds = seconds
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
