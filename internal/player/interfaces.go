package player

import "context"

// EventType identifies a lifecycle event emitted by the media engine
type EventType string

const (
	// EventReady indicates the engine has loaded the media and can accept commands
	EventReady EventType = "ready"
	// EventDurationChange indicates the engine has (re)determined the media duration
	EventDurationChange EventType = "durationchange"
	// EventPlay indicates playback is running
	EventPlay EventType = "play"
	// EventPause indicates playback is paused
	EventPause EventType = "pause"
	// EventTimeUpdate indicates the playhead position has advanced
	EventTimeUpdate EventType = "timeupdate"
	// EventEnded indicates playback reached the end of the media or the engine exited
	EventEnded EventType = "ended"
	// EventError indicates the engine failed; Err carries the cause
	EventError EventType = "error"
)

// Event is a notification from the media engine.  Events carry no playback
// state payload: handlers re-read the relevant getters on the Engine, which
// always reflect the engine's latest best-effort snapshot.
type Event struct {
	Type EventType
	Err  error // set only when Type is EventError
}

// Engine is the command/event surface of the external media playback engine.
// The engine decodes and renders the media out-of-process; this interface only
// drives it and observes it.  Commands are fire-and-forget: results are
// observed through later events, never through a synchronous return value
// carrying playback state.
type Engine interface {
	// Load starts the engine with the given media source.  It returns once the
	// engine process is up and its control channel is connected.
	Load(ctx context.Context, sourceURL, mimeType string) error

	// Play resumes playback
	Play() error
	// Pause pauses playback
	Pause() error
	// Seek moves the playhead to an absolute position in seconds
	Seek(seconds float64) error
	// SetVolume sets the engine volume in the range [0, 1]
	SetVolume(volume float64) error
	// SetMuted sets the engine mute flag without touching the volume
	SetMuted(muted bool) error
	// SetFullscreen toggles the engine's fullscreen rendering
	SetFullscreen(on bool) error

	// Best-effort snapshot getters, updated as engine events arrive
	CurrentTime() float64
	Duration() float64
	Paused() bool
	Muted() bool
	Volume() float64

	// Events returns the engine's event stream.  The channel is closed when
	// the engine exits.
	Events() <-chan Event

	// Close tears down the engine process and control channel
	Close() error
}
