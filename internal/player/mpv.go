package player

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/log"
)

// Property observation IDs registered with MPV after connecting
const (
	propIDDuration = iota + 1
	propIDPlaybackTime
	propIDPause
	propIDMute
	propIDVolume
)

// MPVEngine implements the Engine interface by driving an MPV subprocess over
// its JSON IPC protocol.  MPV reports volume on a 0-100 scale; the Engine
// surface uses [0, 1], so values are converted at this boundary.
type MPVEngine struct {
	config     *config.Config
	ipcClient  *MPVIPCClient
	cmd        *exec.Cmd
	socketPath string
	events     chan Event

	mu       sync.RWMutex
	current  float64
	duration float64
	paused   bool
	muted    bool
	volume   float64 // [0, 1]

	closeOnce sync.Once
}

// NewMPVEngine creates a new MPV engine instance
func NewMPVEngine(cfg *config.Config) *MPVEngine {
	socketPath := GetMPVSocketPath()
	return &MPVEngine{
		config:     cfg,
		socketPath: socketPath,
		ipcClient:  NewMPVIPCClient(socketPath),
		events:     make(chan Event, 100),
		volume:     1.0,
	}
}

// Load starts MPV with the given source, connects the IPC control channel and
// begins translating MPV's property stream into engine events.
func (e *MPVEngine) Load(ctx context.Context, sourceURL, mimeType string) error {
	log.Info("Starting MPV playback", "url", sourceURL, "mime_type", mimeType)

	mpvPath := e.config.Player.Path
	if mpvPath == "" {
		mpvPath = "mpv"
	}

	args := []string{
		"--no-terminal",                      // Disable terminal control
		"--keep-open=no",                     // Exit when playback is complete
		"--input-ipc-server=" + e.socketPath, // Set IPC socket path
	}

	// Add any additional configured arguments
	if e.config.Player.Args != "" {
		args = append(args, splitPlayerArgs(e.config.Player.Args)...)
	}

	// The stream URL is the final argument
	args = append(args, sourceURL)

	cmd := exec.Command(mpvPath, args...)
	setupPlayerProcess(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start MPV: %w", err)
	}
	e.cmd = cmd

	// Allow time for MPV to create the socket
	time.Sleep(300 * time.Millisecond)

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.ipcClient.WaitForConnection(connCtx, 20, 500*time.Millisecond); err != nil {
		_ = e.Close()
		return fmt.Errorf("failed to connect to MPV: %w", err)
	}

	e.observeProperties()
	go e.translateEvents()

	return nil
}

// observeProperties registers all properties the engine surface mirrors
func (e *MPVEngine) observeProperties() {
	observed := []struct {
		id   int
		name string
	}{
		{propIDDuration, "duration"},
		{propIDPlaybackTime, "playback-time"},
		{propIDPause, "pause"},
		{propIDMute, "mute"},
		{propIDVolume, "volume"},
	}
	for _, prop := range observed {
		if err := e.ipcClient.ObserveProperty(prop.id, prop.name); err != nil {
			log.Warn("Failed to observe MPV property", "property", prop.name, "error", err)
		}
	}
}

// translateEvents folds MPV's raw event stream into the enumerated engine
// event set.  It runs until MPV exits or the IPC connection drops, then closes
// the engine event channel.
func (e *MPVEngine) translateEvents() {
	defer close(e.events)

	for raw := range e.ipcClient.Events() {
		switch raw.Event {
		case "file-loaded":
			log.Info("MPV file loaded")
			e.emit(Event{Type: EventReady})

		case "end-file":
			log.Info("MPV playback ended")
			e.emit(Event{Type: EventEnded})
			return

		case "property-change":
			if ev, ok := e.applyPropertyChange(raw); ok {
				e.emit(ev)
			}
		}
	}

	// IPC connection dropped without a clean end-file
	log.Debug("MPV event channel closed")
	e.emit(Event{Type: EventEnded})
}

// applyPropertyChange updates the snapshot for a property-change notification
// and returns the engine event it maps to, if any.
func (e *MPVEngine) applyPropertyChange(raw MPVEvent) (Event, bool) {
	switch raw.Name {
	case "duration":
		value, err := parseFloat(raw.Data)
		if err != nil {
			return Event{}, false
		}
		e.mu.Lock()
		e.duration = value
		e.mu.Unlock()
		log.Trace("MPV duration known", "duration", value)
		return Event{Type: EventDurationChange}, true

	case "playback-time":
		value, err := parseFloat(raw.Data)
		if err != nil {
			return Event{}, false
		}
		e.mu.Lock()
		e.current = value
		e.mu.Unlock()
		return Event{Type: EventTimeUpdate}, true

	case "pause":
		value, err := parseBool(raw.Data)
		if err != nil {
			return Event{}, false
		}
		e.mu.Lock()
		e.paused = value
		e.mu.Unlock()
		if value {
			return Event{Type: EventPause}, true
		}
		return Event{Type: EventPlay}, true

	case "mute":
		value, err := parseBool(raw.Data)
		if err != nil {
			return Event{}, false
		}
		e.mu.Lock()
		e.muted = value
		e.mu.Unlock()
		// Mute confirmations are reflected by the Muted getter only; the
		// enumerated event set does not include a mute event.
		return Event{}, false

	case "volume":
		value, err := parseFloat(raw.Data)
		if err != nil {
			return Event{}, false
		}
		e.mu.Lock()
		e.volume = value / 100
		e.mu.Unlock()
		return Event{}, false
	}

	return Event{}, false
}

func (e *MPVEngine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		// Dropping is safer than blocking the translator if the consumer has
		// stopped draining during teardown.
		log.Warn("Dropping engine event, channel full", "event", ev.Type)
	}
}

// splitPlayerArgs breaks the configured extra player arguments into argv
// entries.  Spaces inside single or double quotes do not split; the quote
// characters themselves are dropped.
func splitPlayerArgs(raw string) []string {
	var args []string
	var current strings.Builder
	quoted := false

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '"' || r == '\'':
			quoted = !quoted
		case r == ' ' && !quoted:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return args
}

func parseFloat(data json.RawMessage) (float64, error) {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return 0, fmt.Errorf("failed to parse property value: %w", err)
	}
	return value, nil
}

func parseBool(data json.RawMessage) (bool, error) {
	var value bool
	if err := json.Unmarshal(data, &value); err != nil {
		return false, fmt.Errorf("failed to parse property value: %w", err)
	}
	return value, nil
}

// Play resumes playback
func (e *MPVEngine) Play() error {
	return e.ipcClient.SetProperty("pause", false)
}

// Pause pauses playback
func (e *MPVEngine) Pause() error {
	return e.ipcClient.SetProperty("pause", true)
}

// Seek moves the playhead to an absolute position in seconds
func (e *MPVEngine) Seek(seconds float64) error {
	return e.ipcClient.SendCommand([]interface{}{"seek", seconds, "absolute"})
}

// SetVolume sets the engine volume, converting to MPV's 0-100 scale
func (e *MPVEngine) SetVolume(volume float64) error {
	return e.ipcClient.SetProperty("volume", volume*100)
}

// SetMuted sets the engine mute flag
func (e *MPVEngine) SetMuted(muted bool) error {
	return e.ipcClient.SetProperty("mute", muted)
}

// SetFullscreen toggles MPV's fullscreen rendering
func (e *MPVEngine) SetFullscreen(on bool) error {
	return e.ipcClient.SetProperty("fullscreen", on)
}

// CurrentTime returns the last known playhead position
func (e *MPVEngine) CurrentTime() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Duration returns the last known media duration, 0 if not yet known
func (e *MPVEngine) Duration() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.duration
}

// Paused returns the last known pause flag
func (e *MPVEngine) Paused() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paused
}

// Muted returns the last known mute flag
func (e *MPVEngine) Muted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.muted
}

// Volume returns the last known volume in [0, 1]
func (e *MPVEngine) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.volume
}

// Events returns the engine event stream
func (e *MPVEngine) Events() <-chan Event {
	return e.events
}

// Close tears down the IPC connection and the MPV process.  Safe to call more
// than once.
func (e *MPVEngine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		if e.ipcClient != nil {
			_ = e.ipcClient.Close()
		}

		if e.cmd != nil && e.cmd.Process != nil {
			log.Info("Stopping MPV")
			err = e.cmd.Process.Kill()
		}

		// Remove socket file if it exists (Unix only)
		if _, statErr := os.Stat(e.socketPath); statErr == nil {
			if rmErr := os.Remove(e.socketPath); rmErr != nil {
				log.Warn("Failed to remove MPV socket file", "path", e.socketPath, "error", rmErr)
			}
		}
	})
	return err
}
