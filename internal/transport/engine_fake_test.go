package transport

import (
	"context"

	"github.com/abhiguop/netflix/internal/player"
)

// fakeEngine is a scriptable stand-in for the media engine.  Tests drive it
// by mutating its snapshot fields and feeding events to the controller, the
// same way the real engine's getters and event stream behave.
type fakeEngine struct {
	paused      bool
	muted       bool
	volume      float64
	currentTime float64
	duration    float64

	playCalls  int
	pauseCalls int
	seeks      []float64
	volumes    []float64
	mutes      []bool
	fullscreen []bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{paused: true, volume: 1.0}
}

func (f *fakeEngine) Load(ctx context.Context, sourceURL, mimeType string) error { return nil }

func (f *fakeEngine) Play() error {
	f.playCalls++
	return nil
}

func (f *fakeEngine) Pause() error {
	f.pauseCalls++
	return nil
}

func (f *fakeEngine) Seek(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	return nil
}

func (f *fakeEngine) SetVolume(volume float64) error {
	f.volumes = append(f.volumes, volume)
	f.volume = volume
	return nil
}

func (f *fakeEngine) SetMuted(muted bool) error {
	f.mutes = append(f.mutes, muted)
	f.muted = muted
	return nil
}

func (f *fakeEngine) SetFullscreen(on bool) error {
	f.fullscreen = append(f.fullscreen, on)
	return nil
}

func (f *fakeEngine) CurrentTime() float64 { return f.currentTime }

func (f *fakeEngine) Duration() float64 { return f.duration }

func (f *fakeEngine) Paused() bool { return f.paused }

func (f *fakeEngine) Muted() bool { return f.muted }

func (f *fakeEngine) Volume() float64 { return f.volume }

func (f *fakeEngine) Events() <-chan player.Event { return nil }

func (f *fakeEngine) Close() error { return nil }

// readyController returns a controller that has seen ready + durationchange,
// the minimum event sequence for transport controls to go live.
func readyController(engine *fakeEngine, duration float64) *Controller {
	engine.duration = duration
	c := NewController(engine)
	c.HandleEvent(player.Event{Type: player.EventReady})
	c.HandleEvent(player.Event{Type: player.EventDurationChange})
	return c
}

// advanceTime simulates the engine reporting a new playhead position
func advanceTime(c *Controller, engine *fakeEngine, seconds float64) {
	engine.currentTime = seconds
	c.HandleEvent(player.Event{Type: player.EventTimeUpdate})
}
