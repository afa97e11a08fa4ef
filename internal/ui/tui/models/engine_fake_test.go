package models

import (
	"context"

	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/domain"
	"github.com/abhiguop/netflix/internal/player"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeEngine is a scriptable stand-in for the media engine, driven the same
// way the real one is: tests mutate the snapshot fields and push events
// through the watch model.
type fakeEngine struct {
	paused      bool
	muted       bool
	volume      float64
	currentTime float64
	duration    float64

	seeks   []float64
	volumes []float64
	closed  bool
	events  chan player.Event
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		paused: true,
		volume: 1.0,
		events: make(chan player.Event, 10),
	}
}

func (f *fakeEngine) Load(ctx context.Context, sourceURL, mimeType string) error { return nil }

func (f *fakeEngine) Play() error  { return nil }
func (f *fakeEngine) Pause() error { return nil }

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
	f.muted = muted
	return nil
}

func (f *fakeEngine) SetFullscreen(on bool) error { return nil }

func (f *fakeEngine) CurrentTime() float64 { return f.currentTime }

func (f *fakeEngine) Duration() float64 { return f.duration }

func (f *fakeEngine) Paused() bool { return f.paused }

func (f *fakeEngine) Muted() bool { return f.muted }

func (f *fakeEngine) Volume() float64 { return f.volume }

func (f *fakeEngine) Events() <-chan player.Event { return f.events }

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{
			URL: "http://localhost:4000/graphql",
		},
		Player: config.PlayerConfig{
			Type: "mpv",
			Path: "mpv",
		},
		UI: config.UIConfig{
			InitialVolume:   100,
			SeekStepSeconds: 10,
			VolumeStep:      5,
		},
	}
}

func testTitle() *domain.Title {
	return &domain.Title{
		ID:              "t1",
		Name:            "Test Title",
		Genres:          []string{"Drama"},
		Year:            2021,
		DurationSeconds: 120,
		VideoURL:        "https://cdn.example.com/t1.mp4",
		MimeType:        "video/mp4",
	}
}

// readyWatchModel returns a watch model with a live session: engine started,
// ready and duration events already applied.
func readyWatchModel(duration float64) (*WatchModel, *fakeEngine) {
	engine := newFakeEngine()
	engine.duration = duration

	watch := NewWatchModel(testConfig(), testTitle())
	watch.Update(EngineStartedMsg{Engine: engine})
	watch.Update(EngineEventMsg{Event: player.Event{Type: player.EventReady}})
	watch.Update(EngineEventMsg{Event: player.Event{Type: player.EventDurationChange}})
	return watch, engine
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func timeUpdate() player.Event {
	return player.Event{Type: player.EventTimeUpdate}
}
