package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/domain"
	"github.com/abhiguop/netflix/internal/log"
	"github.com/abhiguop/netflix/internal/player"
	"github.com/abhiguop/netflix/internal/transport"
	"github.com/abhiguop/netflix/internal/ui/tui/components"
	kb "github.com/abhiguop/netflix/internal/ui/tui/keybindings"
	"github.com/abhiguop/netflix/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WatchModel owns a single playback session: the external player engine and
// the transport controller that keeps the UI state synchronized with it.
type WatchModel struct {
	config        *config.Config
	title         *domain.Title
	width, height int

	engine     player.Engine
	controller *transport.Controller
	seek       *transport.SeekAdapter
	volume     *transport.VolumeAdapter

	spinner       spinner.Model
	startErr      error
	fullscreen    bool
	volumeApplied bool
	done          bool
}

// NewWatchModel creates a watch model for the given title.  The engine is not
// started until Init runs.
func NewWatchModel(cfg *config.Config, title *domain.Title) *WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E50914"))

	return &WatchModel{
		config:  cfg,
		title:   title,
		spinner: s,
	}
}

// Init starts the playback engine in the background
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		startEngine(m.config, m.title),
	)
}

// startEngine launches the external player and connects to its control socket
func startEngine(cfg *config.Config, title *domain.Title) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		engine := player.CreateEngine(cfg)
		if err := engine.Load(ctx, title.VideoURL, title.MimeType); err != nil {
			log.Error("Failed to start playback engine", "title", title.Name, "error", err)
			return EngineStartErrorMsg{Error: fmt.Errorf("starting playback: %w", err)}
		}

		log.Info("Playback engine started", "title", title.Name, "url", title.VideoURL)
		return EngineStartedMsg{Engine: engine}
	}
}

// waitForEngineEvent blocks on the engine event stream and forwards one event
// into the bubbletea message loop.  It is re-issued after every event.
func waitForEngineEvent(engine player.Engine) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-engine.Events()
		if !ok {
			return EngineClosedMsg{}
		}
		return EngineEventMsg{Event: event}
	}
}

// Resize updates the model with new dimensions
func (m *WatchModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages and updates the model
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case EngineStartedMsg:
		m.engine = msg.Engine
		m.controller = transport.NewController(m.engine)
		m.seek = transport.NewSeekAdapter(m.controller)
		m.volume = transport.NewVolumeAdapter(m.controller)
		return m, waitForEngineEvent(m.engine)

	case EngineStartErrorMsg:
		m.startErr = msg.Error
		return m, nil

	case EngineEventMsg:
		return m.handleEngineEvent(msg.Event)

	case EngineClosedMsg:
		log.Debug("Engine event stream closed")
		return m, m.teardown()

	case spinner.TickMsg:
		if !m.ready() {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// handleEngineEvent feeds an engine event through the controller and re-arms
// the event listener
func (m *WatchModel) handleEngineEvent(event player.Event) (tea.Model, tea.Cmd) {
	if m.controller == nil || m.done {
		return m, nil
	}

	m.controller.HandleEvent(event)

	switch event.Type {
	case player.EventEnded:
		log.Info("Playback ended", "title", m.title.Name)
		return m, m.teardown()
	case player.EventError:
		log.Error("Playback engine reported an error", "title", m.title.Name, "error", event.Err)
		m.startErr = event.Err
		return m, m.teardown()
	}

	// Apply the configured starting volume once playback is ready
	if !m.volumeApplied && m.controller.State().Ready {
		m.volumeApplied = true
		m.volume.SetSlider(m.config.UI.InitialVolume)
	}

	return m, waitForEngineEvent(m.engine)
}

func (m *WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a scrub is in progress the scrub context takes precedence so that
	// enter/esc commit or cancel the scrub rather than acting on the view.
	if m.seek != nil && m.seek.Dragging() {
		switch kb.GetActionByKey(msg, kb.ContextScrub) {
		case kb.ActionScrubBack:
			m.seek.DragBy(-float64(m.config.UI.SeekStepSeconds))
			return m, nil
		case kb.ActionScrubForward:
			m.seek.DragBy(float64(m.config.UI.SeekStepSeconds))
			return m, nil
		case kb.ActionCommitScrub:
			m.seek.Release()
			return m, nil
		case kb.ActionBack:
			m.seek.Cancel()
			return m, nil
		}
	}

	switch kb.GetActionByKey(msg, kb.ContextWatch) {
	case kb.ActionTogglePlay:
		if m.controller != nil {
			m.controller.TogglePlay()
		}
	case kb.ActionScrubBack:
		if m.seek != nil {
			m.seek.DragBy(-float64(m.config.UI.SeekStepSeconds))
		}
	case kb.ActionScrubForward:
		if m.seek != nil {
			m.seek.DragBy(float64(m.config.UI.SeekStepSeconds))
		}
	case kb.ActionSkipBack:
		m.skipBy(-float64(m.config.UI.SeekStepSeconds))
	case kb.ActionSkipForward:
		m.skipBy(float64(m.config.UI.SeekStepSeconds))
	case kb.ActionVolumeUp:
		if m.volume != nil {
			m.volume.AdjustSlider(m.config.UI.VolumeStep)
		}
	case kb.ActionVolumeDown:
		if m.volume != nil {
			m.volume.AdjustSlider(-m.config.UI.VolumeStep)
		}
	case kb.ActionToggleMute:
		if m.controller != nil {
			m.controller.ToggleMute()
		}
	case kb.ActionToggleFullscreen:
		if m.controller != nil {
			m.fullscreen = !m.fullscreen
			m.controller.SetFullscreen(m.fullscreen)
		}
	}

	// esc backs out of the watch session when no scrub is active
	if kb.GetActionByKey(msg, kb.ContextGlobal) == kb.ActionBack {
		log.Info("Leaving watch session", "title", m.title.Name)
		return m, m.teardown()
	}

	return m, nil
}

// skipBy seeks immediately relative to the current playhead, without entering
// a scrub.  The seek is issued straight away, one command per keypress.
// Ignored while a scrub is active: the drag already owns the pending seek, and
// only one seek command may be in flight per gesture.
func (m *WatchModel) skipBy(delta float64) {
	if m.controller == nil {
		return
	}
	if m.seek != nil && m.seek.Dragging() {
		return
	}
	m.controller.SeekTo(m.controller.State().PlayedSeconds + delta)
}

// teardown detaches the controller and shuts the engine down, then reports
// the session as finished.  It is safe to call more than once.
func (m *WatchModel) teardown() tea.Cmd {
	if m.done {
		return nil
	}
	m.done = true

	if m.controller != nil {
		m.controller.Detach()
	}

	engine := m.engine
	title := m.title
	return func() tea.Msg {
		if engine != nil {
			if err := engine.Close(); err != nil {
				log.Warn("Error closing playback engine", "error", err)
			}
		}
		return PlaybackEndedMsg{Title: title}
	}
}

func (m *WatchModel) ready() bool {
	return m.controller != nil && m.controller.State().Ready
}

// View renders the watch view
func (m *WatchModel) View() string {
	header := styles.Header(m.width, "Now Playing: "+m.title.Name)

	if m.startErr != nil {
		errText := styles.Error.Render("Playback failed: "+m.startErr.Error()) +
			"\n\n" + styles.Info.Render("Press esc to go back")
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.CenteredView(m.width, m.height-1, errText),
		)
	}

	if !m.ready() {
		loadingText := fmt.Sprintf("%s Buffering...", m.spinner.View())
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.CenteredView(m.width, m.height-1, loadingText),
		)
	}

	state := m.controller.State()
	position := m.seek.DisplaySeconds()

	var b strings.Builder
	b.WriteString(styles.Faint.Render(m.title.DisplayGenres()))
	b.WriteString("\n\n")

	barWidth := m.width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(components.SeekBar(barWidth, position, state.Duration, m.seek.Dragging()))
	b.WriteString("\n")

	timeline := fmt.Sprintf("%s %s / %s",
		components.PlayIcon(state.Paused),
		transport.Clock(position),
		transport.Clock(state.Duration),
	)
	if m.seek.Dragging() {
		timeline += styles.BarHandleDrag.Render("  [scrubbing]")
	}
	b.WriteString(styles.Info.Render(timeline))
	b.WriteString("\n\n")

	b.WriteString(components.VolumeBar(20, m.volume.SliderValue(), state.Muted))

	content := styles.ContentBox(m.width-4, b.String(), 1)

	bindings := []components.KeyBinding{
		{Key: "space", Desc: "play/pause"},
		{Key: "←/→", Desc: "scrub"},
		{Key: "n/p", Desc: "skip"},
		{Key: "m", Desc: "mute"},
		{Key: "+/-", Desc: "volume"},
		{Key: "f", Desc: "fullscreen"},
		{Key: "esc", Desc: "back"},
	}
	if m.seek.Dragging() {
		bindings = []components.KeyBinding{
			{Key: "←/→", Desc: "scrub"},
			{Key: "enter", Desc: "seek"},
			{Key: "esc", Desc: "cancel"},
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		styles.CenteredView(m.width, m.height-8, content),
		components.KeyBindingsBar(m.width, bindings),
	)
}
