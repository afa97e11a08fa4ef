package models

import (
	"testing"

	"github.com/abhiguop/netflix/internal/player"
	"github.com/abhiguop/netflix/internal/transport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every child model must satisfy tea.Model so the app model can delegate to it
var (
	_ tea.Model = (*HomeModel)(nil)
	_ tea.Model = (*WatchModel)(nil)
	_ tea.Model = (*HelpModel)(nil)
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	app, err := NewAppModel(testConfig())
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(AppModel)
}

func TestHelpModalToggleAndKeyRouting(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	app = model.(AppModel)
	assert.Equal(t, ModalHelp, app.activeModal)

	// Scroll keys are delegated to the help model while the modal is up
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(AppModel)
	assert.Equal(t, ModalHelp, app.activeModal)
	assert.NotEmpty(t, app.View())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(AppModel)
	assert.Equal(t, ModalNone, app.activeModal)
}

// Engine events must reach the watch model even while the help modal covers
// it.  A swallowed event would leave the event pump permanently un-armed and
// the transport state frozen.
func TestEngineEventsBypassActiveModal(t *testing.T) {
	watch, engine := readyWatchModel(120)

	app := newTestApp(t)
	app.activeView = ViewWatch
	app.activeModal = ModalHelp
	app.watchModel = watch

	engine.currentTime = 42
	model, cmd := app.Update(EngineEventMsg{Event: player.Event{Type: player.EventTimeUpdate}})
	app = model.(AppModel)

	assert.Equal(t, 42.0, watch.controller.State().PlayedSeconds,
		"engine event was not applied to the transport state")
	assert.NotNil(t, cmd, "event pump was not re-armed")
	assert.Equal(t, ModalHelp, app.activeModal)
}

// A session ending behind the help modal must still tear the engine down
func TestEngineEndedBypassesActiveModal(t *testing.T) {
	watch, engine := readyWatchModel(120)

	app := newTestApp(t)
	app.activeView = ViewWatch
	app.activeModal = ModalHelp
	app.watchModel = watch

	_, cmd := app.Update(EngineEventMsg{Event: player.Event{Type: player.EventEnded}})

	require.NotNil(t, cmd)
	assert.Equal(t, transport.PhaseTornDown, watch.controller.Phase())

	// The teardown command kills the engine and reports the session finished
	msg := cmd()
	assert.IsType(t, PlaybackEndedMsg{}, msg)
	assert.True(t, engine.closed)
}

// Catalog load results are likewise applied behind a modal
func TestCatalogLoadBypassesActiveModal(t *testing.T) {
	app := newTestApp(t)
	app.activeModal = ModalHelp
	app.homeModel.loading = true

	model, _ := app.Update(CatalogLoadedMsg{})
	app = model.(AppModel)

	assert.False(t, app.homeModel.loading)
	assert.Equal(t, ModalHelp, app.activeModal)
}
