package models

import (
	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/log"
	"github.com/abhiguop/netflix/internal/repository/catalog"
	"github.com/abhiguop/netflix/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the main application model that coordinates all child models.  It is the high level wrapper.
type AppModel struct {
	config        *config.Config
	activeView    View  // Track the current active 'main view'
	activeModal   Modal // Track the current active 'modal overlay' if any
	width, height int

	// Models used for various views
	homeModel  *HomeModel
	watchModel *WatchModel
	helpModel  *HelpModel

	// Services used for fetching and updating state
	catalogService *service.CatalogService
}

// NewAppModel creates a new instance of the main application model
func NewAppModel(cfg *config.Config) (AppModel, error) {
	client, err := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Token)
	if err != nil {
		return AppModel{}, err
	}
	titleRepo := catalog.NewTitleRepository(client)
	catalogService := service.NewCatalogService(titleRepo)

	return AppModel{
		config:         cfg,
		activeView:     ViewHome,
		activeModal:    ModalNone,
		homeModel:      NewHomeModel(cfg, catalogService),
		helpModel:      NewHelpModel(),
		catalogService: catalogService,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	log.Info("Initialising netflix TUI")
	return m.homeModel.Init()
}

// Update handles messages and updates the models as appropriate
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			log.Info("Quit command received.  Shutting down...")
			return m, m.shutdown()
		case "ctrl+h":
			log.Debug("Help requested", "active_view", m.activeView)
			// Disable/toggle modal if one already active
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
			} else {
				m.helpModel.SetContext(m.activeView)
				m.activeModal = ModalHelp
			}
			return m, nil

		// Handle closing modal when esc is pressed if any is active
		case "esc":
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "old_width", m.width, "new_width", msg.Width, "old_height", m.height, "new_height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

		// Propagate new window size to all views so they are aware and can render correctly
		m.homeModel.Resize(msg.Width, msg.Height)
		m.helpModel.Resize(msg.Width, msg.Height)
		if m.watchModel != nil {
			m.watchModel.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case WatchTitleMsg:
		log.Info("Starting watch session", "id", msg.Title.ID, "name", msg.Title.Name)
		m.watchModel = NewWatchModel(m.config, msg.Title)
		m.watchModel.Resize(m.width, m.height)
		m.activeView = ViewWatch
		m.activeModal = ModalNone
		return m, m.watchModel.Init()

	case PlaybackEndedMsg:
		log.Info("Watch session finished", "name", msg.Title.Name)
		m.watchModel = nil
		m.activeView = ViewHome
		return m, nil

	case EngineStartedMsg, EngineStartErrorMsg, EngineEventMsg, EngineClosedMsg:
		// Engine messages keep the playback session synchronized and re-arm the
		// event pump.  They must always reach the watch model, even while a
		// modal is covering it: a dropped event stalls the pump for good.
		return m.updateWatchView(msg)

	case CatalogLoadedMsg, CatalogErrorMsg:
		// Catalog results likewise always reach the home model, so a load
		// finishing behind the help modal is not lost.
		return m.updateHomeView(msg)
	}

	// Prioritise delegating messages to a modal if one is active
	if m.activeModal == ModalHelp {
		return m.updateHelpModal(msg)
	}

	// Delegate message processing to the active view
	switch m.activeView {
	case ViewHome:
		return m.updateHomeView(msg)
	case ViewWatch:
		return m.updateWatchView(msg)
	}

	return m, nil
}

func (m AppModel) View() string {
	// If there is an active modal it takes precedence
	if m.activeModal == ModalHelp {
		return m.helpModel.View()
	}

	// Else display the actual view
	switch m.activeView {
	case ViewHome:
		return m.homeModel.View()
	case ViewWatch:
		if m.watchModel != nil {
			return m.watchModel.View()
		}
		return "No active watch session\nPress esc to go back."
	default:
		return "Unknown view\nPress ctrl+c to quit."
	}
}

// shutdown tears down any active watch session before quitting so the
// external player process does not outlive the application
func (m AppModel) shutdown() tea.Cmd {
	if m.watchModel != nil {
		teardown := m.watchModel.teardown()
		return tea.Sequence(teardown, tea.Quit)
	}
	return tea.Quit
}

// updateHomeView delegates message processing to the home model
func (m AppModel) updateHomeView(msg tea.Msg) (tea.Model, tea.Cmd) {
	homeModel, cmd := m.homeModel.Update(msg)
	m.homeModel = homeModel.(*HomeModel)

	return m, cmd
}

// updateWatchView delegates message processing to the watch model
func (m AppModel) updateWatchView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.watchModel == nil {
		return m, nil
	}
	watchModel, cmd := m.watchModel.Update(msg)
	m.watchModel = watchModel.(*WatchModel)

	return m, cmd
}

func (m AppModel) updateHelpModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	helpModel, cmd := m.helpModel.Update(msg)
	m.helpModel = helpModel.(*HelpModel)

	return m, cmd
}
