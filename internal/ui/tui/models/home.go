package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/domain"
	"github.com/abhiguop/netflix/internal/log"
	"github.com/abhiguop/netflix/internal/service"
	"github.com/abhiguop/netflix/internal/transport"
	"github.com/abhiguop/netflix/internal/ui/tui/components"
	kb "github.com/abhiguop/netflix/internal/ui/tui/keybindings"
	"github.com/abhiguop/netflix/internal/ui/tui/styles"
	"github.com/abhiguop/netflix/internal/ui/tui/util"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// HomeModel handles displaying and browsing the title catalog
type HomeModel struct {
	config         *config.Config
	catalogService *service.CatalogService
	width, height  int
	loading        bool
	loadError      error
	spinner        spinner.Model
	cursor         int
	allTitles      []*domain.Title // All titles from the service
	filteredTitles []*domain.Title // Titles after applying the search filter
	searchInput    textinput.Model
	searchMode     bool
}

// NewHomeModel creates a new home (catalog) model
func NewHomeModel(cfg *config.Config, catalogService *service.CatalogService) *HomeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E50914"))

	input := textinput.New()
	input.Placeholder = "Search titles..."
	input.CharLimit = 80
	input.Width = 30

	return &HomeModel{
		config:         cfg,
		catalogService: catalogService,
		loading:        true,
		spinner:        s,
		cursor:         0,
		allTitles:      []*domain.Title{},
		filteredTitles: []*domain.Title{},
		searchInput:    input,
	}
}

// loadCatalog loads the title catalog from the service
func loadCatalog(catalogService *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := catalogService.LoadTitles(ctx); err != nil {
			log.Error("Failed to load title catalog", "error", err)
			return CatalogErrorMsg{Error: err}
		}

		log.Info("Title catalog loaded successfully.  Sending CatalogLoadedMsg")
		return CatalogLoadedMsg{}
	}
}

// Init initializes the model and kicks off the catalog load
func (m *HomeModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadCatalog(m.catalogService),
	)
}

// Resize updates the model with new dimensions
func (m *HomeModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages and updates the model
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchInput(msg)
		}
		return m.handleKey(msg)

	case CatalogLoadedMsg:
		m.loading = false
		m.loadError = nil
		m.allTitles = m.catalogService.GetTitles()
		m.applyFilter()
		m.cursor = 0
		return m, nil

	case CatalogErrorMsg:
		m.loading = false
		m.loadError = msg.Error
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextHome) {
	case kb.ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case kb.ActionMoveDown:
		if len(m.filteredTitles) > 0 && m.cursor < len(m.filteredTitles)-1 {
			m.cursor++
		}
	case kb.ActionMoveTop:
		m.cursor = 0
	case kb.ActionMoveBottom:
		if len(m.filteredTitles) > 0 {
			m.cursor = len(m.filteredTitles) - 1
		}
	case kb.ActionWatchTitle:
		if title := m.SelectedTitle(); title != nil {
			log.Info("Title selected for playback", "id", title.ID, "name", title.Name)
			return m, func() tea.Msg { return WatchTitleMsg{Title: title} }
		}
	case kb.ActionRefreshCatalog:
		log.Debug("Refreshing title catalog")
		m.loading = true
		m.loadError = nil
		return m, tea.Batch(m.spinner.Tick, loadCatalog(m.catalogService))
	case kb.ActionEnableSearch:
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *HomeModel) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextSearchMode) {
	case kb.ActionBack:
		// Leave search mode and drop the filter
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyFilter()
		m.cursor = 0
		return m, nil
	case kb.ActionSearchComplete:
		// Keep the filter, return control to list navigation
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	m.cursor = 0
	return m, cmd
}

// applyFilter recomputes the filtered title list from the search query
func (m *HomeModel) applyFilter() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filteredTitles = m.allTitles
		return
	}

	filtered := make([]*domain.Title, 0, len(m.allTitles))
	for _, title := range m.allTitles {
		if fuzzy.MatchFold(query, title.Name) ||
			fuzzy.MatchFold(query, title.DisplayGenres()) {
			filtered = append(filtered, title)
		}
	}
	m.filteredTitles = filtered
}

// SelectedTitle returns the title under the cursor, or nil if the list is empty
func (m *HomeModel) SelectedTitle() *domain.Title {
	if len(m.filteredTitles) == 0 || m.cursor >= len(m.filteredTitles) {
		return nil
	}
	return m.filteredTitles[m.cursor]
}

// View renders the home view
func (m *HomeModel) View() string {
	header := styles.Header(m.width, "Netflix")

	if m.loading {
		loadingText := fmt.Sprintf("%s Loading catalog...", m.spinner.View())
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.CenteredView(m.width, m.height-1, loadingText),
		)
	}

	if m.loadError != nil {
		errText := styles.Error.Render("Failed to load catalog: "+m.loadError.Error()) +
			"\n\n" + styles.Info.Render("Press 'r' to retry")
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.CenteredView(m.width, m.height-1, errText),
		)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.searchMode || m.searchInput.Value() != "" {
		b.WriteString(styles.FilterStatus.Render("Search: " + m.searchInput.View()))
		b.WriteString("\n\n")
	}

	if len(m.filteredTitles) == 0 {
		b.WriteString(styles.CenteredText(m.width, styles.Faint.Render("No titles found")))
	} else {
		b.WriteString(m.renderTitleList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderSelectedDetails())
	b.WriteString("\n")
	b.WriteString(components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "enter", Desc: "watch"},
		{Key: "/", Desc: "search"},
		{Key: "r", Desc: "refresh"},
		{Key: "ctrl+h", Desc: "help"},
		{Key: "ctrl+c", Desc: "quit"},
	}))

	return b.String()
}

// renderTitleList renders the scrolling window of catalog rows
func (m *HomeModel) renderTitleList() string {
	visibleRows := m.height - 14
	if visibleRows < 3 {
		visibleRows = 3
	}

	start := 0
	if m.cursor >= visibleRows {
		start = m.cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(m.filteredTitles) {
		end = len(m.filteredTitles)
	}

	var rows []string
	for i := start; i < end; i++ {
		title := m.filteredTitles[i]
		row := fmt.Sprintf(" %s (%d)  %s  %s",
			util.TruncateString(title.Name, 40),
			title.Year,
			transport.Clock(title.DurationSeconds),
			util.TruncateString(title.DisplayGenres(), 30),
		)
		if i == m.cursor {
			rows = append(rows, styles.Selected.Width(m.width-2).Render(row))
		} else {
			rows = append(rows, styles.Info.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// renderSelectedDetails renders the description box for the highlighted title
func (m *HomeModel) renderSelectedDetails() string {
	title := m.SelectedTitle()
	if title == nil {
		return ""
	}

	desc := title.Description
	if desc == "" {
		desc = "No description available."
	}
	content := styles.BarHandle.Render(title.Name) + "\n" + styles.Faint.Render(desc)
	return styles.ContentBox(m.width-2, content, 1)
}
