package models

import (
	"strings"

	kb "github.com/abhiguop/netflix/internal/ui/tui/keybindings"
	"github.com/abhiguop/netflix/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel displays contextual help with scrolling
type HelpModel struct {
	width, height int
	context       View
	viewport      viewport.Model
}

// NewHelpModel creates a new help model
func NewHelpModel() *HelpModel {
	return &HelpModel{
		context:  ViewHome,
		viewport: viewport.New(0, 0),
	}
}

// SetContext updates the view whose keybindings the help screen describes
func (m *HelpModel) SetContext(context View) {
	m.context = context
	m.updateContent()
}

// Init initializes the model
func (m *HelpModel) Init() tea.Cmd {
	// Set initial content if dimensions are available
	if m.width > 0 && m.height > 0 {
		m.updateContent()
	}
	return nil
}

// Update handles messages
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch kb.GetActionByKey(msg, kb.ContextHelp) {
		case kb.ActionMoveUp, kb.ActionMoveDown, kb.ActionPageUp, kb.ActionPageDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case kb.ActionMoveTop:
			m.viewport.GotoTop()
			return m, cmd
		case kb.ActionMoveBottom:
			m.viewport.GotoBottom()
			return m, cmd
		}
	}
	return m, cmd
}

// Resize updates the dimensions
func (m *HelpModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Update viewport dimensions
	contentWidth := width - 4    // Account for borders
	contentHeight := height - 10 // Account for header, footer, spacing

	// Ensure we don't set negative dimensions
	if contentWidth < 1 {
		contentWidth = 1
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight

	// Update content for new dimensions
	m.updateContent()
}

// updateContent generates help content and updates the viewport
func (m *HelpModel) updateContent() {
	content := m.generateHelpContent()
	m.viewport.SetContent(content)
	// Reset to top when content changes
	m.viewport.GotoTop()
}

// generateHelpContent builds the help text for the current context
func (m *HelpModel) generateHelpContent() string {
	var sections []string

	switch m.context {
	case ViewWatch:
		sections = append(sections,
			kb.GetHelpText("Playback", kb.ContextBindings[kb.ContextWatch]),
			kb.GetHelpText("While scrubbing", kb.ContextBindings[kb.ContextScrub]),
		)
	default:
		sections = append(sections,
			kb.GetHelpText("Catalog", kb.ContextBindings[kb.ContextHome]),
			kb.GetHelpText("Search mode", kb.ContextBindings[kb.ContextSearchMode]),
		)
	}

	sections = append(sections, kb.GetHelpText("Global", kb.ContextBindings[kb.ContextGlobal]))

	return strings.Join(sections, "\n")
}

// getContextTitle returns the display name of the help context
func (m *HelpModel) getContextTitle() string {
	switch m.context {
	case ViewWatch:
		return "Watching"
	default:
		return "Browse"
	}
}

// View renders the help screen
func (m *HelpModel) View() string {
	header := styles.Header(m.width, "Help: "+m.getContextTitle())

	contentView := m.viewport.View()

	scrollText := "↑/↓: Scroll • PgUp/PgDn: Page scroll • Home/End: Goto top/bottom • ESC: Return"
	footer := styles.CenteredText(m.width, styles.Info.Render(scrollText))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"", // Spacing
		styles.ContentBox(m.width-2, contentView, 1),
		"", // Spacing
		footer,
	)
}
