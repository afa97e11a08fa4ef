package tui

import (
	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/ui/tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

func Run(cfg *config.Config) error {
	app, err := models.NewAppModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
