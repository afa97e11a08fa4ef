package player

import (
	"github.com/abhiguop/netflix/internal/config"
	"github.com/abhiguop/netflix/internal/log"
)

// CreateEngine creates a new media engine based on the configuration
func CreateEngine(cfg *config.Config) Engine {
	engineType := cfg.Player.Type
	log.Info("Creating media engine", "type", engineType)

	switch engineType {
	case "mpv":
		return NewMPVEngine(cfg)
	default:
		log.Warn("Unknown engine type, falling back to MPV", "type", engineType)
		return NewMPVEngine(cfg)
	}
}
