package models

import (
	"github.com/abhiguop/netflix/internal/domain"
	"github.com/abhiguop/netflix/internal/player"
)

// CatalogLoadedMsg is sent when the title catalog has been loaded
type CatalogLoadedMsg struct{}

// CatalogErrorMsg is sent when there's an error loading the title catalog
type CatalogErrorMsg struct {
	Error error
}

// WatchTitleMsg is sent when a title is selected for playback
type WatchTitleMsg struct {
	Title *domain.Title
}

// EngineStartedMsg is sent once the playback engine is running and connected
type EngineStartedMsg struct {
	Engine player.Engine
}

// EngineStartErrorMsg is sent when the playback engine could not be started
type EngineStartErrorMsg struct {
	Error error
}

// EngineEventMsg carries a single event from the playback engine event stream
type EngineEventMsg struct {
	Event player.Event
}

// EngineClosedMsg is sent when the engine event stream has been closed
type EngineClosedMsg struct{}

// PlaybackEndedMsg is sent when playback finished or was abandoned and the
// watch session has been torn down
type PlaybackEndedMsg struct {
	Title *domain.Title
}
