package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionMoveTop    Action = "move_top"
	ActionMoveBottom Action = "move_bottom"

	// Home view actions
	ActionWatchTitle     Action = "watch_title"
	ActionRefreshCatalog Action = "refresh_catalog"
	ActionEnableSearch   Action = "enable_search"
	ActionSearchComplete Action = "search_complete"

	// Watch view actions
	ActionTogglePlay       Action = "toggle_play"
	ActionScrubBack        Action = "scrub_back"
	ActionScrubForward     Action = "scrub_forward"
	ActionCommitScrub      Action = "commit_scrub"
	ActionSkipBack         Action = "skip_back"
	ActionSkipForward      Action = "skip_forward"
	ActionVolumeUp         Action = "volume_up"
	ActionVolumeDown       Action = "volume_down"
	ActionToggleMute       Action = "toggle_mute"
	ActionToggleFullscreen Action = "toggle_fullscreen"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal     ContextName = "global"
	ContextHome       ContextName = "home"
	ContextWatch      ContextName = "watch"
	ContextScrub      ContextName = "scrub"
	ContextSearchMode ContextName = "search_mode"
	ContextHelp       ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:     globalBindings,
	ContextHome:       homeBindings,
	ContextWatch:      watchBindings,
	ContextScrub:      scrubBindings,
	ContextSearchMode: searchModeBindings,
	ContextHelp:       helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// navigationBindings contains general navigation bindings for consistent navigation across the app
var navigationBindings = []Binding{
	{
		Action: ActionMoveUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "k",
			Help:      "Move cursor up",
		},
	},
	{
		Action: ActionMoveDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "j",
			Help:      "Move cursor down",
		},
	},
	{
		Action: ActionPageUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Move up one page",
		},
	},
	{
		Action: ActionPageDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Move down one page",
		},
	},
	{
		Action: ActionMoveTop,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Move top of view",
		},
	},
	{
		Action: ActionMoveBottom,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Move bottom of view",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle help screen",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Go back/cancel current action",
		},
	},
}

// helpBindings contains key bindings specific to the help view
var helpBindings = withNavigation([]Binding{})

// homeBindings contains key bindings specific to the home (catalog) view
var homeBindings = withNavigation([]Binding{
	{
		Action: ActionWatchTitle,
		KeyMap: KeyMap{
			Primary:   "enter",
			Secondary: "w",
			Help:      "Watch selected title",
		},
	},
	{
		Action: ActionRefreshCatalog,
		KeyMap: KeyMap{
			Primary: "r",
			Help:    "Refresh title catalog",
		},
	},
	{
		Action: ActionEnableSearch,
		KeyMap: KeyMap{
			Primary:   "/",
			Secondary: "ctrl+f",
			Help:      "Search titles",
		},
	},
})

// watchBindings contains key bindings specific to the watch view transport controls
var watchBindings = []Binding{
	{
		Action: ActionTogglePlay,
		KeyMap: KeyMap{
			Primary: " ",
			Help:    "Play/pause",
		},
	},
	{
		Action: ActionSkipBack,
		KeyMap: KeyMap{
			Primary: "p",
			Help:    "Skip backward",
		},
	},
	{
		Action: ActionSkipForward,
		KeyMap: KeyMap{
			Primary: "n",
			Help:    "Skip forward",
		},
	},
	{
		Action: ActionScrubBack,
		KeyMap: KeyMap{
			Primary:   "left",
			Secondary: "h",
			Help:      "Scrub backward (enter to commit)",
		},
	},
	{
		Action: ActionScrubForward,
		KeyMap: KeyMap{
			Primary:   "right",
			Secondary: "l",
			Help:      "Scrub forward (enter to commit)",
		},
	},
	{
		Action: ActionVolumeUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "+",
			Help:      "Volume up",
		},
	},
	{
		Action: ActionVolumeDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "-",
			Help:      "Volume down",
		},
	},
	{
		Action: ActionToggleMute,
		KeyMap: KeyMap{
			Primary: "m",
			Help:    "Toggle mute",
		},
	},
	{
		Action: ActionToggleFullscreen,
		KeyMap: KeyMap{
			Primary: "f",
			Help:    "Toggle fullscreen",
		},
	},
}

// scrubBindings contains key bindings active while a seek scrub is in progress
var scrubBindings = []Binding{
	{
		Action: ActionScrubBack,
		KeyMap: KeyMap{
			Primary:   "left",
			Secondary: "h",
			Help:      "Scrub further backward",
		},
	},
	{
		Action: ActionScrubForward,
		KeyMap: KeyMap{
			Primary:   "right",
			Secondary: "l",
			Help:      "Scrub further forward",
		},
	},
	{
		Action: ActionCommitScrub,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Seek to the scrubbed position",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Cancel the scrub",
		},
	},
}

// searchModeBindings contains key bindings specific for when search mode is active
var searchModeBindings = []Binding{
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary:   "esc",
			Secondary: "ctrl+f",
			Help:      "Exit search mode and remove the filter",
		},
	},
	{
		Action: ActionSearchComplete,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Apply the search filter and return control to the original view",
		},
	},
}

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// GetBindingByKey returns the action and help text for a given key
func GetBindingByKey(key string, bindings []Binding) (Action, string) {
	for _, binding := range bindings {
		if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
			return binding.Action, binding.KeyMap.Help
		}
	}
	return "", ""
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	if bindings, exists := ContextBindings[name]; exists {
		key := keyMsg.String()
		for _, binding := range bindings {
			if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
				return binding.Action
			}
		}
	}
	return ""
}

// FormatKeyHelp formats a key binding for display in help text
func FormatKeyHelp(binding Binding) string {
	primary := binding.KeyMap.Primary
	if primary == " " {
		primary = "space"
	}
	if binding.KeyMap.Secondary != "" {
		return primary + "/" + binding.KeyMap.Secondary + ": " + binding.KeyMap.Help
	}
	return primary + ": " + binding.KeyMap.Help
}

// GetHelpText generates formatted help text for a set of bindings
func GetHelpText(title string, bindings []Binding) string {
	helpText := "## " + title + "\n\n"
	for _, binding := range bindings {
		helpText += "* " + FormatKeyHelp(binding) + "\n"
	}
	return helpText
}

// withNavigation is a helper function to include navigation bindings in other binding sets
func withNavigation(bindings []Binding) []Binding {
	return append(append([]Binding{}, navigationBindings...), bindings...)
}
