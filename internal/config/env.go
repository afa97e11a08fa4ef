package config

import (
	"os"
	"strconv"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string)
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  "NETFLIX_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) {}, // Special case, no-op
	},
	{
		name:  "NETFLIX_CONFIG_CATALOG_URL",
		desc:  "Sets the URL of the title catalog API.  Default: None",
		apply: func(c *Config, s string) { c.Catalog.URL = s },
	},
	{
		name:  "NETFLIX_CONFIG_CATALOG_TOKEN",
		desc:  "Sets the bearer token used against the catalog API.  Default: None",
		apply: func(c *Config, s string) { c.Catalog.Token = s },
	},
	{
		name:  "NETFLIX_CONFIG_PLAYER_TYPE",
		desc:  "Sets the media engine type.  Currently only `mpv`.  Default: mpv",
		apply: func(c *Config, s string) { c.Player.Type = s },
	},
	{
		name:  "NETFLIX_CONFIG_PLAYER_PATH",
		desc:  "Sets the path to the media engine binary.  Default: mpv",
		apply: func(c *Config, s string) { c.Player.Path = s },
	},
	{
		name:  "NETFLIX_CONFIG_PLAYER_ARGS",
		desc:  "Sets additional arguments passed to the media engine.  Default: None",
		apply: func(c *Config, s string) { c.Player.Args = s },
	},
	{
		name: "NETFLIX_CONFIG_UI_INITIAL_VOLUME",
		desc: "Sets the starting volume slider position (0-100).  Default: 100",
		apply: func(c *Config, s string) {
			if v, err := strconv.Atoi(s); err == nil {
				c.UI.InitialVolume = v
			}
		},
	},
	{
		name:  "NETFLIX_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) { c.Logging.Level = s },
	},
	{
		name:  "NETFLIX_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Logging.FilePath = s },
	},
}

func applyEnvVarOverrides(c *Config) {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			envVar.apply(c, value)
		}
	}
}
