package cmd

import (
	"github.com/radux/radux-launch/internal/config"
	"github.com/radux/radux-launch/internal/launcher"
)

// loadLauncherConfig merges install-root detection, the settings file, and an
// optional --menu-bin override into the launcher config. Precedence: flag,
// then settings file, then the path resolved from the launcher's location.
func loadLauncherConfig(menuBin string) (launcher.Config, config.Settings, error) {
	cfg, err := launcher.DefaultConfig()
	if err != nil {
		return launcher.Config{}, config.Settings{}, err
	}
	settings, err := config.Load()
	if err != nil {
		return launcher.Config{}, config.Settings{}, err
	}
	if settings.MenuBin != "" {
		cfg.MenuBin = settings.MenuBin
	}
	if menuBin != "" {
		cfg.MenuBin = menuBin
	}
	return cfg, settings, nil
}

// stringParam reads an optional string argument from an MCP tool call.
func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// numberParam reads an optional numeric argument from an MCP tool call.
// JSON numbers arrive as float64; coordinates are whole pixels.
func numberParam(params map[string]interface{}, key string) (int, bool) {
	if v, ok := params[key].(float64); ok {
		return int(v), true
	}
	return 0, false
}
