package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

// Config holds application configuration.
type Config struct {
	Layout LayoutConfig
	Panes  PanesConfig
	UI     UIConfig
}

// LayoutConfig holds window-class settings.
type LayoutConfig struct {
	// CompactWidth is the width in cells below which the app renders the
	// single-pane compact layout.
	CompactWidth int
	// ForceCompact pins the compact layout regardless of terminal size.
	ForceCompact bool
}

// PanesConfig holds two-pane navigation settings.
type PanesConfig struct {
	// BackBehavior names the pane back policy: pop-latest,
	// pop-until-scaffold-value-change, pop-until-current-destination-change
	// or pop-until-content-change.
	BackBehavior string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartRoute string
	Theme      string
}

// BackBehavior parses the configured pane back policy, falling back to
// pop_latest on junk values.
func (c Config) BackBehavior() nav.PaneBackBehavior {
	b, err := nav.ParsePaneBackBehavior(c.Panes.BackBehavior)
	if err != nil {
		return nav.PopLatest
	}
	return b
}

// Load reads configuration from file and env. Env var overrides use prefix QUOVADIS_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("layout.compact_width", 100)
	v.SetDefault("layout.force_compact", false)
	v.SetDefault("panes.back_behavior", nav.PopUntilScaffoldValueChange.String())
	v.SetDefault("ui.start_route", "inbox")
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QUOVADIS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "quovadis"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUOVADIS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings screen for persisted preferences.
func Save(cfg Config) error {
	path := os.Getenv("QUOVADIS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "quovadis", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("layout.compact_width", cfg.Layout.CompactWidth)
	v.Set("layout.force_compact", cfg.Layout.ForceCompact)
	v.Set("panes.back_behavior", cfg.Panes.BackBehavior)
	v.Set("ui.start_route", cfg.UI.StartRoute)
	v.Set("ui.theme", cfg.UI.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
