package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUOVADIS_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Layout.CompactWidth)
	require.False(t, cfg.Layout.ForceCompact)
	require.Equal(t, nav.PopUntilScaffoldValueChange, cfg.BackBehavior())
	require.Equal(t, "inbox", cfg.UI.StartRoute)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QUOVADIS_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("QUOVADIS_LAYOUT_FORCE_COMPACT", "true")
	t.Setenv("QUOVADIS_PANES_BACK_BEHAVIOR", "pop-latest")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Layout.ForceCompact)
	require.Equal(t, nav.PopLatest, cfg.BackBehavior())
}

func TestBackBehaviorJunkFallsBackToPopLatest(t *testing.T) {
	cfg := Config{Panes: PanesConfig{BackBehavior: "nonsense"}}
	require.Equal(t, nav.PopLatest, cfg.BackBehavior())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("QUOVADIS_CONFIG", path)

	want := Config{
		Layout: LayoutConfig{CompactWidth: 120, ForceCompact: true},
		Panes:  PanesConfig{BackBehavior: nav.PopUntilContentChange.String()},
		UI:     UIConfig{StartRoute: "archive", Theme: "light"},
	}
	require.NoError(t, Save(want))

	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
