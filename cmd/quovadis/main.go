package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jermeyyy/quo-vadis-sub007/internal/config"
	"github.com/jermeyyy/quo-vadis-sub007/internal/tui"
	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

var version = "dev"

// CLI is the top-level command structure for quovadis.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"1" help:"Run the navigation demo."`
}

// RunCmd starts the interactive demo.
type RunCmd struct {
	Config        string `help:"Path to a config file." type:"path"`
	Compact       bool   `help:"Force the compact single-pane layout." default:"false"`
	Deterministic bool   `help:"Use sequential node keys for reproducible sessions." default:"false"`
}

// Run loads configuration and starts the tea program.
func (c *RunCmd) Run() error {
	if c.Config != "" {
		if err := os.Setenv("QUOVADIS_CONFIG", c.Config); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Compact {
		cfg.Layout.ForceCompact = true
	}

	var gen nav.KeyGenerator
	if c.Deterministic {
		gen = nav.SequentialKeys("scr")
	}

	p := tea.NewProgram(tui.New(cfg, gen), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("quovadis"),
		kong.Description("Interactive demo of the quo-vadis navigation engine."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(); err != nil {
		log.Fatalf("quovadis: %v", err)
	}
}
