// curvelab is an interactive terminal lab for line, conic and curve
// rasterization algorithms with step-by-step trace replay.
//
// Run: GOWORK=off go run ./cmd/curvelab/ -config curvelab.toml -log curvelab.log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/wesen/curvelab/internal/config"
	"github.com/wesen/curvelab/internal/labui"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (defaults when empty)")
		logPath    = flag.String("log", "", "write JSON debug log to this file")
		pngPath    = flag.String("png", "curvelab.png", "file written by the export key")
		dumpConfig = flag.Bool("print-config", false, "print the effective config as TOML and exit")
	)
	flag.Parse()

	if err := run(*configPath, *logPath, *pngPath, *dumpConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath, pngPath string, dumpConfig bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dumpConfig {
		return cfg.Encode(os.Stdout)
	}

	// The TUI owns stdout, so logs only go to a file.
	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	log.Info().Str("config", configPath).Int("extent", cfg.Extent).Msg("starting")

	m := labui.NewModel(cfg, log)
	m.ExportPath = pngPath
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	log.Info().Msg("exit")
	return nil
}
