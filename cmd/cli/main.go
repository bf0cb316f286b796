package main

import (
	"sleeper-luck/internal/config"
	"sleeper-luck/internal/data"
	"sleeper-luck/internal/logger"

	"github.com/alecthomas/kong"
)

type globalCmd struct {
	Config   string `help:"Path to YAML config." env:"CONFIG_FILE" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)." env:"LOG_LEVEL" default:"warn"`
}

var CLI struct {
	globalCmd

	Analyze  analyzeCmd  `cmd:"" help:"Classify every team in a league and print the luck table."`
	Snapshot snapshotCmd `cmd:"" help:"Fetch a league and save the raw payloads for offline analysis."`
	Demo     demoCmd     `cmd:"" help:"Print the built-in demo league."`
}

// client builds a Sleeper client from the effective configuration.
func (g *globalCmd) client() (*data.SleeperClient, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	return data.NewSleeperClient(cfg.Sleeper.BaseURL, cfg.Sleeper.Timeout), nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cli"),
		kong.Description("Sleeper league luck analyzer."),
	)
	logger.InitLogger(CLI.LogLevel, true)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
