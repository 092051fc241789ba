package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	flags "github.com/jessevdk/go-flags"
)

type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Show version information and exit"`
	ConfigFile  string `long:"config" description:"Path to a TOML config file"`
	CrateDir    string `short:"C" long:"directory" description:"Crate directory containing Cargo.toml"`
	PublishDir  string `long:"publishdir" description:"Directory the renamed artifact is published to"`
	Jobs        int    `long:"jobs" description:"Number of parallel cargo jobs (0 = cargo default)"`
	Clean       bool   `long:"clean" description:"Run cargo clean before building"`
	CleanOnly   bool   `long:"cleanonly" description:"Only clean build artifacts, do not build"`
	Verbose     bool   `short:"v" long:"verbose" description:"Record the cargo command line in the build output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogFile     string `long:"logfile" description:"Also write logs to this file (rotated)"`
}

func defaultConfig() *config {
	return &config{
		PublishDir: "lua",
		DebugLevel: "info",
	}
}

// loadConfig builds the effective configuration: defaults, then the
// optional TOML config file, then command line flags on top. Running
// with no arguments reproduces the stock build-and-publish behavior.
func loadConfig() (*config, error) {
	cfg := defaultConfig()

	// First pass only to discover --config; unknown flags are fine here.
	pre := *cfg
	preParser := flags.NewParser(&pre, flags.IgnoreUnknown)
	if _, err := preParser.Parse(); err != nil {
		return nil, err
	}

	if pre.ConfigFile != "" {
		if _, err := toml.DecodeFile(pre.ConfigFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Printf("%s %s (%s)\n", appName, version, runtime.Version())
		os.Exit(0)
	}

	return cfg, nil
}
