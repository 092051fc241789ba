// Command wikibuild builds the wikiplugin_internal Rust library in
// release mode and publishes the shared library into lua/ under the
// platform-correct name. It exits 0 on success and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/wikiplugin/wikibuild"
)

const appName = "wikibuild"

var version = "0.1.0"

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backend, err := newLogBackend(cfg.LogFile, cfg.DebugLevel)
	if err != nil {
		return err
	}
	defer backend.close()
	log := backend.logger("WIKI")

	buildCfg := &wikibuild.BuildConfig{
		CrateDir:   cfg.CrateDir,
		PublishDir: cfg.PublishDir,
		Jobs:       cfg.Jobs,
		CleanFirst: cfg.Clean,
		Verbose:    cfg.Verbose,
		Log:        log,
	}

	pipeline, err := wikibuild.NewPipeline(buildCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.CleanOnly {
		return pipeline.Clean(ctx)
	}

	if err := pipeline.Run(ctx); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
