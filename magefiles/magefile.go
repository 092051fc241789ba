//go:build mage

// Mage targets for working on the plugin library. Run with mage from
// the repository root, e.g. `mage publish`.
package main

import (
	"context"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/wikiplugin/wikibuild"
)

// Publish builds the wikiplugin_internal crate in release mode and
// copies the shared library into lua/.
func Publish(ctx context.Context) error {
	pipeline, err := wikibuild.NewPipeline(&wikibuild.BuildConfig{
		Verbose: mg.Verbose(),
	})
	if err != nil {
		return err
	}
	return pipeline.Run(ctx)
}

// Test runs the Go unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes cargo build artifacts.
func Clean(ctx context.Context) error {
	pipeline, err := wikibuild.NewPipeline(&wikibuild.BuildConfig{})
	if err != nil {
		return err
	}
	return pipeline.Clean(ctx)
}

// All runs the tests and then builds and publishes the library.
func All(ctx context.Context) {
	mg.SerialCtxDeps(ctx, Test, Publish)
}
