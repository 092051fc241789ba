package wikibuild

import "errors"

// The three fatal failure kinds of the build-and-publish pipeline.
// Every error returned by this package wraps exactly one of them, so
// callers can classify failures with errors.Is. None are retried.
var (
	// ErrUnsupportedPlatform is returned when the operating system
	// identifier is not linux, darwin or windows. It is raised before
	// any build step runs and performs no side effects.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrBuildFailed is returned when the cargo child process exits
	// with a non-zero status. No artifact is published after a failed
	// build.
	ErrBuildFailed = errors.New("build failed")

	// ErrPublishFailed is returned when the built artifact is missing
	// or cannot be copied into the publish directory. The artifact, if
	// any, remains under target/release for manual recovery.
	ErrPublishFailed = errors.New("publish failed")
)
