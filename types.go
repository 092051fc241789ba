package wikibuild

import (
	"os"
	"path/filepath"

	"github.com/decred/slog"
)

// Default locations, relative to the crate directory. They follow the
// layout the Neovim plugin repository ships with: cargo writes into
// target/ and the Lua loader reads from lua/.
const (
	defaultPublishDir = "lua"
	targetDirName     = "target"
	releaseDirName    = "release"
)

// BuildResult contains the output and status of a build operation.
//
// After a build completes, this structure provides:
//   - Success status indicating if the build completed without errors
//   - Output lines captured from the build process (stdout/stderr)
//   - Artifacts listing the shared libraries found under target/release
//   - Error information if the build failed
type BuildResult struct {
	Success   bool     // True if build completed successfully
	Output    []string // Lines of output from the build process
	Artifacts []string // Paths to built shared libraries
	Error     error    // Error if build failed, nil otherwise
}

// BuildConfig contains configuration for the build-and-publish process.
//
// Source paths:
//   - CrateDir: root of the Rust crate (the directory holding
//     Cargo.toml). Empty means the current working directory.
//   - PublishDir: directory the renamed artifact is written to,
//     relative to CrateDir unless absolute. Empty means "lua".
//
// Build configuration:
//   - BuildArgs: additional arguments appended to the cargo invocation
//   - Env: extra environment variables set for the build process
//   - Jobs: number of parallel cargo jobs (0 = cargo's default)
//
// Build behavior:
//   - Platform: overrides the operating system identifier used to
//     resolve artifact names. Empty means runtime.GOOS. Mostly useful
//     in tests.
//   - Verbose: record the cargo command line in the build output
//   - CleanFirst: run cargo clean before building
//
// Log defaults to slog.Disabled when nil.
type BuildConfig struct {
	// Source paths
	CrateDir   string // Root directory of the Rust crate
	PublishDir string // Destination for the published artifact

	// Build arguments
	BuildArgs []string          // Additional cargo arguments
	Env       map[string]string // Environment variables for build

	// Build options
	Platform   string // OS identifier override (default runtime.GOOS)
	Verbose    bool   // Enable verbose output
	CleanFirst bool   // Run cargo clean before build
	Jobs       int    // Number of parallel jobs (0 = cargo default)

	Log slog.Logger // Logger for build progress, nil = disabled
}

func (c *BuildConfig) crateDir() string {
	if c.CrateDir == "" {
		return "."
	}
	return c.CrateDir
}

func (c *BuildConfig) publishDir() string {
	dir := c.PublishDir
	if dir == "" {
		dir = defaultPublishDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.crateDir(), dir)
	}
	return dir
}

// releaseDir is where cargo leaves release artifacts. CARGO_BUILD_TARGET
// inserts a target-triple directory between target/ and release/, and the
// builder and the publisher must agree on it.
func (c *BuildConfig) releaseDir() string {
	dir := filepath.Join(c.crateDir(), targetDirName)
	if target := os.Getenv("CARGO_BUILD_TARGET"); target != "" {
		dir = filepath.Join(dir, target)
	}
	return filepath.Join(dir, releaseDirName)
}

func (c *BuildConfig) logger() slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Disabled
}
