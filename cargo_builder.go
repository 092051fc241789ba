package wikibuild

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// crateManifest is the manifest filename cargo builds from.
const crateManifest = "Cargo.toml"

// CargoBuilder handles Rust builds using cargo.
//
// The plugin crate is built with `cargo build --release`, matching the
// release profile the Lua loader expects the artifact to come from.
type CargoBuilder struct{}

// Name returns the builder name.
func (b *CargoBuilder) Name() string {
	return "Cargo"
}

// CanBuild checks if this builder can handle the manifest file.
func (b *CargoBuilder) CanBuild(manifestFile string) bool {
	return MatchesPattern(manifestFile, `Cargo\.toml$`)
}

// Build compiles the crate with cargo in release mode.
//
// The cargo child process runs synchronously in the crate directory and
// is waited on to completion; ctx cancellation kills it. A non-zero
// exit status returns an error wrapping ErrBuildFailed with the
// combined cargo output attached.
func (b *CargoBuilder) Build(ctx context.Context, config *BuildConfig, manifestFile string) (*BuildResult, error) {
	result := &BuildResult{
		Success: false,
		Output:  []string{},
	}

	manifestPath := filepath.Join(config.crateDir(), manifestFile)
	crateDir := filepath.Dir(manifestPath)

	if err := b.runCargo(ctx, config, crateDir, result); err != nil {
		result.Error = err
		return result, err
	}

	// Record any shared libraries cargo produced. The publish step does
	// its own strict existence check against the platform name, so an
	// empty list here is not an error.
	artifacts, err := b.findCargoOutputs(config.releaseDir())
	if err != nil {
		result.Error = err
		return result, err
	}
	result.Artifacts = artifacts

	result.Success = true
	return result, nil
}

// Clean removes cargo build artifacts.
func (b *CargoBuilder) Clean(ctx context.Context, config *BuildConfig, manifestFile string) error {
	manifestPath := filepath.Join(config.crateDir(), manifestFile)
	crateDir := filepath.Dir(manifestPath)

	cmd := exec.CommandContext(ctx, b.cargoPath(), "clean")
	cmd.Dir = crateDir

	return cmd.Run()
}

// runCargo executes cargo to build the crate.
func (b *CargoBuilder) runCargo(ctx context.Context, config *BuildConfig, crateDir string, result *BuildResult) error {
	cargoPath := b.cargoPath()
	args := b.cargoArgs(config, crateDir)

	// Clean first if requested
	if config.CleanFirst {
		cleanCmd := exec.CommandContext(ctx, cargoPath, "clean")
		cleanCmd.Dir = crateDir
		cleanOutput, _ := cleanCmd.CombinedOutput()
		result.Output = append(result.Output, strings.Split(string(cleanOutput), "\n")...)
	}

	cmd := exec.CommandContext(ctx, cargoPath, args...)
	cmd.Dir = crateDir

	cmd.Env = os.Environ()
	for key, value := range config.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	if config.Verbose {
		result.Output = append(result.Output,
			fmt.Sprintf("Running: %s %s", cargoPath, strings.Join(args, " ")),
			fmt.Sprintf("Working directory: %s", crateDir))
	}

	output, err := cmd.CombinedOutput()
	outputLines := strings.Split(string(output), "\n")
	result.Output = append(result.Output, outputLines...)

	log := config.logger()
	for _, line := range outputLines {
		if line != "" {
			log.Debugf("cargo: %s", line)
		}
	}

	if err != nil {
		return NewBuildError("Cargo", result.Output, err)
	}

	return nil
}

// cargoArgs assembles the cargo invocation for a release build.
func (b *CargoBuilder) cargoArgs(config *BuildConfig, crateDir string) []string {
	args := []string{"build", "--release"}

	// Use locked dependencies if Cargo.lock exists
	lockPath := filepath.Join(crateDir, "Cargo.lock")
	if _, err := os.Stat(lockPath); err == nil {
		args = append(args, "--locked")
	}

	if config.Jobs > 0 {
		args = append(args, "--jobs", strconv.Itoa(config.Jobs))
	}

	return append(args, config.BuildArgs...)
}

// findCargoOutputs locates built shared libraries under the release
// directory.
func (b *CargoBuilder) findCargoOutputs(releaseDir string) ([]string, error) {
	var outputs []string

	for _, pattern := range []string{"*.so", "*.dylib", "*.dll"} {
		matches, err := filepath.Glob(filepath.Join(releaseDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %v", pattern, err)
		}
		outputs = append(outputs, matches...)
	}

	return outputs, nil
}

// cargoPath returns the path to the cargo executable. The CARGO
// environment variable overrides the default PATH lookup.
func (b *CargoBuilder) cargoPath() string {
	if cargoPath := os.Getenv("CARGO"); cargoPath != "" {
		return cargoPath
	}
	return "cargo"
}

// RequiredTools returns the external tools cargo builds depend on.
func (b *CargoBuilder) RequiredTools() []ToolRequirement {
	return []ToolRequirement{
		{Name: "cargo", Purpose: "Rust build tool"},
	}
}

// CheckTools verifies cargo is available before a build is attempted.
func (b *CargoBuilder) CheckTools() error {
	if cargoPath := os.Getenv("CARGO"); cargoPath != "" {
		if _, err := os.Stat(cargoPath); err == nil {
			return nil
		}
	}
	return CheckRequiredTools(b.RequiredTools())
}
