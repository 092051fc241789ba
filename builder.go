package wikibuild

import "context"

// Builder defines the interface a build system integration must implement.
//
// The plugin crate builds with cargo, so CargoBuilder is the only
// implementation registered by default, but the interface keeps the
// factory open to other build systems.
//
// # Builder Lifecycle
//
//  1. CanBuild() - Factory calls this to find the right builder for a manifest file
//  2. Build() - Pipeline calls this to compile the library
//  3. Clean() - Optional cleanup of build artifacts
//
// # Thread Safety
//
// Builder implementations should be stateless and thread-safe.
type Builder interface {
	// Name returns the human-readable name of this builder.
	//
	// This name is used in error messages and logs. Example: "Cargo".
	Name() string

	// CanBuild checks if this builder can handle the given manifest file.
	//
	// The manifestFile parameter is typically just the filename
	// (e.g., "Cargo.toml") or a relative path (e.g., "rust/Cargo.toml").
	CanBuild(manifestFile string) bool

	// Build compiles the library and returns the result.
	//
	// The manifestFile path is relative to config.CrateDir.
	//
	// Returns:
	//   - BuildResult with Success=true and Artifacts list on success
	//   - BuildResult with Success=false and Error on failure; the
	//     returned error wraps ErrBuildFailed
	Build(ctx context.Context, config *BuildConfig, manifestFile string) (*BuildResult, error)

	// Clean removes build artifacts.
	//
	// The manifestFile path is relative to config.CrateDir.
	Clean(ctx context.Context, config *BuildConfig, manifestFile string) error
}
