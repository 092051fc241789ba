// Package wikibuild builds and publishes the wikiplugin_internal native
// library used by the Neovim wiki plugin.
//
// The plugin's core is a Rust cdylib crate. Neovim loads it as a Lua C
// module, which means the compiled library has to end up under lua/ with
// a filename package.cpath will actually probe for. This package drives
// that whole sequence: resolve the platform-specific artifact names, run
// cargo in release mode, and copy the result into place.
//
// # Basic Usage
//
// Create a pipeline and run it:
//
//	pipeline, err := wikibuild.NewPipeline(&wikibuild.BuildConfig{
//	    CrateDir: "/path/to/plugin",
//	    Verbose:  true,
//	})
//	if err != nil {
//	    return err
//	}
//	err = pipeline.Run(ctx)
//
// # Architecture
//
// The package uses a factory pattern with registered builders:
//
//	BuilderFactory
//	└── CargoBuilder (Cargo.toml)
//
// Only cargo is registered today because the plugin crate is pure Rust,
// but the Builder interface keeps room for other build systems.
//
// # Failure Modes
//
// Three sentinel errors cover every way the pipeline can fail:
//
//   - ErrUnsupportedPlatform: the OS is not linux, darwin or windows.
//     Raised before any side effect.
//   - ErrBuildFailed: cargo exited non-zero. Nothing is published.
//   - ErrPublishFailed: the built artifact could not be copied into the
//     publish directory. The artifact stays under target/release.
//
// All three are fatal; none are retried.
//
// # Platform Support
//
// Linux, macOS and Windows. Any other operating system fails fast with
// ErrUnsupportedPlatform rather than guessing a library extension.
package wikibuild
