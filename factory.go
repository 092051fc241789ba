package wikibuild

import (
	"fmt"
	"path/filepath"
)

// BuilderFactory manages the registration and selection of builders.
//
// The factory maintains a registry of Builder implementations and picks
// the right one for a given manifest file. The plugin crate only needs
// the cargo builder today, but registration keeps the selection logic
// uniform and extensible.
//
// # Builder Selection
//
// When asked for a builder, the factory:
//  1. Extracts the filename from the manifest path
//  2. Calls CanBuild() on each registered builder in order
//  3. Uses the first builder that returns true
//  4. Returns an error if no builder can handle the file
//
// # Thread Safety
//
// BuilderFactory is NOT thread-safe for registration. Register all
// builders before concurrent use.
type BuilderFactory struct {
	builders []Builder
}

// NewBuilderFactory creates a factory with all standard builders
// registered. Currently that is just the CargoBuilder.
func NewBuilderFactory() *BuilderFactory {
	factory := &BuilderFactory{}
	factory.Register(&CargoBuilder{})
	return factory
}

// Register adds a new builder to the factory.
//
// Builders are checked in the order they are registered. If multiple
// builders can handle the same file type, the first registered builder
// wins. Not thread-safe.
func (f *BuilderFactory) Register(builder Builder) {
	f.builders = append(f.builders, builder)
}

// BuilderFor returns the appropriate builder for the given manifest
// file.
//
// The manifestFile can be a full path (e.g., "rust/Cargo.toml") or just
// a filename (e.g., "Cargo.toml"). Only the base filename is used for
// matching.
func (f *BuilderFactory) BuilderFor(manifestFile string) (Builder, error) {
	filename := filepath.Base(manifestFile)

	for _, builder := range f.builders {
		if builder.CanBuild(filename) {
			return builder, nil
		}
	}

	return nil, fmt.Errorf("no builder found for manifest file: %s", filename)
}

// ListBuilders returns a copy of all registered builders.
func (f *BuilderFactory) ListBuilders() []Builder {
	return append([]Builder{}, f.builders...)
}
