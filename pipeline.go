package wikibuild

import (
	"context"
	"fmt"
	"runtime"

	"github.com/decred/slog"
)

// Pipeline runs the build-and-publish sequence for the plugin library:
// resolve platform names, check build tools, build, publish. The steps
// run in strict order and the first failure aborts the rest.
type Pipeline struct {
	config  *BuildConfig
	builder Builder
	log     slog.Logger
}

// NewPipeline creates a pipeline for the given configuration, selecting
// the builder for the crate manifest from the standard factory.
func NewPipeline(config *BuildConfig) (*Pipeline, error) {
	builder, err := NewBuilderFactory().BuilderFor(crateManifest)
	if err != nil {
		return nil, err
	}
	return NewPipelineWithBuilder(config, builder), nil
}

// NewPipelineWithBuilder is like NewPipeline but uses the given builder
// instead of consulting the factory.
func NewPipelineWithBuilder(config *BuildConfig, builder Builder) *Pipeline {
	return &Pipeline{
		config:  config,
		builder: builder,
		log:     config.logger(),
	}
}

// platform returns the operating system identifier the pipeline
// resolves artifact names for.
func (p *Pipeline) platform() string {
	if p.config.Platform != "" {
		return p.config.Platform
	}
	return runtime.GOOS
}

// Run executes the pipeline to completion.
//
// The platform lookup happens before any side effect, so an
// unsupported operating system fails without ever invoking the build
// tool. The build is a synchronous child process waited on to
// completion; ctx cancels it. A failed build never publishes, and a
// failed publish leaves the built artifact under the release directory.
func (p *Pipeline) Run(ctx context.Context) error {
	goos := p.platform()
	source, target, err := PlatformNames(goos)
	if err != nil {
		return err
	}
	p.log.Debugf("Resolved %s: build artifact %q, published artifact %q", goos, source, target)

	if checker, ok := p.builder.(ToolChecker); ok {
		if err := checker.CheckTools(); err != nil {
			return fmt.Errorf("build tools missing: %w", err)
		}
	}

	p.log.Infof("Building %s with %s", LibraryName, p.builder.Name())
	result, err := p.builder.Build(ctx, p.config, crateManifest)
	if err != nil {
		return err
	}
	p.log.Debugf("Build produced %d shared libraries", len(result.Artifacts))

	return PublishArtifact(p.config, source, target)
}

// Clean removes build artifacts via the underlying builder.
func (p *Pipeline) Clean(ctx context.Context) error {
	return p.builder.Clean(ctx, p.config, crateManifest)
}
