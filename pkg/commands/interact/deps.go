package interact

import (
	"context"

	"github.com/quill-fi/quill-tooling/actors"
	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/engine/devnet"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/pkg/logger"
	"github.com/quill-fi/quill-tooling/report"
)

// ConfigLoaderFunc loads the interact settings.
type ConfigLoaderFunc func() (*config.Interact, error)

// ProjectLoaderFunc loads the forge project rooted at dir.
type ProjectLoaderFunc func(dir string) (*forge.Project, error)

// RunnerFactoryFunc creates the runner executing forge scripts.
type RunnerFactoryFunc func(lggr logger.Logger, cfg *config.Interact) forge.Runner

// TimeTraveler moves the clock of a development node forward.
type TimeTraveler interface {
	IncreaseTime(ctx context.Context, seconds uint64) error
}

// TimeTravelerFactoryFunc creates the client used by movetime.
type TimeTravelerFactoryFunc func(lggr logger.Logger, url string) TimeTraveler

// RendererFactoryFunc creates the report renderer.
type RendererFactoryFunc func(opts ...report.Option) (*report.Renderer, error)

// defaultRunnerFactory is the production implementation that runs the forge binary.
func defaultRunnerFactory(lggr logger.Logger, cfg *config.Interact) forge.Runner {
	return forge.NewExecRunner(logger.Named(lggr, "forge"), cfg.ForgeBin, cfg.ProjectDir)
}

// defaultTimeTravelerFactory is the production implementation that calls the node over JSON-RPC.
func defaultTimeTravelerFactory(lggr logger.Logger, url string) TimeTraveler {
	return devnet.New(logger.Named(lggr, "devnet"), url)
}

// Deps holds the injectable dependencies for interact commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the interact settings.
	// Default: config.LoadInteract
	ConfigLoader ConfigLoaderFunc

	// ProjectLoader loads the forge project.
	// Default: forge.LoadProject
	ProjectLoader ProjectLoaderFunc

	// RunnerFactory creates the forge runner.
	// Default: forge.NewExecRunner
	RunnerFactory RunnerFactoryFunc

	// TimeTravelerFactory creates the devnet client.
	// Default: devnet.New
	TimeTravelerFactory TimeTravelerFactoryFunc

	// RendererFactory creates the report renderer.
	// Default: report.New
	RendererFactory RendererFactoryFunc

	// Actors resolves redeem credentials and owner aliases.
	// Default: actors.Default
	Actors *actors.Directory
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.LoadInteract
	}
	if d.ProjectLoader == nil {
		d.ProjectLoader = forge.LoadProject
	}
	if d.RunnerFactory == nil {
		d.RunnerFactory = defaultRunnerFactory
	}
	if d.TimeTravelerFactory == nil {
		d.TimeTravelerFactory = defaultTimeTravelerFactory
	}
	if d.RendererFactory == nil {
		d.RendererFactory = report.New
	}
	if d.Actors == nil {
		d.Actors = actors.Default()
	}
}
