package deploy

import (
	"errors"
	"io/fs"
	"os"

	"github.com/quill-fi/quill-tooling/engine/config"
	"github.com/quill-fi/quill-tooling/engine/deployment"
	"github.com/quill-fi/quill-tooling/engine/forge"
	"github.com/quill-fi/quill-tooling/pkg/logger"
)

// ConfigLoaderFunc loads the forge binary and project settings.
type ConfigLoaderFunc func() (*config.Interact, error)

// PresetLoaderFunc loads the network presets.
type PresetLoaderFunc func() (config.Presets, error)

// RunnerFactoryFunc creates the runner executing the deployment script.
type RunnerFactoryFunc func(lggr logger.Logger, bin, dir string) forge.Runner

// ManifestLoaderFunc reads the manifest written by the deployment script in dir.
type ManifestLoaderFunc func(dir string) (*deployment.Manifest, error)

// ContextWriterFunc writes the deployment context file.
type ContextWriterFunc func(path string, ctx deployment.Context) error

// defaultRunnerFactory is the production implementation that runs the forge binary.
func defaultRunnerFactory(lggr logger.Logger, bin, dir string) forge.Runner {
	return forge.NewExecRunner(logger.Named(lggr, "forge"), bin, dir)
}

// defaultManifestLoader is the production implementation that reads the manifest from disk.
func defaultManifestLoader(dir string) (*deployment.Manifest, error) {
	fsys, ok := os.DirFS(dir).(fs.ReadFileFS)
	if !ok {
		return nil, errors.New("project directory does not support reading files")
	}

	return deployment.LoadManifest(fsys)
}

// Deps holds the injectable dependencies for the deploy command.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the forge settings.
	// Default: config.LoadInteract
	ConfigLoader ConfigLoaderFunc

	// PresetLoader loads the network presets.
	// Default: config.LoadPresets
	PresetLoader PresetLoaderFunc

	// RunnerFactory creates the forge runner.
	// Default: forge.NewExecRunner
	RunnerFactory RunnerFactoryFunc

	// ManifestLoader reads the deployment manifest.
	// Default: deployment.LoadManifest
	ManifestLoader ManifestLoaderFunc

	// ContextWriter writes the deployment context.
	// Default: deployment.WriteContext
	ContextWriter ContextWriterFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.LoadInteract
	}
	if d.PresetLoader == nil {
		d.PresetLoader = config.LoadPresets
	}
	if d.RunnerFactory == nil {
		d.RunnerFactory = defaultRunnerFactory
	}
	if d.ManifestLoader == nil {
		d.ManifestLoader = defaultManifestLoader
	}
	if d.ContextWriter == nil {
		d.ContextWriter = deployment.WriteContext
	}
}
