package report

import (
	"text/template"

	"github.com/quill-fi/quill-tooling/actors"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	color       bool
	actors      *actors.Directory
	templateDir string
	templates   map[string]string
	extraFuncs  template.FuncMap
}

func applyOptions(opts ...Option) config {
	cfg := config{
		color:  true,
		actors: actors.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithColor enables or disables SGR styling in ANSI reports. Colour is on by
// default.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// WithActors sets the directory used to alias owner addresses.
func WithActors(dir *actors.Directory) Option {
	return func(c *config) {
		c.actors = dir
	}
}

// WithTemplateDir loads Markdown templates from a filesystem directory instead
// of the embedded defaults. The directory must contain one <name>.tmpl file
// per template of the default set: snapshot, branch, diff.
func WithTemplateDir(dir string) Option {
	return func(c *config) {
		c.templateDir = dir
	}
}

// WithTemplates provides in-memory Markdown template overrides keyed by any
// template name. Every name of the default set must be present.
func WithTemplates(templates map[string]string) Option {
	return func(c *config) {
		c.templates = templates
	}
}

// WithTemplateFuncs adds extra template functions; caller-provided functions
// take precedence over built-ins if keys collide.
func WithTemplateFuncs(funcs template.FuncMap) Option {
	return func(c *config) {
		c.extraFuncs = funcs
	}
}
