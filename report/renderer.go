// Package report renders protocol snapshots, and the difference between two of
// them, as ANSI terminal reports or Markdown documents.
package report

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/quill-fi/quill-tooling/actors"
	"github.com/quill-fi/quill-tooling/internal/fileutils"
	"github.com/quill-fi/quill-tooling/snapshot"
)

//go:embed templates/*
var embeddedTemplates embed.FS

var requiredTemplates = []string{"snapshot", "branch", "diff"}

// Renderer renders snapshots. It is safe for concurrent use.
type Renderer struct {
	palette palette
	actors  *actors.Directory
	tmpl    *template.Template
}

// New creates a Renderer with the embedded Markdown templates unless an
// option overrides them.
func New(opts ...Option) (*Renderer, error) {
	cfg := applyOptions(opts...)
	if cfg.actors == nil {
		cfg.actors = actors.NewDirectory(nil)
	}

	funcs := defaultFuncMap()
	for k, v := range cfg.extraFuncs {
		funcs[k] = v
	}

	tmpl := template.New("root").Funcs(funcs)

	var err error
	switch {
	case cfg.templateDir != "":
		tmpl, err = loadTemplatesFromDir(tmpl, cfg.templateDir)
	case cfg.templates != nil:
		tmpl, err = loadTemplatesFromMap(tmpl, cfg.templates)
	default:
		tmpl, err = loadEmbeddedTemplates(tmpl)
	}
	if err != nil {
		return nil, err
	}
	if err := validateRequiredTemplates(tmpl); err != nil {
		return nil, err
	}

	return &Renderer{
		palette: newPalette(cfg.color),
		actors:  cfg.actors,
		tmpl:    tmpl,
	}, nil
}

// WriteMarkdown renders s as Markdown into the file at path.
func (r *Renderer) WriteMarkdown(path string, s *snapshot.ProtocolSnapshot) error {
	md, err := r.Markdown(s)
	if err != nil {
		return err
	}

	return fileutils.WriteFile(path, []byte(md))
}

// WriteMarkdownDiff renders the diff between oldSnap and newSnap as Markdown
// into the file at path.
func (r *Renderer) WriteMarkdownDiff(path string, oldSnap, newSnap *snapshot.ProtocolSnapshot) error {
	md, err := r.MarkdownDiff(oldSnap, newSnap)
	if err != nil {
		return err
	}

	return fileutils.WriteFile(path, []byte(md))
}

func validatePair(oldSnap, newSnap *snapshot.ProtocolSnapshot) error {
	if err := oldSnap.Validate(); err != nil {
		return fmt.Errorf("cannot render old snapshot: %w", err)
	}
	if err := newSnap.Validate(); err != nil {
		return fmt.Errorf("cannot render new snapshot: %w", err)
	}

	return nil
}

func validateRequiredTemplates(tmpl *template.Template) error {
	missing := make([]string, 0, len(requiredTemplates))
	for _, name := range requiredTemplates {
		if tmpl.Lookup(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("template set is missing required template definitions: %s", strings.Join(missing, ", "))
	}

	return nil
}

func loadEmbeddedTemplates(tmpl *template.Template) (*template.Template, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates/markdown")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}

	return loadTemplatesFromFS(tmpl, sub)
}

func loadTemplatesFromDir(tmpl *template.Template, dir string) (*template.Template, error) {
	tmpl, err := loadTemplatesFromFS(tmpl, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates from %s: %w", dir, err)
	}

	return tmpl, nil
}

// loadTemplatesFromFS parses every *.tmpl file at the root of fsys as a
// template named after the file without its extension.
func loadTemplatesFromFS(tmpl *template.Template, fsys fs.FS) (*template.Template, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		content, readErr := fs.ReadFile(fsys, entry.Name())
		if readErr != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), readErr)
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err = tmpl.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
	}

	return tmpl, nil
}

func loadTemplatesFromMap(tmpl *template.Template, templates map[string]string) (*template.Template, error) {
	for name, content := range templates {
		var err error
		tmpl, err = tmpl.New(name).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
	}

	return tmpl, nil
}
