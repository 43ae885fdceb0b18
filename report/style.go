package report

import (
	"github.com/fatih/color"
)

// palette holds the SGR styles used by the ANSI renderers. Colour is switched
// per palette rather than through color.NoColor so that output does not depend
// on whether stdout is a terminal.
type palette struct {
	bold      *color.Color
	italic    *color.Color
	underline *color.Color
	cyan      *color.Color
	yellow    *color.Color
	green     *color.Color
	red       *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bold:      color.New(color.Bold),
		italic:    color.New(color.Italic),
		underline: color.New(color.Underline),
		cyan:      color.New(color.FgCyan),
		yellow:    color.New(color.FgYellow),
		green:     color.New(color.FgGreen),
		red:       color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.bold, p.italic, p.underline, p.cyan, p.yellow, p.green, p.red} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func style(c *color.Color, s string) string {
	if s == "" {
		return ""
	}

	return c.Sprint(s)
}

func (p palette) Bold(s string) string      { return style(p.bold, s) }
func (p palette) Italic(s string) string    { return style(p.italic, s) }
func (p palette) Underline(s string) string { return style(p.underline, s) }
func (p palette) Cyan(s string) string      { return style(p.cyan, s) }
func (p palette) Yellow(s string) string    { return style(p.yellow, s) }
func (p palette) Green(s string) string     { return style(p.green, s) }
func (p palette) Red(s string) string       { return style(p.red, s) }
