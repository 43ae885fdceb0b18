package report

import (
	"text/template"
)

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"table": func(t *table) string {
			if t == nil {
				return ""
			}

			return markdownTable(*t)
		},
	}
}
