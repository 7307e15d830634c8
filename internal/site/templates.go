package site

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Section fragment templates, parsed once at startup. text/template rather
// than html/template: content fields are trusted editorial input and pass
// through unescaped, exactly as the page has always been built.
var fragmentTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

func execFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragmentTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return buf.String(), nil
}
