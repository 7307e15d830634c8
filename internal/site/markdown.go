package site

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
)

// Prose renders free-text content fields (intro sections, tool and muscle
// descriptions) into HTML blocks. In the default mode text passes through
// verbatim inside a paragraph, preserving the original page contract. With
// markdown enabled the text runs through goldmark instead.
type Prose struct {
	md      goldmark.Markdown
	enabled bool
}

// NewProse creates a prose renderer. markdown selects goldmark conversion.
func NewProse(markdown bool) *Prose {
	p := &Prose{enabled: markdown}
	if markdown {
		p.md = goldmark.New()
	}
	return p
}

// Block renders text as an HTML block, tagged with class when non-empty.
// Raw mode emits a paragraph; markdown mode wraps the converted output in a
// div so multi-paragraph content stays valid HTML.
func (p *Prose) Block(text, class string) string {
	attr := ""
	if class != "" {
		attr = fmt.Sprintf(" class=%q", class)
	}
	if !p.enabled {
		return fmt.Sprintf("<p%s>%s</p>", attr, text)
	}
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(text), &buf); err != nil {
		// Goldmark conversion of in-memory text only fails on writer errors,
		// which bytes.Buffer cannot produce; fall back to passthrough anyway.
		slog.Warn("Markdown conversion failed, passing text through", "error", err)
		return fmt.Sprintf("<p%s>%s</p>", attr, text)
	}
	return fmt.Sprintf("<div%s>%s</div>", attr, strings.TrimSpace(buf.String()))
}
