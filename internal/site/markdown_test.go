package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProse_RawModeWrapsParagraph(t *testing.T) {
	p := NewProse(false)
	require.Equal(t, "<p>plain text</p>", p.Block("plain text", ""))
	require.Equal(t, `<p class="description">desc</p>`, p.Block("desc", "description"))
	// Raw mode is passthrough: markup in content is left untouched.
	require.Equal(t, "<p>a <em>b</em></p>", p.Block("a <em>b</em>", ""))
}

func TestProse_MarkdownModeConverts(t *testing.T) {
	p := NewProse(true)
	out := p.Block("some *emphasis* here", "description")
	require.Contains(t, out, "<em>emphasis</em>")
	require.Contains(t, out, `<div class="description">`)
}

func TestProse_MarkdownMultiParagraph(t *testing.T) {
	p := NewProse(true)
	out := p.Block("first\n\nsecond", "")
	require.Contains(t, out, "<p>first</p>")
	require.Contains(t, out, "<p>second</p>")
}
