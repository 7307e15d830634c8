package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hautu-waka/wakabuild/internal/config"
	"github.com/hautu-waka/wakabuild/internal/metrics"
	"github.com/hautu-waka/wakabuild/internal/site"
)

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.Directory = filepath.Join("testdata", "data")
	cfg.Template = filepath.Join("testdata", "template.html")
	cfg.Output.File = filepath.Join(t.TempDir(), "hautu-waka.html")
	return cfg
}

// collectIDs walks the parsed document and gathers every id attribute.
func collectIDs(n *html.Node, ids map[string]bool) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" {
				ids[attr.Val] = true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectIDs(c, ids)
	}
}

func TestBuild_FixtureSite(t *testing.T) {
	cfg := fixtureConfig(t)

	report, err := site.Run(cfg, metrics.NoopRecorder{})
	require.NoError(t, err)
	require.Equal(t, site.OutcomeSuccess, report.Outcome)

	page, err := os.ReadFile(cfg.Output.File)
	require.NoError(t, err)
	doc := string(page)

	// No placeholder token survives assembly.
	require.NotContains(t, doc, "{{INTRO_SECTION}}")
	require.NotContains(t, doc, "{{STAGE_DATA}}")

	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	ids := map[string]bool{}
	collectIDs(root, ids)
	for _, want := range []string{
		"introduction", "tools", "muscles", "sources",
		"tool-priority-plan", "tool-waka-hourua",
		"dimension-hinengaro", "muscle-critical-thinking", "muscle-noticing",
		"source-readings", "source-people",
	} {
		require.True(t, ids[want], "expected element id %q in output", want)
	}

	// Dangling references dropped without failing the build: the tool keeps
	// its resolved stage badge, the unknown stage id appears nowhere.
	require.Contains(t, doc, `<span class="badge badge-stage">Te Rapunga</span>`)
	require.NotContains(t, doc, "not-a-stage")

	// Muscle links render for taxonomy and non-taxonomy ids alike.
	require.Contains(t, doc, `<a href="#muscle-critical-thinking" class="muscle-link">Critical Thinking</a>`)
	require.Contains(t, doc, `<a href="#muscle-unmapped-muscle" class="muscle-link">Unmapped Muscle</a>`)

	// Empty muscle tool set renders the placeholder.
	require.Contains(t, doc, `<span class="no-tools">No specific tools mapped</span>`)

	// Source details: author beats role, em-dash separator, links open anew.
	require.Contains(t, doc, "Navigating the Currents</a> — A. Moana")
	require.Contains(t, doc, "Kaihautū collective — Facilitation")
	require.Contains(t, doc, "<li>Open contributors</li>")

	// The stage overlay payload is valid JSON with resolved tool pairs only.
	payload := regexp.MustCompile(`(?s)const stageData = (.*?);\n</script>`).FindStringSubmatch(doc)
	require.Len(t, payload, 2)
	var overlays []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload[1]), &overlays))
	require.Len(t, overlays, 2)
	require.Equal(t, "te-rapunga", overlays[0]["id"])
	tools, ok := overlays[0]["tools"].([]any)
	require.True(t, ok)
	require.Len(t, tools, 1, "missing-tool reference must be dropped")
	first, ok := tools[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Raupapa Take (Priority Plan)", first["name"])

	// Hotspots pass through with their data intact.
	hotspot, ok := overlays[1]["hotspot"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "circle", hotspot["shape"])

	// Report reflects what was rendered.
	require.Equal(t, 2, report.SectionEntries[site.SectionTools])
	require.Equal(t, 2, report.SectionEntries[site.SectionMuscles])
	require.Equal(t, 4, report.SectionEntries[site.SectionSources])
	require.Positive(t, report.DroppedReferences)

	// The report is persisted next to the output file.
	reportPath := filepath.Join(filepath.Dir(cfg.Output.File), "build-report.json")
	require.FileExists(t, reportPath)
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := fixtureConfig(t)

	_, err := site.Run(cfg, metrics.NoopRecorder{})
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output.File)
	require.NoError(t, err)

	_, err = site.Run(cfg, metrics.NoopRecorder{})
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output.File)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBuild_StrictReferencesRejectFixture(t *testing.T) {
	// The fixture deliberately carries dangling ids, so the strict policy
	// must refuse to build it.
	cfg := fixtureConfig(t)
	cfg.Render.References = config.ReferencesStrict

	_, err := site.Run(cfg, metrics.NoopRecorder{})
	require.Error(t, err)
	require.ErrorIs(t, err, site.ErrDanglingReferences)
}

func TestBuild_LenientTemplateMissingToken(t *testing.T) {
	cfg := fixtureConfig(t)
	tmpl, err := os.ReadFile(cfg.Template)
	require.NoError(t, err)

	stripped := strings.ReplaceAll(string(tmpl), "{{SOURCES_SECTION}}", "")
	cfg.Template = filepath.Join(t.TempDir(), "template.html")
	require.NoError(t, os.WriteFile(cfg.Template, []byte(stripped), 0o644))

	// Strict (default) fails.
	_, err = site.Run(cfg, metrics.NoopRecorder{})
	require.ErrorIs(t, err, site.ErrMissingPlaceholder)

	// Lenient reproduces the legacy silent behavior.
	cfg.Render.Placeholders = config.PlaceholdersLenient
	_, err = site.Run(cfg, metrics.NoopRecorder{})
	require.NoError(t, err)
	page, err := os.ReadFile(cfg.Output.File)
	require.NoError(t, err)
	require.NotContains(t, string(page), "Mycorrhizal Network")
	require.Contains(t, string(page), "Te Rapunga")
}
