package site

import (
	"encoding/json"
	"fmt"

	"github.com/hautu-waka/wakabuild/internal/content"
)

// StageOverlay is the denormalized per-stage record embedded as a script
// payload so the page's interactive overlay needs no cross-referencing of its
// own. Field order matches the established payload layout.
type StageOverlay struct {
	ID                  string          `json:"id"`
	NameMaori           string          `json:"name_maori"`
	NameEnglish         string          `json:"name_english"`
	AsStage             string          `json:"as_stage"`
	AsState             string          `json:"as_state"`
	ReflectionQuestions []string        `json:"reflection_questions"`
	Tools               []OverlayTool   `json:"tools"`
	Hotspot             json.RawMessage `json:"hotspot"`
}

// OverlayTool is an (id, name) pair for a resolved tool reference.
type OverlayTool struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectStageOverlay builds the overlay payload for all stages in input
// order and serializes it as indented JSON. Tool ids that do not resolve are
// dropped from the pair list; hotspot data passes through unchanged.
func ProjectStageOverlay(stages []content.Stage, lk Lookups) (Fragment, error) {
	overlays := make([]StageOverlay, 0, len(stages))
	dropped := 0
	for _, s := range stages {
		ov := StageOverlay{
			ID:                  s.ID,
			NameMaori:           s.NameMaori,
			NameEnglish:         s.NameEnglish,
			AsStage:             s.AsStage,
			AsState:             s.AsState,
			ReflectionQuestions: s.ReflectionQuestions,
			Tools:               make([]OverlayTool, 0, len(s.Tools)),
			Hotspot:             s.Hotspot,
		}
		if ov.ReflectionQuestions == nil {
			ov.ReflectionQuestions = []string{}
		}
		for _, toolID := range s.Tools {
			tool, ok := lk.Tool(toolID)
			if !ok {
				dropped++
				continue
			}
			ov.Tools = append(ov.Tools, OverlayTool{ID: toolID, Name: tool.Name})
		}
		overlays = append(overlays, ov)
	}
	blob, err := json.MarshalIndent(overlays, "", "  ")
	if err != nil {
		return Fragment{}, fmt.Errorf("marshal stage overlay data: %w", err)
	}
	return Fragment{HTML: string(blob), Entries: len(overlays), Dropped: dropped}, nil
}
