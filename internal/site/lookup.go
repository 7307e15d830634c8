package site

import (
	"fmt"

	"github.com/hautu-waka/wakabuild/internal/content"
	"github.com/hautu-waka/wakabuild/internal/util/sets"
)

// Lookups holds the id-keyed cross-reference tables. Built once per build and
// shared read-only by every renderer; a missing id is never an error here,
// resolution policy belongs to the caller.
type Lookups struct {
	Stages map[string]*content.Stage
	Tools  map[string]*content.Tool
}

// NewLookups builds the stage and tool tables. Duplicate ids fail because
// every later resolution would silently shadow a record.
func NewLookups(stages []content.Stage, tools []content.Tool) (Lookups, error) {
	lk := Lookups{
		Stages: make(map[string]*content.Stage, len(stages)),
		Tools:  make(map[string]*content.Tool, len(tools)),
	}
	seen := sets.New[string]()
	for i := range stages {
		s := &stages[i]
		if seen.Has("stage:" + s.ID) {
			return Lookups{}, fmt.Errorf("%w: stage %s", content.ErrDuplicateID, s.ID)
		}
		seen.Add("stage:" + s.ID)
		lk.Stages[s.ID] = s
	}
	for i := range tools {
		t := &tools[i]
		if seen.Has("tool:" + t.ID) {
			return Lookups{}, fmt.Errorf("%w: tool %s", content.ErrDuplicateID, t.ID)
		}
		seen.Add("tool:" + t.ID)
		lk.Tools[t.ID] = t
	}
	return lk, nil
}

// Stage resolves a stage id, reporting presence.
func (lk Lookups) Stage(id string) (*content.Stage, bool) {
	s, ok := lk.Stages[id]
	return s, ok
}

// Tool resolves a tool id, reporting presence.
func (lk Lookups) Tool(id string) (*content.Tool, bool) {
	t, ok := lk.Tools[id]
	return t, ok
}
