package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hautu-waka/wakabuild/internal/logfields"
	"github.com/hautu-waka/wakabuild/internal/util/sets"
)

// Record file names expected inside the data directory.
const (
	FileIntro   = "intro.json"
	FileStages  = "stages.json"
	FileTools   = "tools.json"
	FileMuscles = "muscles.json"
	FileSources = "sources.json"
)

// ErrMissingRequiredField marks a record missing a field the renderers depend
// on (id, name, description). Loading fails rather than rendering a guess.
var ErrMissingRequiredField = errors.New("missing required field")

// ErrDuplicateID marks a record id that appears more than once in its sequence.
var ErrDuplicateID = errors.New("duplicate id")

// LoadDir reads and validates the five record documents from dataDir.
func LoadDir(dataDir string) (*Records, error) {
	recs := &Records{}
	if err := loadJSON(dataDir, FileIntro, &recs.Intro); err != nil {
		return nil, err
	}
	if err := loadJSON(dataDir, FileStages, &recs.Stages); err != nil {
		return nil, err
	}
	if err := loadJSON(dataDir, FileTools, &recs.Tools); err != nil {
		return nil, err
	}
	if err := loadJSON(dataDir, FileMuscles, &recs.Muscles); err != nil {
		return nil, err
	}
	if err := loadJSON(dataDir, FileSources, &recs.Sources); err != nil {
		return nil, err
	}
	if err := recs.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("Loaded content records",
		slog.Int("stages", len(recs.Stages)),
		slog.Int("tools", len(recs.Tools)),
		slog.Int("dimensions", len(recs.Muscles.Dimensions)),
		slog.Int("source_categories", len(recs.Sources.Categories)))
	return recs, nil
}

func loadJSON(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return fmt.Errorf("read record file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse record file %s: %w", path, err)
	}
	slog.Debug("Loaded record file", logfields.Path(path))
	return nil
}

// Validate enforces the required-field and unique-id contracts. Optional
// fields (video, link, details) and cross-references are never checked here;
// dangling references are a render-time policy, not a load error.
func (r *Records) Validate() error {
	var errs []error

	if r.Intro == nil {
		errs = append(errs, fmt.Errorf("intro: %w: document", ErrMissingRequiredField))
	} else if r.Intro.Title == "" {
		errs = append(errs, fmt.Errorf("intro: %w: title", ErrMissingRequiredField))
	}

	stageIDs := sets.New[string]()
	for i, s := range r.Stages {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("stages[%d]: %w: id", i, ErrMissingRequiredField))
			continue
		}
		if stageIDs.Has(s.ID) {
			errs = append(errs, fmt.Errorf("stages[%d]: %w: %s", i, ErrDuplicateID, s.ID))
		}
		stageIDs.Add(s.ID)
		if s.NameMaori == "" || s.NameEnglish == "" {
			errs = append(errs, fmt.Errorf("stage %s: %w: name", s.ID, ErrMissingRequiredField))
		}
	}

	toolIDs := sets.New[string]()
	for i, t := range r.Tools {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tools[%d]: %w: id", i, ErrMissingRequiredField))
			continue
		}
		if toolIDs.Has(t.ID) {
			errs = append(errs, fmt.Errorf("tools[%d]: %w: %s", i, ErrDuplicateID, t.ID))
		}
		toolIDs.Add(t.ID)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tool %s: %w: name", t.ID, ErrMissingRequiredField))
		}
		if t.Description == "" {
			errs = append(errs, fmt.Errorf("tool %s: %w: description", t.ID, ErrMissingRequiredField))
		}
	}

	if r.Muscles != nil {
		muscleIDs := sets.New[string]()
		for _, d := range r.Muscles.Dimensions {
			if d.ID == "" || d.Name == "" {
				errs = append(errs, fmt.Errorf("dimension %q: %w: id/name", d.Name, ErrMissingRequiredField))
			}
			for _, m := range d.Muscles {
				if m.ID == "" {
					errs = append(errs, fmt.Errorf("dimension %s: muscle: %w: id", d.ID, ErrMissingRequiredField))
					continue
				}
				if muscleIDs.Has(m.ID) {
					errs = append(errs, fmt.Errorf("muscle %s: %w", m.ID, ErrDuplicateID))
				}
				muscleIDs.Add(m.ID)
				if m.Name == "" {
					errs = append(errs, fmt.Errorf("muscle %s: %w: name", m.ID, ErrMissingRequiredField))
				}
			}
		}
	}

	if r.Sources != nil {
		for _, c := range r.Sources.Categories {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("source category: %w: name", ErrMissingRequiredField))
			}
			for i, it := range c.Items {
				if it.DisplayName() == "" {
					errs = append(errs, fmt.Errorf("source category %q item %d: %w: title or name", c.Name, i, ErrMissingRequiredField))
				}
			}
		}
	}

	return errors.Join(errs...)
}
