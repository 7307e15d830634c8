package content

import "encoding/json"

// The five record documents that feed a page build. All records are read-only
// after load; a build never mutates them.

// Intro is the introduction record (intro.json).
type Intro struct {
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Hook        string         `json:"hook"`
	Sections    []IntroSection `json:"sections"`
	Video       string         `json:"video,omitempty"`
	Attribution Attribution    `json:"attribution"`
}

// IntroSection is one heading/content block inside the introduction.
type IntroSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Attribution credits the people and organisations behind the content.
type Attribution struct {
	Primary       string `json:"primary"`
	Organisations string `json:"organisations"`
}

// Stage is one step of the voyage (stages.json holds an ordered array).
// Hotspot is opaque positional/shape data consumed only by the page's
// client-side overlay; it passes through a build byte-for-byte.
type Stage struct {
	ID                  string          `json:"id"`
	NameMaori           string          `json:"name_maori"`
	NameEnglish         string          `json:"name_english"`
	AsStage             string          `json:"as_stage"`
	AsState             string          `json:"as_state"`
	ReflectionQuestions []string        `json:"reflection_questions"`
	Tools               []string        `json:"tools"`
	Hotspot             json.RawMessage `json:"hotspot"`
}

// Tool is a method or practice (tools.json holds an ordered array).
// Stages and Muscles hold ids; either may reference ids that do not resolve.
type Tool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Video       string   `json:"video,omitempty"`
	Stages      []string `json:"stages"`
	Muscles     []string `json:"muscles"`
}

// MuscleTaxonomy groups capabilities into dimensions (muscles.json).
type MuscleTaxonomy struct {
	Intro      string      `json:"intro"`
	Dimensions []Dimension `json:"dimensions"`
}

// Dimension is a named grouping of related muscles.
type Dimension struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameEnglish string   `json:"name_english"`
	Description string   `json:"description"`
	Muscles     []Muscle `json:"muscles"`
}

// Muscle is a capability developed through tools. Its id doubles as the page
// anchor (#muscle-<id>). Tools may be empty, which renders a placeholder.
type Muscle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}

// SourceCatalogue is the bibliography/acknowledgements record (sources.json).
type SourceCatalogue struct {
	Intro      string     `json:"intro"`
	Categories []Category `json:"categories"`
}

// Category is one group of source items.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Item is a single bibliographic or attribution entry. Title takes precedence
// over Name for display; the secondary detail resolves Author, then Role,
// then Description, first present wins.
type Item struct {
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Author      string `json:"author,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// DisplayName returns the item's display name per the title-over-name rule.
func (it Item) DisplayName() string {
	if it.Title != "" {
		return it.Title
	}
	return it.Name
}

// Detail returns the single secondary detail shown after the display name,
// or "" when none of the detail fields is present.
func (it Item) Detail() string {
	switch {
	case it.Author != "":
		return it.Author
	case it.Role != "":
		return it.Role
	case it.Description != "":
		return it.Description
	}
	return ""
}

// Records bundles the five loaded documents for one build invocation.
type Records struct {
	Intro   *Intro
	Stages  []Stage
	Tools   []Tool
	Muscles *MuscleTaxonomy
	Sources *SourceCatalogue
}
