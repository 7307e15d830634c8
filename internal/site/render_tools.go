package site

import "github.com/hautu-waka/wakabuild/internal/content"

type toolsView struct {
	Tools []toolView
}

type toolView struct {
	ID          string
	Name        string
	Description string
	VideoURL    string
	StageBadges []string
	MuscleLinks []muscleLinkView
}

type muscleLinkView struct {
	ID    string
	Label string
}

// RenderTools renders one entry per tool in input order. Stage badges show
// the localized name of each referenced stage that resolves, preserving the
// tool's listed order; unresolved stage ids are dropped. Muscle links are
// never resolved: the label derives from the id and the anchor targets the
// muscle's page anchor whether or not the taxonomy knows the id.
func RenderTools(tools []content.Tool, lk Lookups, prose *Prose) (Fragment, error) {
	view := toolsView{Tools: make([]toolView, 0, len(tools))}
	dropped := 0
	for _, t := range tools {
		tv := toolView{
			ID:          t.ID,
			Name:        t.Name,
			Description: prose.Block(t.Description, "description"),
			VideoURL:    t.Video,
		}
		for _, stageID := range t.Stages {
			stage, ok := lk.Stage(stageID)
			if !ok {
				dropped++
				continue
			}
			tv.StageBadges = append(tv.StageBadges, stage.NameMaori)
		}
		for _, muscleID := range t.Muscles {
			tv.MuscleLinks = append(tv.MuscleLinks, muscleLinkView{
				ID:    muscleID,
				Label: MuscleLabel(muscleID),
			})
		}
		view.Tools = append(view.Tools, tv)
	}
	html, err := execFragment("tools.tmpl", view)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Entries: len(view.Tools), Dropped: dropped}, nil
}
