package site

import "github.com/hautu-waka/wakabuild/internal/content"

type musclesView struct {
	Intro      string
	Dimensions []dimensionView
}

type dimensionView struct {
	ID          string
	Name        string
	NameEnglish string
	Description string
	Muscles     []muscleView
}

type muscleView struct {
	ID          string
	Name        string
	Description string
	ToolLinks   []toolLinkView
	NoTools     bool
}

type toolLinkView struct {
	ID   string
	Name string
}

// RenderMuscles renders every dimension and its muscles in input order. A
// muscle with an empty tool set gets the "no tools mapped" placeholder; a
// non-empty set whose ids all fail to resolve renders an empty link list
// instead, so the two cases stay distinguishable in output.
func RenderMuscles(tax *content.MuscleTaxonomy, lk Lookups, prose *Prose) (Fragment, error) {
	view := musclesView{Intro: tax.Intro}
	entries := 0
	dropped := 0
	for _, d := range tax.Dimensions {
		dv := dimensionView{
			ID:          d.ID,
			Name:        d.Name,
			NameEnglish: d.NameEnglish,
			Description: d.Description,
		}
		for _, m := range d.Muscles {
			mv := muscleView{
				ID:          m.ID,
				Name:        m.Name,
				Description: prose.Block(m.Description, "description"),
				NoTools:     len(m.Tools) == 0,
			}
			for _, toolID := range m.Tools {
				tool, ok := lk.Tool(toolID)
				if !ok {
					dropped++
					continue
				}
				mv.ToolLinks = append(mv.ToolLinks, toolLinkView{ID: toolID, Name: tool.Name})
			}
			dv.Muscles = append(dv.Muscles, mv)
			entries++
		}
		view.Dimensions = append(view.Dimensions, dv)
	}
	html, err := execFragment("muscles.tmpl", view)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Entries: entries, Dropped: dropped}, nil
}
