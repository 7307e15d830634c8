package site

import "github.com/hautu-waka/wakabuild/internal/content"

type introView struct {
	Title              string
	Subtitle           string
	Hook               string
	Sections           []introSectionView
	VideoURL           string
	AttributionPrimary string
	AttributionOrgs    string
}

type introSectionView struct {
	Heading string
	Body    string
}

// RenderIntro renders the introduction section: heading block, the sections
// in input order, the optional video embed, then the attribution block.
func RenderIntro(intro *content.Intro, prose *Prose) (Fragment, error) {
	view := introView{
		Title:              intro.Title,
		Subtitle:           intro.Subtitle,
		Hook:               intro.Hook,
		VideoURL:           intro.Video,
		AttributionPrimary: intro.Attribution.Primary,
		AttributionOrgs:    intro.Attribution.Organisations,
	}
	for _, s := range intro.Sections {
		view.Sections = append(view.Sections, introSectionView{
			Heading: s.Heading,
			Body:    prose.Block(s.Content, ""),
		})
	}
	html, err := execFragment("intro.tmpl", view)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Entries: len(view.Sections)}, nil
}
