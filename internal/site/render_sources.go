package site

import "github.com/hautu-waka/wakabuild/internal/content"

type sourcesView struct {
	Intro      string
	Categories []categoryView
}

type categoryView struct {
	Anchor      string
	Name        string
	Description string
	Items       []itemView
}

type itemView struct {
	DisplayName string
	Detail      string
	Link        string
}

// RenderSources renders every category and item in input order. Display name
// and the at-most-one detail follow the record's precedence rules; linked
// items open in a new browsing context.
func RenderSources(cat *content.SourceCatalogue) (Fragment, error) {
	view := sourcesView{Intro: cat.Intro}
	entries := 0
	for _, c := range cat.Categories {
		cv := categoryView{
			Anchor:      "source-" + Slug(c.Name),
			Name:        c.Name,
			Description: c.Description,
		}
		for _, it := range c.Items {
			cv.Items = append(cv.Items, itemView{
				DisplayName: it.DisplayName(),
				Detail:      it.Detail(),
				Link:        it.Link,
			})
			entries++
		}
		view.Categories = append(view.Categories, cv)
	}
	html, err := execFragment("sources.tmpl", view)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Entries: entries}, nil
}
