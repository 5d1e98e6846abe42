package app

import (
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/screens/detail"
	"github.com/abhisek/ifrshub/internal/screens/home"
	"github.com/abhisek/ifrshub/internal/screens/listing"
	"github.com/abhisek/ifrshub/internal/screens/placeholder"
	"github.com/abhisek/ifrshub/internal/screens/tests"
)

// Resolve maps hrefs to screens. Anything without a built view, including
// unknown ids, opens the "Coming Soon" placeholder.
func Resolve(deps screen.Deps) router.Resolver {
	return func(href string) screen.Screen {
		link, ok := render.ParseHref(href)
		if !ok {
			return placeholder.New("Not Found", href)
		}

		switch {
		case link.Path == render.PathHome:
			return home.New(deps)
		case link.Path == render.PathProgress:
			return placeholder.New("Progress", href)
		case link.ID == "" && link.Path == render.PathStandards:
			return listing.Standards(deps)
		case link.ID == "" && link.Path == render.PathExamples:
			return listing.Examples(deps)
		case link.ID == "" && link.Path == render.PathTests:
			return tests.New(deps)
		case link.Path == render.PathStandards:
			if s, ok := detail.New(deps, link.ID); ok {
				return s
			}
			return placeholder.New("Not Found", href)
		}

		// Example and test pages are not built yet.
		title := link.ID
		if it, ok := deps.Library.ByKind(link.Kind).Get(link.ID); ok {
			title = it.Title
		}
		return placeholder.New(title, href)
	}
}
