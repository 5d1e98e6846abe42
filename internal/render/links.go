package render

import (
	"strings"

	"github.com/abhisek/ifrshub/internal/catalog"
)

// Top-level view paths.
const (
	PathHome      = "/"
	PathStandards = "/standards"
	PathExamples  = "/examples"
	PathTests     = "/tests"
	PathProgress  = "/progress"
)

var kindPaths = map[catalog.Kind]string{
	catalog.KindStandard: PathStandards,
	catalog.KindExample:  PathExamples,
	catalog.KindTest:     PathTests,
}

// Href returns the link to an item's own view.
func Href(k catalog.Kind, id string) string {
	base, ok := kindPaths[k]
	if !ok {
		return PathHome
	}
	return base + "/" + id
}

// Link is a parsed href.
type Link struct {
	Path string       // top-level path, e.g. "/standards"
	Kind catalog.Kind // set when the link names an item
	ID   string
}

// ParseHref splits an href into its top-level path and, for item links, the
// kind and id. It reports false for anything that is not one of the known
// view paths.
func ParseHref(href string) (Link, bool) {
	if href == PathHome || href == "" {
		return Link{Path: PathHome}, true
	}
	if href == PathProgress {
		return Link{Path: PathProgress}, true
	}
	for k, base := range kindPaths {
		if href == base {
			return Link{Path: base}, true
		}
		id, ok := strings.CutPrefix(href, base+"/")
		if ok && catalog.IsSlug(id) {
			return Link{Path: base, Kind: k, ID: id}, true
		}
	}
	return Link{}, false
}
