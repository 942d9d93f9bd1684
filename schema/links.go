package schema

// LinkKind classifies what a reference attribute points at.
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkPaint
	LinkClip
	LinkMask
	LinkFilter
	LinkMarker
	LinkHref
	LinkTemplate
	// LinkNavigation is a hyperlink. It names a target without reusing
	// its content.
	LinkNavigation
)

func (k LinkKind) String() string {
	switch k {
	case LinkPaint:
		return "paint"
	case LinkClip:
		return "clip"
	case LinkMask:
		return "mask"
	case LinkFilter:
		return "filter"
	case LinkMarker:
		return "marker"
	case LinkHref:
		return "href"
	case LinkTemplate:
		return "template"
	case LinkNavigation:
		return "navigation"
	}
	return "none"
}

var linkAttributes = map[string]LinkKind{
	"fill":         LinkPaint,
	"stroke":       LinkPaint,
	"clip-path":    LinkClip,
	"mask":         LinkMask,
	"filter":       LinkFilter,
	"marker":       LinkMarker,
	"marker-start": LinkMarker,
	"marker-mid":   LinkMarker,
	"marker-end":   LinkMarker,
	"href":         LinkHref,
	"xlink:href":   LinkHref,
}

// templateElements instantiate the content of the element they
// reference.
var templateElements = map[string]struct{}{
	"use": {},
}

var navigationElements = map[string]struct{}{
	"a": {},
}

// LinkKindOf returns the kind of reference carried by the named
// attribute on the given element.
func LinkKindOf(element, name string) LinkKind {
	k, ok := linkAttributes[name]
	if !ok {
		return LinkNone
	}
	if k == LinkHref {
		if _, ok := templateElements[element]; ok {
			return LinkTemplate
		}
		if _, ok := navigationElements[element]; ok {
			return LinkNavigation
		}
	}
	return k
}

// IsHref reports whether name is one of the href spellings.
func IsHref(name string) bool {
	return name == "href" || name == "xlink:href"
}

// TemplateExcluded lists the attributes of a template host that never
// override the instantiated content.
var templateExcluded = map[string]struct{}{
	"x":          {},
	"y":          {},
	"width":      {},
	"height":     {},
	"href":       {},
	"xlink:href": {},
	"id":         {},
	"transform":  {},
	"class":      {},
	"style":      {},
}

func IsTemplateExcluded(name string) bool {
	_, ok := templateExcluded[name]
	return ok
}
