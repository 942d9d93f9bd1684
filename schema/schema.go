// Package schema holds static knowledge about SVG attributes and
// properties: which attributes are styleable presentation attributes,
// which properties inherit, their initial values, and which attributes
// carry references to other elements.
package schema

var presentation = map[string]struct{}{
	"alignment-baseline":          {},
	"baseline-shift":              {},
	"clip-path":                   {},
	"clip-rule":                   {},
	"color":                       {},
	"color-interpolation":         {},
	"color-interpolation-filters": {},
	"color-rendering":             {},
	"cursor":                      {},
	"direction":                   {},
	"display":                     {},
	"dominant-baseline":           {},
	"fill":                        {},
	"fill-opacity":                {},
	"fill-rule":                   {},
	"filter":                      {},
	"flood-color":                 {},
	"flood-opacity":               {},
	"font-family":                 {},
	"font-size":                   {},
	"font-size-adjust":            {},
	"font-stretch":                {},
	"font-style":                  {},
	"font-variant":                {},
	"font-weight":                 {},
	"image-rendering":             {},
	"letter-spacing":              {},
	"lighting-color":              {},
	"marker":                      {},
	"marker-end":                  {},
	"marker-mid":                  {},
	"marker-start":                {},
	"mask":                        {},
	"opacity":                     {},
	"overflow":                    {},
	"paint-order":                 {},
	"pointer-events":              {},
	"shape-rendering":             {},
	"stop-color":                  {},
	"stop-opacity":                {},
	"stroke":                      {},
	"stroke-dasharray":            {},
	"stroke-dashoffset":           {},
	"stroke-linecap":              {},
	"stroke-linejoin":             {},
	"stroke-miterlimit":           {},
	"stroke-opacity":              {},
	"stroke-width":                {},
	"text-anchor":                 {},
	"text-decoration":             {},
	"text-rendering":              {},
	"unicode-bidi":                {},
	"vector-effect":               {},
	"visibility":                  {},
	"word-spacing":                {},
	"writing-mode":                {},
}

var inherited = map[string]struct{}{
	"clip-rule":                   {},
	"color":                       {},
	"color-interpolation":         {},
	"color-interpolation-filters": {},
	"color-rendering":             {},
	"cursor":                      {},
	"direction":                   {},
	"dominant-baseline":           {},
	"fill":                        {},
	"fill-opacity":                {},
	"fill-rule":                   {},
	"font-family":                 {},
	"font-size":                   {},
	"font-size-adjust":            {},
	"font-stretch":                {},
	"font-style":                  {},
	"font-variant":                {},
	"font-weight":                 {},
	"image-rendering":             {},
	"letter-spacing":              {},
	"marker":                      {},
	"marker-end":                  {},
	"marker-mid":                  {},
	"marker-start":                {},
	"paint-order":                 {},
	"pointer-events":              {},
	"shape-rendering":             {},
	"stroke":                      {},
	"stroke-dasharray":            {},
	"stroke-dashoffset":           {},
	"stroke-linecap":              {},
	"stroke-linejoin":             {},
	"stroke-miterlimit":           {},
	"stroke-opacity":              {},
	"stroke-width":                {},
	"text-anchor":                 {},
	"text-rendering":              {},
	"visibility":                  {},
	"word-spacing":                {},
	"writing-mode":                {},
}

var defaults = map[string]string{
	"clip-path":         "none",
	"clip-rule":         "nonzero",
	"color":             "black",
	"direction":         "ltr",
	"display":           "inline",
	"fill":              "black",
	"fill-opacity":      "1",
	"fill-rule":         "nonzero",
	"filter":            "none",
	"flood-color":       "black",
	"flood-opacity":     "1",
	"font-size":         "medium",
	"font-style":        "normal",
	"font-variant":      "normal",
	"font-weight":       "normal",
	"letter-spacing":    "normal",
	"lighting-color":    "white",
	"marker-end":        "none",
	"marker-mid":        "none",
	"marker-start":      "none",
	"mask":              "none",
	"opacity":           "1",
	"overflow":          "visible",
	"shape-rendering":   "auto",
	"stop-color":        "black",
	"stop-opacity":      "1",
	"stroke":            "none",
	"stroke-dasharray":  "none",
	"stroke-dashoffset": "0",
	"stroke-linecap":    "butt",
	"stroke-linejoin":   "miter",
	"stroke-miterlimit": "4",
	"stroke-opacity":    "1",
	"stroke-width":      "1",
	"text-anchor":       "start",
	"text-rendering":    "auto",
	"visibility":        "visible",
	"word-spacing":      "normal",
	"writing-mode":      "lr-tb",
}

// IsPresentation reports whether name is a presentation attribute,
// i.e. an attribute that participates in the style cascade.
func IsPresentation(name string) bool {
	_, ok := presentation[name]
	return ok
}

// IsInherited reports whether the property inherits from the parent
// when it is not specified.
func IsInherited(name string) bool {
	_, ok := inherited[name]
	return ok
}

// Default returns the initial value text of a property.
func Default(name string) (string, bool) {
	v, ok := defaults[name]
	return v, ok
}

// Properties returns the names of all known properties.
func Properties() []string {
	list := make([]string, 0, len(presentation))
	for name := range presentation {
		list = append(list, name)
	}
	return list
}
