package value

import (
	"slices"
)

type grammar int

const (
	gString grammar = iota
	gNumber
	gLength
	gNumberList
	gLengthList
	gColor
	gPaint
	gFuncIRI
	gIRI
	gTransform
	gPath
	gKeyword
)

func (g grammar) kind() Kind {
	switch g {
	case gNumber:
		return KindNumber
	case gLength:
		return KindLength
	case gNumberList:
		return KindNumberList
	case gLengthList:
		return KindLengthList
	case gColor, gPaint:
		return KindColor
	case gFuncIRI, gIRI:
		return KindReference
	case gTransform:
		return KindTransform
	case gPath:
		return KindPath
	case gKeyword:
		return KindKeyword
	}
	return KindString
}

type attrGrammar struct {
	grammar  grammar
	keywords []string
}

func kw(g grammar, keywords ...string) attrGrammar {
	return attrGrammar{grammar: g, keywords: keywords}
}

var unitsKeywords = []string{"userSpaceOnUse", "objectBoundingBox"}
var fontSizeKeywords = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "larger", "smaller"}

var attrGrammars = map[string]attrGrammar{
	"x":                 kw(gLength),
	"y":                 kw(gLength),
	"width":             kw(gLength, "auto"),
	"height":            kw(gLength, "auto"),
	"rx":                kw(gLength, "auto"),
	"ry":                kw(gLength, "auto"),
	"cx":                kw(gLength),
	"cy":                kw(gLength),
	"r":                 kw(gLength),
	"fx":                kw(gLength),
	"fy":                kw(gLength),
	"fr":                kw(gLength),
	"x1":                kw(gLength),
	"y1":                kw(gLength),
	"x2":                kw(gLength),
	"y2":                kw(gLength),
	"refX":              kw(gLength),
	"refY":              kw(gLength),
	"markerWidth":       kw(gLength),
	"markerHeight":      kw(gLength),
	"startOffset":       kw(gLength),
	"textLength":        kw(gLength),
	"stroke-width":      kw(gLength),
	"stroke-dashoffset": kw(gLength),
	"font-size":         kw(gLength, fontSizeKeywords...),
	"letter-spacing":    kw(gLength, "normal"),
	"word-spacing":      kw(gLength, "normal"),
	"offset":            kw(gLength),

	"opacity":           kw(gNumber),
	"fill-opacity":      kw(gNumber),
	"stroke-opacity":    kw(gNumber),
	"stop-opacity":      kw(gNumber),
	"flood-opacity":     kw(gNumber),
	"stroke-miterlimit": kw(gNumber),
	"pathLength":        kw(gNumber),
	"surfaceScale":      kw(gNumber),
	"specularConstant":  kw(gNumber),
	"specularExponent":  kw(gNumber),
	"diffuseConstant":   kw(gNumber),
	"numOctaves":        kw(gNumber),
	"seed":              kw(gNumber),
	"k1":                kw(gNumber),
	"k2":                kw(gNumber),
	"k3":                kw(gNumber),
	"k4":                kw(gNumber),

	"viewBox":          kw(gNumberList),
	"points":           kw(gNumberList),
	"stdDeviation":     kw(gNumberList),
	"baseFrequency":    kw(gNumberList),
	"kernelMatrix":     kw(gNumberList),
	"tableValues":      kw(gNumberList),
	"order":            kw(gNumberList),
	"stroke-dasharray": kw(gLengthList, "none"),

	"fill":           kw(gPaint),
	"stroke":         kw(gPaint),
	"color":          kw(gColor),
	"stop-color":     kw(gColor, "currentColor"),
	"flood-color":    kw(gColor, "currentColor"),
	"lighting-color": kw(gColor, "currentColor"),

	"clip-path":    kw(gFuncIRI),
	"mask":         kw(gFuncIRI),
	"filter":       kw(gFuncIRI),
	"marker-start": kw(gFuncIRI),
	"marker-mid":   kw(gFuncIRI),
	"marker-end":   kw(gFuncIRI),
	"marker":       kw(gFuncIRI),

	"href":       kw(gIRI),
	"xlink:href": kw(gIRI),

	"transform":         kw(gTransform),
	"gradientTransform": kw(gTransform),
	"patternTransform":  kw(gTransform),

	"d": kw(gPath),

	"fill-rule":                   kw(gKeyword, "nonzero", "evenodd"),
	"clip-rule":                   kw(gKeyword, "nonzero", "evenodd"),
	"stroke-linecap":              kw(gKeyword, "butt", "round", "square"),
	"stroke-linejoin":             kw(gKeyword, "miter", "miter-clip", "round", "bevel", "arcs"),
	"visibility":                  kw(gKeyword, "visible", "hidden", "collapse"),
	"display":                     kw(gKeyword, "inline", "block", "none", "list-item", "run-in", "compact", "marker", "table", "inline-table", "table-row-group", "table-header-group", "table-footer-group", "table-row", "table-column-group", "table-column", "table-cell", "table-caption", "inline-block", "flex", "grid", "contents"),
	"text-anchor":                 kw(gKeyword, "start", "middle", "end"),
	"font-style":                  kw(gKeyword, "normal", "italic", "oblique"),
	"font-variant":                kw(gKeyword, "normal", "small-caps"),
	"font-weight":                 kw(gKeyword, "normal", "bold", "bolder", "lighter", "100", "200", "300", "400", "500", "600", "700", "800", "900"),
	"overflow":                    kw(gKeyword, "visible", "hidden", "scroll", "auto"),
	"direction":                   kw(gKeyword, "ltr", "rtl"),
	"writing-mode":                kw(gKeyword, "lr-tb", "rl-tb", "tb-rl", "lr", "rl", "tb", "horizontal-tb", "vertical-rl", "vertical-lr"),
	"pointer-events":              kw(gKeyword, "visiblePainted", "visibleFill", "visibleStroke", "visible", "painted", "fill", "stroke", "all", "none", "bounding-box"),
	"shape-rendering":             kw(gKeyword, "auto", "optimizeSpeed", "crispEdges", "geometricPrecision"),
	"text-rendering":              kw(gKeyword, "auto", "optimizeSpeed", "optimizeLegibility", "geometricPrecision"),
	"image-rendering":             kw(gKeyword, "auto", "optimizeSpeed", "optimizeQuality"),
	"color-interpolation":         kw(gKeyword, "auto", "sRGB", "linearRGB"),
	"color-interpolation-filters": kw(gKeyword, "auto", "sRGB", "linearRGB"),
	"vector-effect":               kw(gKeyword, "none", "non-scaling-stroke"),
	"gradientUnits":               kw(gKeyword, unitsKeywords...),
	"patternUnits":                kw(gKeyword, unitsKeywords...),
	"patternContentUnits":         kw(gKeyword, unitsKeywords...),
	"clipPathUnits":               kw(gKeyword, unitsKeywords...),
	"maskUnits":                   kw(gKeyword, unitsKeywords...),
	"maskContentUnits":            kw(gKeyword, unitsKeywords...),
	"filterUnits":                 kw(gKeyword, unitsKeywords...),
	"primitiveUnits":              kw(gKeyword, unitsKeywords...),
	"markerUnits":                 kw(gKeyword, "strokeWidth", "userSpaceOnUse"),
	"spreadMethod":                kw(gKeyword, "pad", "reflect", "repeat"),
	"lengthAdjust":                kw(gKeyword, "spacing", "spacingAndGlyphs"),
	"xml:space":                   kw(gKeyword, "default", "preserve"),
}

// context-sensitive overrides, keyed by element then attribute
var elementGrammars = map[string]map[string]attrGrammar{
	"text": {
		"x":      kw(gLengthList),
		"y":      kw(gLengthList),
		"dx":     kw(gLengthList),
		"dy":     kw(gLengthList),
		"rotate": kw(gNumberList),
	},
	"tspan": {
		"x":      kw(gLengthList),
		"y":      kw(gLengthList),
		"dx":     kw(gLengthList),
		"dy":     kw(gLengthList),
		"rotate": kw(gNumberList),
	},
	"textPath": {
		"path": kw(gPath),
	},
	"feOffset": {
		"dx": kw(gNumber),
		"dy": kw(gNumber),
	},
	"feDisplacementMap": {
		"scale": kw(gNumber),
	},
}

func lookupGrammar(name, element string) attrGrammar {
	if m, ok := elementGrammars[element]; ok {
		if g, ok := m[name]; ok {
			return g
		}
	}
	return attrGrammars[name]
}

// KindOf returns the kind of Value that Parse produces for well-formed
// text of the named attribute on the given element. Keyword-valued
// alternatives (e.g. "none" for fill) are not reflected.
func KindOf(name, element string) Kind {
	return lookupGrammar(name, element).grammar.kind()
}

// Parse converts raw attribute text into a typed Value. Unknown
// attributes yield String values. Failures match ErrInvalidValueSyntax.
func Parse(name, element, raw string) (Value, error) {
	g := lookupGrammar(name, element)
	if g.grammar == gString {
		return String(raw), nil
	}

	t := trim(raw)
	if t == "inherit" || slices.Contains(g.keywords, t) {
		return Keyword(t), nil
	}

	v, err := parseGrammar(g.grammar, t)
	if err != nil {
		return nil, &SyntaxError{Attribute: name, Text: raw, Kind: g.grammar.kind(), Err: err}
	}
	return v, nil
}

func parseGrammar(g grammar, t string) (Value, error) {
	switch g {
	case gNumber:
		return ParseNumber(t)
	case gLength:
		return ParseLength(t)
	case gNumberList:
		return ParseNumberList(t)
	case gLengthList:
		return ParseLengthList(t)
	case gColor:
		if t == "currentColor" {
			return Keyword(t), nil
		}
		return ParseColor(t)
	case gPaint:
		return ParsePaint(t)
	case gFuncIRI:
		return ParseFuncIRI(t)
	case gIRI:
		return ParseIRI(t)
	case gTransform:
		return ParseTransform(t)
	case gPath:
		return ParsePath(t)
	case gKeyword:
		return nil, syntaxError(`unknown keyword %q`, t)
	}
	return String(t), nil
}
