package svgdom_test

import (
	"context"
	"testing"

	"github.com/lestrrat-go/svgdom"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string, options ...svgdom.BuildOption) *svgdom.Document {
	t.Helper()
	doc, err := svgdom.Parse(context.Background(), []byte(src), options...)
	require.NoError(t, err, "Parse should succeed for %q", src)
	return doc
}

func byID(t *testing.T, doc *svgdom.Document, id string) svgdom.Handle {
	t.Helper()
	h, ok := doc.LookupID(id)
	require.True(t, ok, "element %q exists", id)
	return h
}

func resolved(t *testing.T, doc *svgdom.Document, h svgdom.Handle, name string) svgdom.Attribute {
	t.Helper()
	a, ok, err := doc.ResolvedAttribute(h, name)
	require.NoError(t, err)
	require.True(t, ok, "%s is resolved", name)
	return a
}

func requireColor(t *testing.T, expected value.Color, v value.Value) {
	t.Helper()
	require.True(t, value.Equal(expected, v), "expected %s, got %v", expected, v)
}

var (
	red   = value.RGB(255, 0, 0)
	green = value.RGB(0, 128, 0)
	blue  = value.RGB(0, 0, 255)
	black = value.RGB(0, 0, 0)
)

func TestCascadePrecedence(t *testing.T) {
	testcases := []struct {
		name       string
		style      string
		attrs      string
		expected   value.Color
		provenance svgdom.Provenance
	}{
		{
			name:       "presentation attribute",
			attrs:      `fill="red"`,
			expected:   red,
			provenance: svgdom.Presentation,
		},
		{
			name:       "stylesheet beats presentation attribute",
			style:      `rect { fill: blue }`,
			attrs:      `fill="red"`,
			expected:   blue,
			provenance: svgdom.StylesheetRule,
		},
		{
			name:       "later rule wins on equal specificity",
			style:      `.a { fill: red } .b { fill: blue }`,
			attrs:      `class="a b"`,
			expected:   blue,
			provenance: svgdom.StylesheetRule,
		},
		{
			name:       "more specific rule wins over later rule",
			style:      `#r { fill: green } rect { fill: blue }`,
			expected:   green,
			provenance: svgdom.StylesheetRule,
		},
		{
			name:       "inline style beats stylesheet",
			style:      `#r { fill: blue }`,
			attrs:      `fill="red" style="fill: green"`,
			expected:   green,
			provenance: svgdom.InlineStyle,
		},
		{
			name:       "important stylesheet declaration beats inline style",
			style:      `rect { fill: blue !important }`,
			attrs:      `style="fill: green"`,
			expected:   blue,
			provenance: svgdom.StylesheetRule,
		},
		{
			name:       "important inline style beats important stylesheet declaration",
			style:      `#r { fill: blue !important }`,
			attrs:      `style="fill: green !important"`,
			expected:   green,
			provenance: svgdom.InlineStyle,
		},
		{
			name:       "invalid declarations are ignored",
			style:      `rect { fill: notacolor }`,
			attrs:      `fill="red"`,
			expected:   red,
			provenance: svgdom.Presentation,
		},
		{
			name:       "rules with bad selectors are ignored",
			style:      `rect:frobnicate { fill: blue } rect { fill: green }`,
			expected:   green,
			provenance: svgdom.StylesheetRule,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			src := `<svg xmlns="http://www.w3.org/2000/svg"><style>` + tc.style + `</style><rect id="r" ` + tc.attrs + `/></svg>`
			doc := parse(t, src)
			a := resolved(t, doc, byID(t, doc, "r"), "fill")
			requireColor(t, tc.expected, a.Value)
			require.Equal(t, tc.provenance, a.Provenance)
		})
	}
}

func TestExternalStylesheet(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg"><style>rect { stroke: red }</style><rect id="r"/></svg>`
	doc := parse(t, src, svgdom.WithStylesheet(`rect { fill: blue; stroke: blue }`))
	r := byID(t, doc, "r")
	requireColor(t, blue, resolved(t, doc, r, "fill").Value)
	// the embedded sheet comes later in source order
	requireColor(t, red, resolved(t, doc, r, "stroke").Value)
	require.Len(t, doc.Stylesheet(), 2)
}

func TestInheritance(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg">
  <g id="g" fill="red" stroke="blue" opacity="0.5">
    <rect id="r" stroke="inherit"/>
  </g>
</svg>`
	doc := parse(t, src)
	g := byID(t, doc, "g")
	r := byID(t, doc, "r")

	fill := resolved(t, doc, r, "fill")
	requireColor(t, red, fill.Value)
	require.Equal(t, svgdom.Inherited, fill.Provenance)
	require.Equal(t, g, fill.From)

	stroke := resolved(t, doc, r, "stroke")
	requireColor(t, blue, stroke.Value)
	require.Equal(t, svgdom.Inherited, stroke.Provenance)

	// opacity does not inherit
	_, ok, err := doc.ResolvedAttribute(r, "opacity")
	require.NoError(t, err)
	require.False(t, ok)
	v, ok, err := doc.ComputedValue(r, "opacity")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, value.Number(1), v)

	root := doc.Root()
	fill = resolved(t, doc, root, "fill")
	requireColor(t, black, fill.Value)
	require.Equal(t, svgdom.Default, fill.Provenance)
}

func TestResolveStylesIsIdempotent(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg">
  <style>.a { fill: blue } g > rect { stroke-width: 2 }</style>
  <g fill="red"><rect class="a" style="opacity: .5"/><circle/></g>
</svg>`
	doc := parse(t, src)

	snapshot := func() map[svgdom.Handle][]svgdom.Attribute {
		m := make(map[svgdom.Handle][]svgdom.Attribute)
		for h := range doc.Elements() {
			list, err := doc.ResolvedAttributes(h)
			require.NoError(t, err)
			m[h] = list
		}
		return m
	}

	first := snapshot()
	doc.ResolveStyles(context.Background())
	require.Equal(t, first, snapshot())
	doc.ResolveStyles(context.Background())
	require.Equal(t, first, snapshot())
}

func TestRestyleAfterEdit(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg"><g id="g" fill="red"><rect id="r"/></g><g id="h" fill="blue"/></svg>`
	doc := parse(t, src)
	r := byID(t, doc, "r")
	requireColor(t, red, resolved(t, doc, r, "fill").Value)

	require.NoError(t, doc.AppendChild(byID(t, doc, "h"), r))
	doc.ResolveStyles(context.Background())
	requireColor(t, blue, resolved(t, doc, r, "fill").Value)
}
