package value_test

import (
	"testing"

	"github.com/lestrrat-go/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testcases := []struct {
		name    string
		element string
		raw     string
		kind    value.Kind
		text    string
	}{
		{name: "width", element: "rect", raw: "10", kind: value.KindLength, text: "10"},
		{name: "width", element: "rect", raw: " 50% ", kind: value.KindLength, text: "50%"},
		{name: "width", element: "rect", raw: "auto", kind: value.KindKeyword, text: "auto"},
		{name: "x", element: "rect", raw: "1.5mm", kind: value.KindLength, text: "1.5mm"},
		{name: "x", element: "text", raw: "10 20,30", kind: value.KindLengthList, text: "10 20 30"},
		{name: "opacity", element: "g", raw: ".5", kind: value.KindNumber, text: "0.5"},
		{name: "viewBox", element: "svg", raw: "0,0 100 100", kind: value.KindNumberList, text: "0 0 100 100"},
		{name: "fill", element: "rect", raw: "red", kind: value.KindColor, text: "#ff0000"},
		{name: "fill", element: "rect", raw: "#ABC", kind: value.KindColor, text: "#aabbcc"},
		{name: "fill", element: "rect", raw: "rgb(10%, 20, 30)", kind: value.KindColor, text: "#1a141e"},
		{name: "fill", element: "rect", raw: "none", kind: value.KindKeyword, text: "none"},
		{name: "fill", element: "rect", raw: "inherit", kind: value.KindKeyword, text: "inherit"},
		{name: "fill", element: "rect", raw: "url(#grad) red", kind: value.KindReference, text: "url(#grad) #ff0000"},
		{name: "fill", element: "rect", raw: "url(other.svg#x) red", kind: value.KindString, text: "url(other.svg#x) red"},
		{name: "fill", element: "rect", raw: "url('#grad')", kind: value.KindReference, text: "url(#grad)"},
		{name: "clip-path", element: "g", raw: "url(#clip)", kind: value.KindReference, text: "url(#clip)"},
		{name: "xlink:href", element: "use", raw: "#sym", kind: value.KindReference, text: "#sym"},
		{name: "href", element: "image", raw: "image.png", kind: value.KindString, text: "image.png"},
		{name: "fill-rule", element: "path", raw: "evenodd", kind: value.KindKeyword, text: "evenodd"},
		{name: "transform", element: "g", raw: "translate(10) rotate(45,5,5)", kind: value.KindTransform, text: "translate(10) rotate(45 5 5)"},
		{name: "d", element: "path", raw: "M10,20L30 40 50 60z", kind: value.KindPath, text: "M 10 20 L 30 40 L 50 60 z"},
		{name: "class", element: "rect", raw: " a  b ", kind: value.KindString, text: " a  b "},
		{name: "stroke-dasharray", element: "rect", raw: "5, 10", kind: value.KindLengthList, text: "5 10"},
		{name: "stop-color", element: "stop", raw: "rgba(0,0,0,0.5)", kind: value.KindColor, text: "rgba(0,0,0,0.5)"},
	}

	for _, tc := range testcases {
		t.Run(tc.name+"="+tc.raw, func(t *testing.T) {
			v, err := value.Parse(tc.name, tc.element, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind(), "kind")
			assert.Equal(t, tc.text, v.String(), "canonical text")

			again, err := value.Parse(tc.name, tc.element, v.String())
			require.NoError(t, err, "canonical text parses again")
			assert.True(t, value.Equal(v, again), "canonical text round-trips")
		})
	}
}

func TestParseErrors(t *testing.T) {
	testcases := []struct {
		name string
		raw  string
	}{
		{name: "width", raw: "abc"},
		{name: "width", raw: "10qq"},
		{name: "opacity", raw: "1 2"},
		{name: "fill", raw: "notacolor"},
		{name: "fill", raw: "#12"},
		{name: "fill-rule", raw: "sideways"},
		{name: "transform", raw: "rotate(1 2)"},
		{name: "transform", raw: "spin(4)"},
		{name: "d", raw: "L 10 10"},
		{name: "d", raw: "M 10"},
		{name: "viewBox", raw: "0 0 10,"},
		{name: "clip-path", raw: "url(#a"},
	}

	for _, tc := range testcases {
		t.Run(tc.name+"="+tc.raw, func(t *testing.T) {
			_, err := value.Parse(tc.name, "rect", tc.raw)
			require.Error(t, err)
			require.ErrorIs(t, err, value.ErrInvalidValueSyntax)

			var serr *value.SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.name, serr.Attribute)
			assert.Equal(t, tc.raw, serr.Text)
		})
	}
}

func TestPrecision(t *testing.T) {
	l, err := value.ParseLength("1.23456789px")
	require.NoError(t, err)
	assert.Equal(t, "1.23456789px", value.Format(l, -1))
	assert.Equal(t, "1.235px", value.Format(l, 3))
	assert.Equal(t, "1px", value.Format(value.Length{Number: 1.0001, Unit: value.UnitPx}, 2))
	assert.Equal(t, "0", value.FormatNumber(-0.0001, 2))
}

func TestTransformMatrix(t *testing.T) {
	tr, err := value.ParseTransform("translate(10 20) scale(2)")
	require.NoError(t, err)
	m := tr.Matrix()
	assert.Equal(t, value.Matrix{A: 2, D: 2, E: 10, F: 20}, m)

	x, y := m.Apply(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 22.0, y)

	tr, err = value.ParseTransform("rotate(90 10 10)")
	require.NoError(t, err)
	x, y = tr.Matrix().Apply(20, 10)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)

	tr, err = value.ParseTransform("matrix(1,0,0,1,5,6)")
	require.NoError(t, err)
	assert.Equal(t, value.Matrix{A: 1, D: 1, E: 5, F: 6}, tr.Matrix())
}

func TestPath(t *testing.T) {
	p, err := value.ParsePath("m1 2 3 4 a5 5 0 1 0 10 10 h1v-1 Q1,2,3,4 Z")
	require.NoError(t, err)
	require.Len(t, p, 7)

	assert.Equal(t, value.PathMove, p[0].Type())
	assert.False(t, p[0].Absolute())
	assert.Equal(t, byte('l'), p[1].Command, "implicit lineto after moveto")
	assert.Equal(t, value.PathArc, p[2].Type())
	assert.Equal(t, []float64{5, 5, 0, 1, 0, 10, 10}, p[2].Args)
	assert.Equal(t, value.PathLine, p[3].Type())
	assert.Equal(t, value.PathLine, p[4].Type())
	assert.Equal(t, value.PathCurve, p[5].Type())
	assert.True(t, p[5].Absolute())
	assert.Equal(t, value.PathClose, p[6].Type())
}

func TestCompactArcFlags(t *testing.T) {
	p, err := value.ParsePath("M0 0A10 10 0 0110 10")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, []float64{10, 10, 0, 0, 1, 10, 10}, p[1].Args)
	assert.Equal(t, "M 0 0 A 10 10 0 0 1 10 10", p.String())
}

func TestColor(t *testing.T) {
	c, err := value.ParseColor("#ff000080")
	require.NoError(t, err)
	assert.True(t, c.HasAlpha)
	assert.InDelta(t, 0.5, c.A, 0.01)

	again, err := value.ParseColor(c.String())
	require.NoError(t, err)
	assert.True(t, value.Equal(c, again))

	c, err = value.ParseColor("CornflowerBlue")
	require.NoError(t, err)
	assert.Equal(t, value.RGB(100, 149, 237), c)

	c, err = value.ParseColor("transparent")
	require.NoError(t, err)
	assert.Equal(t, "rgba(0,0,0,0)", c.String())
}

func TestEqual(t *testing.T) {
	a, _ := value.Parse("fill", "rect", "red")
	b, _ := value.Parse("fill", "rect", "#f00")
	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, value.String("#ff0000")), "kinds differ")
	assert.True(t, value.Equal(nil, nil))
	assert.False(t, value.Equal(a, nil))
}
