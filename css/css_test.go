package css_test

import (
	"testing"

	"github.com/lestrrat-go/svgdom/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheet(t *testing.T) {
	sheet := css.NewStylesheet()
	require.NoError(t, sheet.Append(`rect, .a { fill: blue; stroke: red !important }`, css.OriginExternal))
	require.NoError(t, sheet.Append(`
@media print { rect { fill: black } }
#x { opacity: 0.5 }
`, css.OriginEmbedded))

	rules := sheet.Rules()
	require.Len(t, rules, 3)

	assert.Equal(t, "rect", rules[0].Selector)
	assert.Equal(t, ".a", rules[1].Selector)
	assert.Equal(t, rules[0].Order, rules[1].Order, "grouped selectors share order")
	assert.Equal(t, css.OriginExternal, rules[0].Origin)

	require.Len(t, rules[0].Declarations, 2)
	assert.Equal(t, css.Declaration{Property: "fill", Value: "blue"}, rules[0].Declarations[0])
	assert.Equal(t, css.Declaration{Property: "stroke", Value: "red", Important: true}, rules[0].Declarations[1])

	assert.Equal(t, "#x", rules[2].Selector)
	assert.Equal(t, css.OriginEmbedded, rules[2].Origin)
	assert.Greater(t, rules[2].Order, rules[0].Order)
}

func TestParseInline(t *testing.T) {
	decls, err := css.ParseInline(`fill:green; stroke-width: 2 !important`)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "fill", decls[0].Property)
	assert.Equal(t, "green", decls[0].Value)
	assert.True(t, decls[1].Important)

	decls, err = css.ParseInline(`fill:green`)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "green", decls[0].Value)

	decls, err = css.ParseInline(`opacity: 0.5;`)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "0.5", decls[0].Value)

	decls, err = css.ParseInline("   ")
	require.NoError(t, err)
	assert.Empty(t, decls)
}
