package schema_test

import (
	"testing"

	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	assert.True(t, schema.IsPresentation("fill"))
	assert.False(t, schema.IsPresentation("width"))
	assert.True(t, schema.IsInherited("fill"))
	assert.False(t, schema.IsInherited("opacity"))

	assert.Equal(t, schema.LinkTemplate, schema.LinkKindOf("use", "xlink:href"))
	assert.Equal(t, schema.LinkHref, schema.LinkKindOf("linearGradient", "href"))
	assert.Equal(t, schema.LinkNavigation, schema.LinkKindOf("a", "href"))
	assert.Equal(t, "navigation", schema.LinkNavigation.String())
	assert.Equal(t, schema.LinkPaint, schema.LinkKindOf("rect", "stroke"))
	assert.Equal(t, schema.LinkNone, schema.LinkKindOf("rect", "width"))
}

func TestDefaultsParse(t *testing.T) {
	for _, name := range schema.Properties() {
		raw, ok := schema.Default(name)
		if !ok {
			continue
		}
		t.Run(name, func(t *testing.T) {
			_, err := value.Parse(name, "g", raw)
			require.NoError(t, err, "default value of %s parses", name)
		})
	}
}
