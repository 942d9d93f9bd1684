package s11n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterRange(t *testing.T) {
	assert.True(t, isInCharacterRange('\t'))
	assert.True(t, isInCharacterRange(0xD7FF))
	assert.False(t, isInCharacterRange(0xD800))
	assert.False(t, isInCharacterRange(0xDFFF))
	assert.True(t, isInCharacterRange(0xE000))
	assert.False(t, isInCharacterRange(0x01))
}
