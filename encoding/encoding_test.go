package encoding_test

import (
	"io"
	"strings"
	"testing"

	"github.com/lestrrat-go/svgdom/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, label := range []string{"UTF-8", "iso-8859-1", "Shift_JIS", "windows-1251", "cp866"} {
		t.Run(label, func(t *testing.T) {
			assert.NotNil(t, encoding.Load(label))
		})
	}
	assert.Nil(t, encoding.Load("no-such-charset"))
}

func TestNewReader(t *testing.T) {
	r, err := encoding.NewReader("iso-8859-1", strings.NewReader("caf\xe9"))
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(b))

	_, err = encoding.NewReader("no-such-charset", strings.NewReader(""))
	require.ErrorIs(t, err, encoding.ErrUnknownEncoding)
}
