package markup_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lestrrat-go/svgdom/markup"
	"github.com/lestrrat-go/svgdom/sax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sax.SAX2
	events []string
}

func newRecorder() *recorder {
	r := &recorder{}
	r.StartElementHandler = func(_ context.Context, elem sax.ParsedElement) error {
		var attrs []string
		for _, a := range elem.Attributes() {
			attrs = append(attrs, a.Name()+"="+a.Value())
		}
		r.events = append(r.events, "<"+elem.Name()+" "+strings.Join(attrs, " ")+">")
		return nil
	}
	r.EndElementHandler = func(_ context.Context, name string) error {
		r.events = append(r.events, "</"+name+">")
		return nil
	}
	r.CharactersHandler = func(_ context.Context, data []byte) error {
		r.events = append(r.events, "text:"+string(data))
		return nil
	}
	r.CommentHandler = func(_ context.Context, data []byte) error {
		r.events = append(r.events, "comment:"+string(data))
		return nil
	}
	return r
}

func TestParse(t *testing.T) {
	const src = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><!--c--><use xlink:href="#a" xml:space="preserve"/>a&amp;b</svg>`

	r := newRecorder()
	require.NoError(t, markup.NewBytes([]byte(src)).Parse(context.Background(), r))
	assert.Equal(t, []string{
		"text:\n",
		"<svg xmlns=http://www.w3.org/2000/svg xmlns:xlink=http://www.w3.org/1999/xlink>",
		"comment:c",
		"<use xlink:href=#a xml:space=preserve>",
		"</use>",
		"text:a&b",
		"</svg>",
	}, r.events)
}

func TestCustomPrefix(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:l="http://www.w3.org/1999/xlink" xmlns:ink="urn:ink"><g ink:label="x" l:title="t"/></svg>`

	r := newRecorder()
	require.NoError(t, markup.NewBytes([]byte(src)).Parse(context.Background(), r))
	assert.Contains(t, r.events, "<g ink:label=x xlink:title=t>")
}

func TestSyntaxError(t *testing.T) {
	const src = "<svg>\n<g>\n</svg>"
	err := markup.NewBytes([]byte(src)).Parse(context.Background(), newRecorder())
	require.Error(t, err)

	var serr *markup.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 3, serr.Line)
}

func TestRecover(t *testing.T) {
	const src = "<svg><g></svg>"
	r := newRecorder()
	require.NoError(t, markup.NewBytes([]byte(src), markup.WithRecover(true)).Parse(context.Background(), r))
	assert.Equal(t, "<svg >", r.events[0])
}
