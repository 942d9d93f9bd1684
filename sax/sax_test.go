package sax_test

import (
	"context"
	"testing"

	"github.com/lestrrat-go/svgdom/sax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsReplay(t *testing.T) {
	var log []string
	h := sax.New()
	h.StartElementHandler = func(_ context.Context, elem sax.ParsedElement) error {
		log = append(log, "open:"+elem.Name())
		for _, a := range elem.Attributes() {
			log = append(log, "attr:"+a.Prefix()+"|"+a.LocalName()+"="+a.Value())
		}
		return nil
	}
	h.EndElementHandler = func(_ context.Context, name string) error {
		log = append(log, "close:"+name)
		return nil
	}
	h.CharactersHandler = func(_ context.Context, data []byte) error {
		log = append(log, "text:"+string(data))
		return nil
	}
	h.CommentHandler = func(_ context.Context, data []byte) error {
		log = append(log, "comment:"+string(data))
		return nil
	}

	evs := sax.Events{
		sax.Open("svg"),
		sax.Open("use", sax.Attr("xlink:href", "#a")),
		sax.Close(),
		sax.Text("hi"),
		sax.CommentText("note"),
		sax.Close(),
	}
	require.NoError(t, evs.Parse(context.Background(), h))
	assert.Equal(t, []string{
		"open:svg",
		"open:use",
		"attr:xlink|href=#a",
		"close:use",
		"text:hi",
		"comment:note",
		"close:svg",
	}, log)
}
