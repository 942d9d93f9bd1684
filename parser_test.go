package svgdom_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/lestrrat-go/svgdom"
	"github.com/lestrrat-go/svgdom/sax"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/stretchr/testify/require"
)

func TestBuildNodeCount(t *testing.T) {
	events := sax.Events{
		sax.Open("svg", sax.Attr("width", "100")),
		sax.Open("g"),
		sax.Open("rect", sax.Attr("fill", "red")),
		sax.Close(),
		sax.Open("circle"),
		sax.Close(),
		sax.Close(),
		sax.Open("defs"),
		sax.Close(),
		sax.Close(),
	}
	var opens int
	for _, ev := range events {
		if ev.Type == sax.OpenEvent {
			opens++
		}
	}

	doc, err := svgdom.Build(context.Background(), events)
	require.NoError(t, err)
	require.Equal(t, opens, doc.Len())

	var elements int
	for range doc.Elements() {
		elements++
	}
	require.Equal(t, opens, elements)
}

func TestBuildStructuralErrors(t *testing.T) {
	testcases := []struct {
		name   string
		events sax.Events
		err    error
	}{
		{
			name:   "no root",
			events: sax.Events{},
			err:    svgdom.ErrNoRoot,
		},
		{
			name:   "close with no open",
			events: sax.Events{sax.Open("svg"), sax.Close(), sax.Close()},
		},
		{
			name:   "second root",
			events: sax.Events{sax.Open("svg"), sax.Close(), sax.Open("svg"), sax.Close()},
		},
		{
			name:   "unclosed element",
			events: sax.Events{sax.Open("svg"), sax.Open("g"), sax.Close()},
		},
		{
			name:   "text outside root",
			events: sax.Events{sax.Text("hello"), sax.Open("svg"), sax.Close()},
		},
		{
			name:   "duplicate attribute",
			events: sax.Events{sax.Open("svg", sax.Attr("width", "1"), sax.Attr("width", "2")), sax.Close()},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svgdom.Build(context.Background(), tc.events)
			require.Error(t, err)
			var merr *svgdom.MalformedDocumentError
			require.ErrorAs(t, err, &merr)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}

	t.Run("lenient mode does not excuse structure", func(t *testing.T) {
		_, err := svgdom.Build(context.Background(), sax.Events{sax.Open("svg"), sax.Close(), sax.Close()}, svgdom.WithStrict(false))
		require.Error(t, err)
	})
}

func TestBuildLenientAndStrict(t *testing.T) {
	const src = `<svg xmlns="http://www.w3.org/2000/svg">
  <rect id="r" width="abc"/>
</svg>`

	t.Run("lenient", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx := svgdom.WithTraceLogger(context.Background(), logger)

		doc, err := svgdom.Parse(ctx, []byte(src))
		require.NoError(t, err)
		a, ok, err := doc.Attribute(byID(t, doc, "r"), "width")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, value.String("abc"), a.Value)
		if svgdom.TracingEnabled {
			require.Contains(t, buf.String(), "keeping unparsed attribute value")
		}
	})
	t.Run("strict", func(t *testing.T) {
		_, err := svgdom.Parse(context.Background(), []byte(src), svgdom.WithStrict(true))
		require.Error(t, err)
		require.ErrorIs(t, err, value.ErrInvalidValueSyntax)

		var merr *svgdom.MalformedDocumentError
		require.ErrorAs(t, err, &merr)
		require.Equal(t, 2, merr.Line)
	})
	t.Run("strict with positioned events", func(t *testing.T) {
		events := sax.Events{
			{Type: sax.OpenEvent, Element: sax.Element{Tag: "svg"}, Line: 1, Column: 1},
			{Type: sax.OpenEvent, Element: sax.Element{Tag: "rect", Attrs: []sax.Attribute{sax.Attr("x", "abc")}}, Line: 3, Column: 7},
			sax.Close(),
			sax.Close(),
		}
		_, err := svgdom.Build(context.Background(), events, svgdom.WithStrict(true))
		var merr *svgdom.MalformedDocumentError
		require.ErrorAs(t, err, &merr)
		require.Equal(t, 3, merr.Line)
		require.Equal(t, 7, merr.Column)
	})
}

func TestParseMarkup(t *testing.T) {
	t.Run("namespaces", func(t *testing.T) {
		const src = `<?xml version="1.0"?>
<!-- leading comment -->
<svg:svg xmlns:svg="http://www.w3.org/2000/svg" xmlns:l="http://www.w3.org/1999/xlink">
  <svg:use id="u" l:href="#u2"/>
  <!-- inner comment -->
</svg:svg>`
		doc := parse(t, src)
		tag, err := doc.Tag(doc.Root())
		require.NoError(t, err)
		require.Equal(t, "svg", tag)

		u := byID(t, doc, "u")
		a, ok, err := doc.Attribute(u, "xlink:href")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "#u2", a.Raw)

		children, err := doc.Children(doc.Root())
		require.NoError(t, err)
		require.Len(t, children, 2)
		kind, err := doc.Kind(children[1])
		require.NoError(t, err)
		require.Equal(t, svgdom.CommentNode, kind)
		text, err := doc.Text(children[1])
		require.NoError(t, err)
		require.Equal(t, " inner comment ", text)
	})
	t.Run("encoding", func(t *testing.T) {
		src := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><svg xmlns="http://www.w3.org/2000/svg"><text id="t">caf`), 0xE9)
		src = append(src, []byte(`</text></svg>`)...)
		doc := parse(t, string(src))
		content, err := doc.TextContent(byID(t, doc, "t"))
		require.NoError(t, err)
		require.Equal(t, "café", content)
	})
	t.Run("entities", func(t *testing.T) {
		doc := parse(t, `<svg xmlns="http://www.w3.org/2000/svg"><text id="t">a &amp; b&nbsp;c</text></svg>`)
		content, err := doc.TextContent(byID(t, doc, "t"))
		require.NoError(t, err)
		require.Equal(t, "a & b\u00a0c", content)
	})
	t.Run("syntax error", func(t *testing.T) {
		_, err := svgdom.Parse(context.Background(), []byte("<svg>\n<g></svg>"))
		var merr *svgdom.MalformedDocumentError
		require.ErrorAs(t, err, &merr)
		require.Equal(t, 2, merr.Line)
	})
	t.Run("recover", func(t *testing.T) {
		doc, err := svgdom.Parse(context.Background(), []byte(`<svg><g><rect></svg>`), svgdom.WithRecover(true))
		require.NoError(t, err)
		require.Equal(t, 3, doc.Len())
	})
	t.Run("reader", func(t *testing.T) {
		doc, err := svgdom.ParseReader(context.Background(), strings.NewReader(`<svg><rect/></svg>`))
		require.NoError(t, err)
		require.Equal(t, 2, doc.Len())
	})
}
