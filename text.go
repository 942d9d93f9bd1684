package svgdom

import (
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/internal/lexer"
)

// TextContent returns the concatenated content of the text nodes under
// h, in document order.
func (d *Document) TextContent(h Handle) (string, error) {
	if _, err := d.slot(h); err != nil {
		return "", err
	}
	var b strings.Builder
	d.preorder(h, func(n Handle) bool {
		if s := d.at(n); s.kind == TextNode {
			b.WriteString(s.data)
		}
		return true
	})
	return b.String(), nil
}

// NormalizeWhitespace applies xml:space processing to the document
// tree. Text content of text elements is collapsed the way a renderer
// lays it out, with the spaces between chunks kept on the outermost
// side. Whitespace-only text outside of text content is removed, and
// text nodes left empty are removed too.
func (d *Document) NormalizeWhitespace() {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	root := d.Root()
	if !root.IsValid() {
		return
	}
	var empty []Handle
	d.normalizeElement(root, false, &empty)
	for _, h := range empty {
		_ = d.Remove(h)
	}
}

type textChunk struct {
	node     Handle
	text     string
	depth    int
	preserve bool
}

func xmlSpace(s *slot, inherited bool) bool {
	if a, ok := s.attrs.Get("xml:space"); ok {
		switch strings.TrimSpace(a.Raw) {
		case "preserve":
			return true
		case "default":
			return false
		}
	}
	return inherited
}

func isRawTextElement(tag string) bool {
	return tag == "style" || tag == "script"
}

// isTextRoot reports whether h holds text content: a <text> element,
// or any element with text of its own.
func (d *Document) isTextRoot(s *slot) bool {
	if s.data == "text" {
		return true
	}
	if isRawTextElement(s.data) {
		return false
	}
	for _, c := range s.children {
		cs := d.at(c)
		if cs.kind == TextNode && !isBlank(cs.data) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !lexer.IsSpace(rune(s[i])) {
			return false
		}
	}
	return true
}

func (d *Document) normalizeElement(h Handle, preserve bool, empty *[]Handle) {
	s := d.at(h)
	preserve = xmlSpace(s, preserve)
	if isRawTextElement(s.data) {
		return
	}
	if d.isTextRoot(s) {
		var chunks []*textChunk
		d.collectChunks(h, preserve, 0, &chunks)
		collapseChunks(chunks)
		for _, c := range chunks {
			if c.text == "" {
				*empty = append(*empty, c.node)
				continue
			}
			d.at(c.node).data = c.text
		}
		return
	}
	for _, c := range s.children {
		cs := d.at(c)
		switch cs.kind {
		case TextNode:
			if isBlank(cs.data) {
				*empty = append(*empty, c)
			}
		case ElementNode:
			d.normalizeElement(c, preserve, empty)
		}
	}
}

func (d *Document) collectChunks(h Handle, preserve bool, depth int, chunks *[]*textChunk) {
	for _, c := range d.at(h).children {
		cs := d.at(c)
		switch cs.kind {
		case TextNode:
			*chunks = append(*chunks, &textChunk{node: c, text: cs.data, depth: depth, preserve: preserve})
		case ElementNode:
			d.collectChunks(c, xmlSpace(cs, preserve), depth+1, chunks)
		}
	}
}

func replaceNewlines(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if space {
				continue
			}
			space = true
		} else {
			space = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func collapseChunks(chunks []*textChunk) {
	var prev *textChunk
	for i, c := range chunks {
		c.text = replaceNewlines(c.text)
		if c.preserve {
			if c.text != "" {
				prev = c
			}
			continue
		}
		c.text = collapseSpaces(c.text)

		switch {
		case i == 0:
			c.text = strings.TrimPrefix(c.text, " ")
		case prev != nil && strings.HasSuffix(prev.text, " "):
			if !prev.preserve && prev.depth > c.depth {
				prev.text = strings.TrimSuffix(prev.text, " ")
				if !strings.HasPrefix(c.text, " ") {
					c.text = " " + c.text
				}
			} else {
				c.text = strings.TrimPrefix(c.text, " ")
			}
		}
		if c.text != "" {
			prev = c
		}
	}

	for i := len(chunks) - 1; i >= 0; i-- {
		c := chunks[i]
		if c.text == "" {
			continue
		}
		if !c.preserve {
			c.text = strings.TrimSuffix(c.text, " ")
		}
		break
	}
}
