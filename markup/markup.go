// Package markup is a sax.Source backed by encoding/xml.
package markup

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"

	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/encoding"
	"github.com/lestrrat-go/svgdom/internal/stack/nsstack"
	"github.com/lestrrat-go/svgdom/sax"
	"github.com/pkg/errors"
)

const (
	NamespaceSVG   = "http://www.w3.org/2000/svg"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
)

// well-known namespaces are always written with these prefixes
var wellKnown = map[string]string{
	NamespaceSVG:   "",
	NamespaceXLink: "xlink",
	NamespaceXML:   "xml",
}

type Option = option.Interface

type identRecover struct{}

// WithRecover makes the tokenizer tolerate unclosed and mismatched
// tags the way HTML parsers do.
func WithRecover(v bool) Option {
	return option.New(identRecover{}, v)
}

// Parser reads XML from an io.Reader and reports it as sax events.
type Parser struct {
	src     io.Reader
	recover bool
}

func New(src io.Reader, options ...Option) *Parser {
	p := &Parser{src: src}
	for _, o := range options {
		switch o.Ident() {
		case identRecover{}:
			p.recover = o.Value().(bool)
		}
	}
	return p
}

func NewBytes(data []byte, options ...Option) *Parser {
	return New(bytes.NewReader(data), options...)
}

type locator struct {
	dec *xml.Decoder
}

func (l locator) LineNumber() int {
	line, _ := l.dec.InputPos()
	return line
}

func (l locator) ColumnNumber() int {
	_, col := l.dec.InputPos()
	return col
}

// SyntaxError is a tokenizer failure with its position.
type SyntaxError struct {
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	return e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (p *Parser) Parse(ctx context.Context, h sax.Handler) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	dec := xml.NewDecoder(p.src)
	dec.CharsetReader = encoding.NewReader
	dec.Entity = xml.HTMLEntity
	if p.recover {
		dec.Strict = false
		dec.AutoClose = xml.HTMLAutoClose
	}

	loc := locator{dec: dec}
	if err := h.SetDocumentLocator(ctx, loc); err != nil {
		return err
	}
	if err := h.StartDocument(ctx); err != nil {
		return err
	}

	ns := nsstack.New()
	var names []string
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			line, col := dec.InputPos()
			var serr *xml.SyntaxError
			if errors.As(err, &serr) {
				line = serr.Line
			}
			return &SyntaxError{Line: line, Column: col, Err: err}
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			depth := len(names)
			for _, a := range tok.Attr {
				switch {
				case a.Name.Space == "xmlns":
					ns.Push(depth, a.Name.Local, a.Value)
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					ns.Push(depth, "", a.Value)
				}
			}
			elem := sax.Element{Tag: qualify(ns, tok.Name)}
			for _, a := range tok.Attr {
				elem.Attrs = append(elem.Attrs, sax.Attr(attrName(ns, a.Name), a.Value))
			}
			names = append(names, elem.Tag)
			if err := h.StartElement(ctx, elem); err != nil {
				return err
			}
		case xml.EndElement:
			name := qualify(ns, tok.Name)
			if l := len(names); l > 0 {
				names = names[:l-1]
			}
			ns.PopDepth(len(names))
			if err := h.EndElement(ctx, name); err != nil {
				return err
			}
		case xml.CharData:
			if err := h.Characters(ctx, bytes.Clone(tok)); err != nil {
				return err
			}
		case xml.Comment:
			if err := h.Comment(ctx, bytes.Clone(tok)); err != nil {
				return err
			}
		case xml.ProcInst:
			if err := h.ProcessingInstruction(ctx, tok.Target, string(tok.Inst)); err != nil {
				return err
			}
		}
	}

	return h.EndDocument(ctx)
}

func prefixFor(ns *nsstack.Stack, space string) string {
	if space == "" {
		return ""
	}
	if p, ok := wellKnown[space]; ok {
		return p
	}
	if p, ok := ns.LookupURI(space); ok {
		return p
	}
	// undeclared prefixes are reported verbatim by encoding/xml
	return space
}

func qualify(ns *nsstack.Stack, name xml.Name) string {
	if p := prefixFor(ns, name.Space); p != "" {
		return p + ":" + name.Local
	}
	return name.Local
}

func attrName(ns *nsstack.Stack, name xml.Name) string {
	switch {
	case name.Space == "xmlns":
		return "xmlns:" + name.Local
	case name.Space == "" && name.Local == "xmlns":
		return "xmlns"
	}
	return qualify(ns, name)
}
