// Package s11n writes svgdom documents as SVG markup.
package s11n

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom"
	"github.com/lestrrat-go/svgdom/markup"
	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/pkg/errors"
)

type Dumper struct {
	indent      int
	order       AttributeOrder
	resolved    bool
	precision   int
	quote       byte
	hidden      bool
	declaration bool
	// set while dumping a document that uses xlink attributes
	xlink bool
}

func New(options ...Option) *Dumper {
	d := &Dumper{precision: -1, quote: '"'}
	for _, o := range options {
		switch o.Ident() {
		case identIndent{}:
			d.indent = max(o.Value().(int), 0)
		case identAttributeOrder{}:
			d.order = o.Value().(AttributeOrder)
		case identResolvedStyles{}:
			d.resolved = o.Value().(bool)
		case identPrecision{}:
			d.precision = o.Value().(int)
		case identSingleQuote{}:
			if o.Value().(bool) {
				d.quote = '\''
			} else {
				d.quote = '"'
			}
		case identHiddenAttributes{}:
			d.hidden = o.Value().(bool)
		case identXMLDeclaration{}:
			d.declaration = o.Value().(bool)
		}
	}
	return d
}

// Serialize writes doc to a string.
func Serialize(doc *svgdom.Document, options ...Option) (string, error) {
	var buf bytes.Buffer
	if err := New(options...).DumpDoc(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (d *Dumper) DumpDoc(out io.Writer, doc *svgdom.Document) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	root := doc.Root()
	if !root.IsValid() {
		return svgdom.ErrNoRoot
	}

	d.xlink = usesXLink(doc)
	if d.declaration {
		_, _ = io.WriteString(out, `<?xml version="1.0" encoding="UTF-8"?>`)
		if d.indent > 0 {
			_, _ = io.WriteString(out, "\n")
		}
	}
	if err := d.dumpNode(out, doc, root, 0, d.indent > 0); err != nil {
		return err
	}
	if d.indent > 0 {
		_, _ = io.WriteString(out, "\n")
	}
	return nil
}

// DumpNode writes the subtree rooted at h.
func (d *Dumper) DumpNode(out io.Writer, doc *svgdom.Document, h svgdom.Handle) error {
	return d.dumpNode(out, doc, h, 0, d.indent > 0)
}

func (d *Dumper) writeIndent(out io.Writer, depth int) {
	_, _ = io.WriteString(out, strings.Repeat(" ", depth*d.indent))
}

func (d *Dumper) dumpNode(out io.Writer, doc *svgdom.Document, h svgdom.Handle, depth int, pretty bool) error {
	kind, err := doc.Kind(h)
	if err != nil {
		return err
	}

	switch kind {
	case svgdom.TextNode:
		text, _ := doc.Text(h)
		return EscapeText(out, []byte(text), false)
	case svgdom.CommentNode:
		text, _ := doc.Text(h)
		_, _ = io.WriteString(out, "<!--")
		_, _ = io.WriteString(out, text)
		_, _ = io.WriteString(out, "-->")
		return nil
	}

	tag, err := doc.Tag(h)
	if err != nil {
		return err
	}

	_, _ = io.WriteString(out, "<")
	_, _ = io.WriteString(out, tag)
	attrs, err := d.attributes(doc, h)
	if err != nil {
		return errors.Wrapf(err, `failed to collect attributes of <%s>`, tag)
	}
	for _, a := range attrs {
		_, _ = io.WriteString(out, " ")
		_, _ = io.WriteString(out, a.name)
		_, _ = io.WriteString(out, "=")
		if err := d.writeQuoted(out, a.text); err != nil {
			return err
		}
	}

	children, err := doc.Children(h)
	if err != nil {
		return err
	}
	if d.resolved {
		children = slices.DeleteFunc(children, func(c svgdom.Handle) bool {
			t, err := doc.Tag(c)
			return err == nil && t == "style"
		})
	}
	if len(children) == 0 {
		_, _ = io.WriteString(out, "/>")
		return nil
	}
	_, _ = io.WriteString(out, ">")

	// text content is written inline so indentation does not leak into it
	inline := !pretty || tag == "text" || holdsText(doc, children)

	for _, c := range children {
		if !inline {
			_, _ = io.WriteString(out, "\n")
			d.writeIndent(out, depth+1)
		}
		if err := d.dumpNode(out, doc, c, depth+1, !inline); err != nil {
			return err
		}
	}
	if !inline {
		_, _ = io.WriteString(out, "\n")
		d.writeIndent(out, depth)
	}
	_, _ = io.WriteString(out, "</")
	_, _ = io.WriteString(out, tag)
	_, _ = io.WriteString(out, ">")
	return nil
}

// holdsText reports whether any of children is a text node.
func holdsText(doc *svgdom.Document, children []svgdom.Handle) bool {
	for _, c := range children {
		if k, _ := doc.Kind(c); k == svgdom.TextNode {
			return true
		}
	}
	return false
}

type attribute struct {
	name string
	text string
}

func (d *Dumper) format(v value.Value) string {
	return value.Format(v, d.precision)
}

// attributes lists what is written for element h. In resolved mode
// every specified property is written with its cascaded value.
func (d *Dumper) attributes(doc *svgdom.Document, h svgdom.Handle) ([]attribute, error) {
	specified, err := doc.Attributes(h)
	if err != nil {
		return nil, err
	}

	var resolved map[string]svgdom.Attribute
	if d.resolved {
		list, err := doc.ResolvedAttributes(h)
		if err != nil {
			return nil, err
		}
		resolved = make(map[string]svgdom.Attribute, len(list))
		for _, a := range list {
			if a.Provenance.Specified() {
				resolved[a.Name] = a
			}
		}
	}

	var attrs []attribute
	seen := make(map[string]struct{}, len(specified))
	for _, a := range specified {
		if a.Hidden && !d.hidden {
			continue
		}
		if d.resolved && a.Name == "style" {
			continue
		}
		v := a.Value
		if r, ok := resolved[a.Name]; ok {
			v = r.Value
		}
		seen[a.Name] = struct{}{}
		attrs = append(attrs, attribute{name: a.Name, text: d.format(v)})
	}

	if d.resolved {
		var extra []attribute
		for name, r := range resolved {
			if _, ok := seen[name]; ok || !schema.IsPresentation(name) {
				continue
			}
			seen[name] = struct{}{}
			extra = append(extra, attribute{name: name, text: d.format(r.Value)})
		}
		slices.SortFunc(extra, compareAttributes)
		attrs = append(attrs, extra...)
	}

	if h == doc.Root() {
		attrs = d.declareNamespaces(attrs, seen)
	}
	if d.order == Alphabetical {
		slices.SortStableFunc(attrs, compareAttributes)
	}
	return attrs, nil
}

func compareAttributes(a, b attribute) int {
	return strings.Compare(a.name, b.name)
}

// declareNamespaces adds the SVG namespace declaration, and the xlink
// one when xlink attributes are written, if the root does not carry
// them.
func (d *Dumper) declareNamespaces(attrs []attribute, seen map[string]struct{}) []attribute {
	var decls []attribute
	if _, ok := seen["xmlns"]; !ok {
		decls = append(decls, attribute{name: "xmlns", text: markup.NamespaceSVG})
	}
	if _, ok := seen["xmlns:xlink"]; !ok && d.xlink {
		decls = append(decls, attribute{name: "xmlns:xlink", text: markup.NamespaceXLink})
	}
	return append(decls, attrs...)
}

func usesXLink(doc *svgdom.Document) bool {
	for h := range doc.Elements() {
		attrs, _ := doc.Attributes(h)
		for _, a := range attrs {
			if strings.HasPrefix(a.Name, "xlink:") {
				return true
			}
		}
	}
	return false
}

func (d *Dumper) writeQuoted(out io.Writer, s string) error {
	q := []byte{d.quote}
	if _, err := out.Write(q); err != nil {
		return err
	}
	if err := EscapeAttrValue(out, []byte(s), d.quote); err != nil {
		return err
	}
	_, err := out.Write(q)
	return err
}
