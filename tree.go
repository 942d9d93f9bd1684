package svgdom

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/internal/stack"
	"github.com/lestrrat-go/svgdom/sax"
	"github.com/pkg/errors"
)

var (
	errUnbalancedClose = errors.New("close event with no matching open")
	errSecondRoot      = errors.New("more than one root element")
	errTextOutsideRoot = errors.New("character data outside of the root element")
	errUnclosed        = errors.New("unclosed element at end of document")
)

// TreeBuilder is a sax.Handler that assembles a Document from markup
// events. Attribute values are parsed as they arrive; in strict
// documents the first value that does not parse aborts the build.
type TreeBuilder struct {
	doc   *Document
	loc   sax.DocumentLocator
	open  stack.Stack[Handle]
	names stack.Stack[string]
}

func NewTreeBuilder(doc *Document) *TreeBuilder {
	return &TreeBuilder{doc: doc}
}

// Document returns the document being built.
func (t *TreeBuilder) Document() *Document {
	return t.doc
}

func (t *TreeBuilder) malformed(err error) error {
	merr := &MalformedDocumentError{Err: err}
	if t.loc != nil {
		merr.Line = t.loc.LineNumber()
		merr.Column = t.loc.ColumnNumber()
	}
	return merr
}

func (t *TreeBuilder) SetDocumentLocator(_ context.Context, loc sax.DocumentLocator) error {
	t.loc = loc
	return nil
}

func (t *TreeBuilder) StartDocument(_ context.Context) error {
	return nil
}

func (t *TreeBuilder) EndDocument(_ context.Context) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if l := t.names.Len(); l > 0 {
		name, _ := t.names.Top()
		return t.malformed(errors.Wrapf(errUnclosed, `<%s>`, name))
	}
	if !t.doc.Root().IsValid() {
		return t.malformed(ErrNoRoot)
	}
	return nil
}

func (t *TreeBuilder) StartElement(ctx context.Context, elem sax.ParsedElement) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
		pdebug.Printf("element %s", elem.Name())
	}

	d := t.doc
	parent, ok := t.open.Top()
	if !ok && d.Root().IsValid() {
		return t.malformed(errors.Wrapf(errSecondRoot, `<%s>`, elem.Name()))
	}

	h := d.CreateElement(elem.Name())
	s := d.at(h)
	for _, attr := range elem.Attributes() {
		name := attr.Name()
		a, err := d.parseAttribute(ctx, s.data, name, attr.Value())
		if err != nil {
			return t.malformed(errors.Wrapf(err, `<%s>`, elem.Name()))
		}
		if err := s.attrs.Add(name, a); err != nil {
			return t.malformed(errors.Wrapf(err, `attribute %q on <%s>`, name, elem.Name()))
		}
		if name == "id" {
			d.registerID(idOf(a), h)
		}
	}

	if ok {
		if err := d.AppendChild(parent, h); err != nil {
			return err
		}
	} else {
		d.root = h
	}
	t.open.Push(h)
	t.names.Push(elem.Name())
	return nil
}

func (t *TreeBuilder) EndElement(_ context.Context, name string) error {
	top, ok := t.names.Top()
	if !ok {
		return t.malformed(errors.Wrapf(errUnbalancedClose, `</%s>`, name))
	}
	if name != "" && name != top {
		return t.malformed(errors.Errorf(`</%s> does not close <%s>`, name, top))
	}
	t.open.Pop()
	t.names.Pop()
	return nil
}

func (t *TreeBuilder) Characters(_ context.Context, data []byte) error {
	parent, ok := t.open.Top()
	if !ok {
		if isBlank(string(data)) {
			return nil
		}
		return t.malformed(errTextOutsideRoot)
	}

	// adjacent character data is merged into a single text node
	ps := t.doc.at(parent)
	if l := len(ps.children); l > 0 {
		if last := t.doc.at(ps.children[l-1]); last.kind == TextNode {
			last.data += string(data)
			return nil
		}
	}
	return t.doc.AppendChild(parent, t.doc.CreateText(string(data)))
}

func (t *TreeBuilder) Comment(ctx context.Context, data []byte) error {
	parent, ok := t.open.Top()
	if !ok {
		getTraceLogFromContext(ctx).Debug("dropping comment outside of the root element")
		return nil
	}
	return t.doc.AppendChild(parent, t.doc.CreateComment(string(data)))
}

func (t *TreeBuilder) ProcessingInstruction(ctx context.Context, target, _ string) error {
	getTraceLogFromContext(ctx).Debug("dropping processing instruction", slog.String("target", target))
	return nil
}
