package sax

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Attribute is a plain ParsedAttribute. Name may carry a prefix,
// as in "xlink:href".
type Attribute struct {
	Key string
	Val string
}

func (a Attribute) Name() string  { return a.Key }
func (a Attribute) Value() string { return a.Val }

func (a Attribute) Prefix() string {
	if i := strings.IndexByte(a.Key, ':'); i > 0 {
		return a.Key[:i]
	}
	return ""
}

func (a Attribute) LocalName() string {
	if i := strings.IndexByte(a.Key, ':'); i > 0 {
		return a.Key[i+1:]
	}
	return a.Key
}

// Element is a plain ParsedElement.
type Element struct {
	Tag   string
	Attrs []Attribute
}

func (e Element) Name() string { return e.Tag }

func (e Element) Prefix() string {
	return Attribute{Key: e.Tag}.Prefix()
}

func (e Element) LocalName() string {
	return Attribute{Key: e.Tag}.LocalName()
}

func (e Element) Attributes() []ParsedAttribute {
	list := make([]ParsedAttribute, len(e.Attrs))
	for i, a := range e.Attrs {
		list[i] = a
	}
	return list
}

type EventType int

const (
	OpenEvent EventType = iota
	TextEvent
	CommentEvent
	CloseEvent
)

// Event is one recorded markup event. Line and Column are optional.
type Event struct {
	Type    EventType
	Element Element
	Data    string
	Line    int
	Column  int
}

func Open(tag string, attrs ...Attribute) Event {
	return Event{Type: OpenEvent, Element: Element{Tag: tag, Attrs: attrs}}
}

func Close() Event {
	return Event{Type: CloseEvent}
}

func Text(s string) Event {
	return Event{Type: TextEvent, Data: s}
}

func CommentText(s string) Event {
	return Event{Type: CommentEvent, Data: s}
}

// Attr is shorthand for building an Attribute.
func Attr(name, value string) Attribute {
	return Attribute{Key: name, Val: value}
}

// Events replays a fixed list of events. Close events carry no name;
// the matching open tag is supplied to the handler.
type Events []Event

type eventLocator struct {
	line, column int
}

func (l *eventLocator) LineNumber() int   { return l.line }
func (l *eventLocator) ColumnNumber() int { return l.column }

func (evs Events) Parse(ctx context.Context, h Handler) error {
	var loc eventLocator
	if err := h.SetDocumentLocator(ctx, &loc); err != nil {
		return err
	}
	if err := h.StartDocument(ctx); err != nil {
		return err
	}

	var open []string
	for i, ev := range evs {
		loc.line, loc.column = ev.Line, ev.Column
		var err error
		switch ev.Type {
		case OpenEvent:
			open = append(open, ev.Element.Tag)
			err = h.StartElement(ctx, ev.Element)
		case CloseEvent:
			name := ""
			if l := len(open); l > 0 {
				name = open[l-1]
				open = open[:l-1]
			}
			err = h.EndElement(ctx, name)
		case TextEvent:
			err = h.Characters(ctx, []byte(ev.Data))
		case CommentEvent:
			err = h.Comment(ctx, []byte(ev.Data))
		default:
			err = errors.Errorf(`unknown event type %d`, ev.Type)
		}
		if err != nil {
			return errors.Wrapf(err, `event #%d`, i)
		}
	}
	return h.EndDocument(ctx)
}
