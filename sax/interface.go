// Package sax defines the markup-event contract between an event
// source (a tokenizer) and a consumer such as the document builder.
package sax

import (
	"context"
)

// DocumentLocator reports the source position of the event currently
// being delivered.
type DocumentLocator interface {
	LineNumber() int
	ColumnNumber() int
}

type SetDocumentLocatorFunc func(context.Context, DocumentLocator) error
type StartDocumentFunc func(context.Context) error
type EndDocumentFunc func(context.Context) error
type StartElementFunc func(context.Context, ParsedElement) error
type EndElementFunc func(context.Context, string) error
type CharactersFunc func(context.Context, []byte) error
type CommentFunc func(context.Context, []byte) error
type ProcessingInstructionFunc func(context.Context, string, string) error

// Handler receives markup events in document order. Returning an error
// from any callback aborts the stream.
type Handler interface {
	SetDocumentLocator(context.Context, DocumentLocator) error
	StartDocument(context.Context) error
	EndDocument(context.Context) error
	StartElement(context.Context, ParsedElement) error
	EndElement(context.Context, string) error
	Characters(context.Context, []byte) error
	Comment(context.Context, []byte) error
	ProcessingInstruction(context.Context, string, string) error
}

// Source produces events into a Handler. Sources are forward-only.
type Source interface {
	Parse(context.Context, Handler) error
}

type ParsedElement interface {
	Prefix() string
	LocalName() string
	Name() string
	Attributes() []ParsedAttribute
}

type ParsedAttribute interface {
	Prefix() string
	LocalName() string
	Name() string
	Value() string
}

// SAX2 is a callback based Handler. Unset callbacks are no-ops.
type SAX2 struct {
	SetDocumentLocatorHandler    SetDocumentLocatorFunc
	StartDocumentHandler         StartDocumentFunc
	EndDocumentHandler           EndDocumentFunc
	StartElementHandler          StartElementFunc
	EndElementHandler            EndElementFunc
	CharactersHandler            CharactersFunc
	CommentHandler               CommentFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
}
