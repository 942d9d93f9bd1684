package svgdom

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrStaleHandle       = errors.New("stale handle")
	ErrHierarchy         = errors.New("operation would break the tree hierarchy")
	ErrNotElement        = errors.New("node is not an element")
	ErrNotCharacterData  = errors.New("node has no character data")
	ErrNoRoot            = errors.New("document has no root element")
	ErrElementMustHaveID = errors.New("element must have an id")
	ErrElementCrosslink  = errors.New("elements would reference each other")
)

// StaleHandleError is returned when a handle designates a removed node.
type StaleHandleError struct {
	Handle Handle
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("stale handle %s", e.Handle)
}

func (e *StaleHandleError) Is(target error) bool {
	return target == ErrStaleHandle
}

// MalformedDocumentError is a fatal build error with the source
// position of the offending event, when known.
type MalformedDocumentError struct {
	Line   int
	Column int
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("malformed document: %s", e.Err)
	}
	return fmt.Sprintf("malformed document at line %d, column %d: %s", e.Line, e.Column, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}
