package value

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidValueSyntax is matched by every parse failure.
var ErrInvalidValueSyntax = errors.New("invalid value syntax")

// SyntaxError describes an attribute value that does not match the
// grammar expected for its attribute.
type SyntaxError struct {
	Attribute string
	Text      string
	Kind      Kind
	Err       error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s value for %q: %q", e.Kind, e.Attribute, e.Text)
	}
	return fmt.Sprintf("invalid %s value for %q: %q: %s", e.Kind, e.Attribute, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalidValueSyntax
}

func syntaxError(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidValueSyntax, format, args...)
}
