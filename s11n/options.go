package s11n

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identIndent struct{}
type identAttributeOrder struct{}
type identResolvedStyles struct{}
type identPrecision struct{}
type identSingleQuote struct{}
type identHiddenAttributes struct{}
type identXMLDeclaration struct{}

// AttributeOrder selects how attributes of an element are ordered in
// the output.
type AttributeOrder int

const (
	// SourceOrder writes attributes in the order they were set.
	SourceOrder AttributeOrder = iota
	Alphabetical
)

// WithIndent sets the number of spaces per nesting level. Zero, the
// default, writes everything on one line.
func WithIndent(n int) Option {
	return option.New(identIndent{}, n)
}

func WithAttributeOrder(v AttributeOrder) Option {
	return option.New(identAttributeOrder{}, v)
}

// WithResolvedStyles writes the result of the style cascade as
// presentation attributes, and drops style attributes and <style>
// elements.
func WithResolvedStyles(v bool) Option {
	return option.New(identResolvedStyles{}, v)
}

// WithPrecision sets the maximum number of decimals written for
// numbers. A negative precision, the default, writes the shortest
// exact representation.
func WithPrecision(n int) Option {
	return option.New(identPrecision{}, n)
}

// WithSingleQuote quotes attribute values with ' instead of ".
func WithSingleQuote(v bool) Option {
	return option.New(identSingleQuote{}, v)
}

// WithHiddenAttributes writes attributes marked hidden.
func WithHiddenAttributes(v bool) Option {
	return option.New(identHiddenAttributes{}, v)
}

// WithXMLDeclaration starts the output with an XML declaration.
func WithXMLDeclaration(v bool) Option {
	return option.New(identXMLDeclaration{}, v)
}
