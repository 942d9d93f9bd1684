package svgdom

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identStrict struct{}
type identStylesheet struct{}
type identTemplatePrecedence struct{}
type identWhitespace struct{}
type identRecover struct{}

// DocumentOption configures a Document. Every DocumentOption is also
// accepted by the builder.
type DocumentOption interface {
	BuildOption
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}
func (*documentOption) buildOption()    {}

// BuildOption configures Parse, ParseReader and Build.
type BuildOption interface {
	Option
	buildOption()
}

type buildOption struct{ Option }

func (*buildOption) buildOption() {}

// WithStrict makes unparseable attribute values fatal. In the default
// lenient mode they are stored as literal strings.
func WithStrict(v bool) DocumentOption {
	return &documentOption{option.New(identStrict{}, v)}
}

// WithStylesheet adds an external stylesheet. External sheets precede
// the document's <style> elements in source order.
func WithStylesheet(v string) DocumentOption {
	return &documentOption{option.New(identStylesheet{}, v)}
}

// WithTemplatePrecedence selects which attributes win when a <use>
// element and the content it instantiates both set them.
func WithTemplatePrecedence(v TemplatePrecedence) DocumentOption {
	return &documentOption{option.New(identTemplatePrecedence{}, v)}
}

// WithWhitespaceNormalization controls xml:space processing of text
// content after the tree is built. Enabled by default.
func WithWhitespaceNormalization(v bool) BuildOption {
	return &buildOption{option.New(identWhitespace{}, v)}
}

// WithRecover lets the markup tokenizer recover from unclosed and
// mismatched tags. It only applies to Parse and ParseReader.
func WithRecover(v bool) BuildOption {
	return &buildOption{option.New(identRecover{}, v)}
}
