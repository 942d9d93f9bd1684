package svgdom

import (
	"context"
	"io"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/markup"
	"github.com/lestrrat-go/svgdom/sax"
	"github.com/pkg/errors"
)

type buildConfig struct {
	whitespace bool
	recover    bool
}

func newDocumentFromOptions(options []BuildOption) (*Document, buildConfig) {
	cfg := buildConfig{whitespace: true}
	d := NewDocument()
	for _, o := range options {
		if d.applyOption(o) {
			continue
		}
		switch o.Ident() {
		case identWhitespace{}:
			cfg.whitespace = o.Value().(bool)
		case identRecover{}:
			cfg.recover = o.Value().(bool)
		}
	}
	return d, cfg
}

// Parse builds a Document from SVG markup.
func Parse(ctx context.Context, data []byte, options ...BuildOption) (*Document, error) {
	d, cfg := newDocumentFromOptions(options)
	return d.build(ctx, markup.NewBytes(data, markup.WithRecover(cfg.recover)), cfg)
}

// ParseReader builds a Document from SVG markup read from r.
func ParseReader(ctx context.Context, r io.Reader, options ...BuildOption) (*Document, error) {
	d, cfg := newDocumentFromOptions(options)
	return d.build(ctx, markup.New(r, markup.WithRecover(cfg.recover)), cfg)
}

// Build consumes the events of src into a new Document, then resolves
// styles and references. Any structural problem in the event stream
// fails the build with a *MalformedDocumentError; so does an attribute
// value that does not parse when WithStrict is given.
func Build(ctx context.Context, src sax.Source, options ...BuildOption) (*Document, error) {
	d, cfg := newDocumentFromOptions(options)
	return d.build(ctx, src, cfg)
}

func (d *Document) build(ctx context.Context, src sax.Source, cfg buildConfig) (*Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if err := src.Parse(ctx, NewTreeBuilder(d)); err != nil {
		var merr *MalformedDocumentError
		if errors.As(err, &merr) {
			return nil, merr
		}
		var serr *markup.SyntaxError
		if errors.As(err, &serr) {
			return nil, &MalformedDocumentError{Line: serr.Line, Column: serr.Column, Err: serr.Err}
		}
		return nil, errors.Wrap(err, `failed to build document`)
	}

	if cfg.whitespace {
		d.NormalizeWhitespace()
	}
	d.Resolve(ctx)
	return d, nil
}

// Resolve runs ResolveStyles then ResolveLinks. Call it after editing
// the tree to bring resolved attributes and references up to date.
func (d *Document) Resolve(ctx context.Context) {
	d.ResolveStyles(ctx)
	d.ResolveLinks(ctx)
}
