package svgdom

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/css"
	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/selector"
	"github.com/lestrrat-go/svgdom/value"
)

// ResolveStyles runs the style cascade over the document tree and
// replaces the resolved attribute set of every element. Specified
// attributes are not touched, and running it again on an unchanged
// tree produces the same result.
//
// From lowest to highest precedence, a property comes from: a
// presentation attribute, stylesheet rules (by specificity, then
// source order), the style attribute, !important stylesheet
// declarations, !important declarations in the style attribute.
// Inherited properties that are not set anywhere come from the parent.
func (d *Document) ResolveStyles(ctx context.Context) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	root := d.Root()
	if !root.IsValid() {
		return
	}

	tlog := getTraceLogFromContext(ctx)
	c := &cascade{
		doc:     d,
		tlog:    tlog,
		index:   selector.NewIndex[Handle](),
		matcher: selector.NewMatcher(),
	}
	c.rules = d.ingestStylesheets(ctx, c.matcher)

	d.preorder(root, func(h Handle) bool {
		s := d.at(h)
		switch s.kind {
		case ElementNode:
			attrs := make([]selector.Attr, 0, s.attrs.Len())
			for name, a := range s.attrs.Range() {
				attrs = append(attrs, selector.Attr{Name: name, Value: a.Raw})
			}
			c.index.AddElement(h, s.parent, s.data, attrs)
		case TextNode:
			c.index.AddText(s.parent, s.data)
		}
		return true
	})

	d.preorder(root, func(h Handle) bool {
		s := d.at(h)
		if s.kind != ElementNode {
			return true
		}
		var inherited map[string]*Attribute
		if s.parent.IsValid() {
			inherited = d.at(s.parent).resolved
		}
		s.resolved = inheritProperties(c.specified(h), inherited, s.parent)
		return true
	})

	tlog.Debug("resolved styles", slog.Int("rules", len(c.rules)), slog.Int("elements", c.index.Len()))
}

// ingestStylesheets collects the external sheets and the content of
// every <style> element, dropping rules whose selector does not parse.
func (d *Document) ingestStylesheets(ctx context.Context, m *selector.Matcher) []*css.Rule {
	tlog := getTraceLogFromContext(ctx)

	sheet := css.NewStylesheet()
	for _, text := range d.external {
		if err := sheet.Append(text, css.OriginExternal); err != nil {
			tlog.Warn("ignoring external stylesheet", slog.Any("error", err))
		}
	}
	for h := range d.Elements() {
		s := d.at(h)
		if s.data != "style" {
			continue
		}
		if typ, ok := s.attrs.Get("type"); ok && typ.Raw != "" && typ.Raw != "text/css" {
			continue
		}
		var buf strings.Builder
		for _, c := range s.children {
			if cs := d.at(c); cs.kind == TextNode {
				buf.WriteString(cs.data)
			}
		}
		if err := sheet.Append(buf.String(), css.OriginEmbedded); err != nil {
			tlog.Warn("ignoring <style> element", slog.String("node", h.String()), slog.Any("error", err))
		}
	}
	d.stylesheet = sheet

	rules := make([]*css.Rule, 0, sheet.Len())
	for _, r := range sheet.Rules() {
		if _, err := m.Compile(r.Selector); err != nil {
			tlog.Warn("ignoring rule", slog.String("selector", r.Selector), slog.Any("error", err))
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// Stylesheet returns the rules ingested by the last ResolveStyles.
func (d *Document) Stylesheet() []*css.Rule {
	return d.stylesheet.Rules()
}

type cascade struct {
	doc     *Document
	tlog    *slog.Logger
	rules   []*css.Rule
	index   *selector.Index[Handle]
	matcher *selector.Matcher
}

type ruleMatch struct {
	rule        *css.Rule
	specificity selector.Specificity
}

// specified computes the values set on h itself, before inheritance.
// "inherit" keywords are left in place.
func (c *cascade) specified(h Handle) map[string]*Attribute {
	s := c.doc.at(h)
	tag := s.data
	props := make(map[string]*Attribute)

	for name, a := range s.attrs.Range() {
		if !schema.IsPresentation(name) {
			continue
		}
		r := *a
		r.Provenance = Presentation
		r.Resolved = true
		r.Hidden = false
		props[name] = &r
	}

	var matches []ruleMatch
	for _, r := range c.rules {
		spec, ok, err := selector.Match(c.matcher, c.index, r.Selector, h)
		if err != nil || !ok {
			continue
		}
		matches = append(matches, ruleMatch{rule: r, specificity: spec})
	}
	slices.SortStableFunc(matches, func(a, b ruleMatch) int {
		if n := a.specificity.Compare(b.specificity); n != 0 {
			return n
		}
		return a.rule.Order - b.rule.Order
	})

	important := make(map[string]*Attribute)
	for _, m := range matches {
		for _, decl := range m.rule.Declarations {
			a := c.declaration(tag, decl, StylesheetRule)
			if a == nil {
				continue
			}
			a.Specificity = m.specificity
			if decl.Important {
				important[a.Name] = a
			} else {
				props[a.Name] = a
			}
		}
	}

	inlineImportant := make(map[string]*Attribute)
	if style, ok := s.attrs.Get("style"); ok {
		decls, err := css.ParseInline(style.Raw)
		if err != nil {
			c.tlog.Warn("ignoring style attribute", slog.String("node", h.String()), slog.Any("error", err))
		}
		for _, decl := range decls {
			a := c.declaration(tag, decl, InlineStyle)
			if a == nil {
				continue
			}
			if decl.Important {
				inlineImportant[a.Name] = a
			} else {
				props[a.Name] = a
			}
		}
	}

	for name, a := range important {
		props[name] = a
	}
	for name, a := range inlineImportant {
		props[name] = a
	}
	return props
}

func (c *cascade) declaration(tag string, decl css.Declaration, p Provenance) *Attribute {
	name := strings.ToLower(decl.Property)
	v, err := value.Parse(name, tag, decl.Value)
	if err != nil {
		c.tlog.Debug("ignoring invalid declaration", slog.String("property", name), slog.String("value", decl.Value))
		return nil
	}
	return &Attribute{
		Name:       name,
		Raw:        decl.Value,
		Value:      v,
		Provenance: p,
		Important:  decl.Important,
		Resolved:   true,
	}
}

// inheritProperties completes a specified property set with values from the
// parent's resolved set. At the top of the tree, inherited properties
// take their initial value.
func inheritProperties(props, parentProps map[string]*Attribute, parent Handle) map[string]*Attribute {
	out := make(map[string]*Attribute, len(props)+len(parentProps))
	for name, a := range props {
		if !value.IsInherit(a.Value) {
			out[name] = a
			continue
		}
		if p, ok := parentProps[name]; ok {
			out[name] = inheritedFrom(p, parent)
		} else if def := defaultAttribute(name); def != nil {
			out[name] = def
		}
	}

	if parentProps != nil {
		for name, p := range parentProps {
			if _, ok := out[name]; ok || !schema.IsInherited(name) {
				continue
			}
			out[name] = inheritedFrom(p, parent)
		}
		return out
	}

	for _, name := range schema.Properties() {
		if _, ok := out[name]; ok || !schema.IsInherited(name) {
			continue
		}
		if def := defaultAttribute(name); def != nil {
			out[name] = def
		}
	}
	return out
}

func inheritedFrom(p *Attribute, parent Handle) *Attribute {
	if p.Provenance == Default {
		return p
	}
	a := *p
	if p.Provenance != Inherited {
		a.From = parent
	}
	a.Provenance = Inherited
	a.Important = false
	a.Specificity = selector.Specificity{}
	return &a
}

func defaultAttribute(name string) *Attribute {
	raw, ok := schema.Default(name)
	if !ok {
		return nil
	}
	v, err := value.Parse(name, "", raw)
	if err != nil {
		return nil
	}
	return &Attribute{Name: name, Raw: raw, Value: v, Provenance: Default, Resolved: true}
}
