package svgdom

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/svgdom/schema"
	"github.com/lestrrat-go/svgdom/value"
	"github.com/pkg/errors"
)

// maximum nesting of templates instantiated inside other templates
const maxTemplateDepth = 32

// ResolveLinks rebuilds the reference edge table from the current
// resolved attributes and re-instantiates the content of template
// references (<use>). It should run after ResolveStyles. Running it
// again on an unchanged tree produces the same edge table; shadow
// trees are rebuilt with fresh handles.
//
// A reference whose target is missing is broken with
// DanglingReference. References that would make resolution loop, such
// as two gradients referring to each other or a <use> inside the
// element it instantiates, are broken with CycleDetected.
func (d *Document) ResolveLinks(ctx context.Context) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	tlog := getTraceLogFromContext(ctx)

	d.discardShadows()
	d.edges = nil
	d.edgeIdx = make(map[edgeKey]int)

	root := d.Root()
	if !root.IsValid() {
		return
	}

	ids := make(map[string]Handle)
	for h := range d.Elements() {
		if id := d.ID(h); id != "" {
			if _, seen := ids[id]; !seen {
				ids[id] = h
			}
		}
	}

	out := make(map[Handle][]int)
	for h := range d.Elements() {
		for _, e := range d.collectEdges(h, ids) {
			d.edgeIdx[edgeKey{source: e.Source, name: e.Attribute}] = len(d.edges)
			out[h] = append(out[h], len(d.edges))
			d.edges = append(d.edges, e)
		}
	}

	r := &linkResolver{
		doc:     d,
		out:     out,
		onStack: make(map[Handle]int),
		done:    make(map[Handle]bool),
	}
	r.visit(root, -1)

	for _, e := range d.edges {
		if e.IsBroken() {
			tlog.Warn("broken reference",
				slog.String("node", e.Source.String()),
				slog.String("attribute", e.Attribute),
				slog.String("target", e.TargetID),
				slog.String("reason", e.Broken.String()),
			)
		}
	}

	for _, e := range d.edges {
		if e.Kind == schema.LinkTemplate && !e.IsBroken() {
			d.instantiate(ctx, e.Source, e.Target, 0)
		}
	}
}

// collectEdges lists the references specified on h, sorted by
// attribute name.
func (d *Document) collectEdges(h Handle, ids map[string]Handle) []ReferenceEdge {
	s := d.at(h)
	refs := make(map[string]value.Reference)
	for name, a := range s.resolved {
		if !a.Provenance.Specified() {
			continue
		}
		if ref, ok := a.Value.(value.Reference); ok {
			refs[name] = ref
		}
	}
	for name, a := range s.attrs.Range() {
		if _, ok := refs[name]; ok || schema.IsPresentation(name) {
			continue
		}
		if ref, ok := a.Value.(value.Reference); ok {
			refs[name] = ref
		}
	}

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	slices.Sort(names)

	edges := make([]ReferenceEdge, 0, len(names))
	for _, name := range names {
		ref := refs[name]
		kind := schema.LinkKindOf(s.data, name)
		if kind == schema.LinkNone {
			kind = schema.LinkHref
		}
		e := ReferenceEdge{
			Source:    h,
			Attribute: name,
			TargetID:  ref.ID,
			Kind:      kind,
		}
		if target, ok := ids[ref.ID]; ok {
			e.Target = target
		} else {
			e.Broken = DanglingReference
		}
		edges = append(edges, e)
	}
	return edges
}

type linkFrame struct {
	node Handle
	via  int
}

// linkResolver walks references depth first. Resolving a reference to
// a node means resolving every reference made from inside that node's
// subtree; meeting a node that is already being resolved closes a
// cycle.
type linkResolver struct {
	doc     *Document
	out     map[Handle][]int
	frames  []linkFrame
	onStack map[Handle]int
	done    map[Handle]bool
}

func (r *linkResolver) visit(target Handle, via int) {
	d := r.doc
	r.frames = append(r.frames, linkFrame{node: target, via: via})
	r.onStack[target] = len(r.frames) - 1

	var sources []Handle
	d.preorder(target, func(h Handle) bool {
		if len(r.out[h]) > 0 {
			sources = append(sources, h)
		}
		return true
	})

	for _, src := range sources {
		for _, ei := range r.out[src] {
			e := &d.edges[ei]
			if !e.Target.IsValid() || e.Kind == schema.LinkNavigation {
				continue
			}
			if k, ok := r.onStack[e.Target]; ok {
				e.Broken = CycleDetected
				for _, f := range r.frames[k+1:] {
					d.edges[f.via].Broken = CycleDetected
				}
				continue
			}
			if r.done[e.Target] {
				continue
			}
			r.visit(e.Target, ei)
		}
	}

	r.frames = r.frames[:len(r.frames)-1]
	delete(r.onStack, target)
	r.done[target] = true
}

func (d *Document) discardShadows() {
	for _, root := range d.shadowRoots {
		if !d.IsLive(root) {
			continue
		}
		if host := d.at(root).host; d.IsLive(host) {
			d.at(host).shadow = InvalidHandle
		}
		d.releaseSubtree(root)
	}
	d.shadowRoots = nil
	d.shadowOrigin = make(map[Handle]Handle)
}

// templateEdge returns the template reference made by h, looking
// through shadow copies to the node they were cloned from.
func (d *Document) templateEdge(h Handle) (ReferenceEdge, bool) {
	for _, name := range []string{"href", "xlink:href"} {
		if e, ok := d.ReferenceEdge(h, name); ok && e.Kind == schema.LinkTemplate {
			return e, true
		}
	}
	return ReferenceEdge{}, false
}

// instantiate clones the target content under host as a shadow tree
// and styles it in the host's context.
func (d *Document) instantiate(ctx context.Context, host, target Handle, depth int) {
	if depth >= maxTemplateDepth {
		getTraceLogFromContext(ctx).Warn("template nesting too deep", slog.String("node", host.String()))
		return
	}

	origin := make(map[Handle]Handle)
	shadow := d.clone(target, false, origin)
	for c, o := range origin {
		if oo, ok := d.shadowOrigin[o]; ok {
			o = oo
		}
		d.shadowOrigin[c] = o
	}
	d.at(host).shadow = shadow
	d.at(shadow).host = host
	d.shadowRoots = append(d.shadowRoots, shadow)

	d.styleShadow(shadow, host)

	var nested []Handle
	d.preorder(shadow, func(h Handle) bool {
		if d.at(h).kind == ElementNode {
			nested = append(nested, h)
		}
		return true
	})
	for _, h := range nested {
		e, ok := d.templateEdge(h)
		if !ok || e.IsBroken() {
			continue
		}
		d.instantiate(ctx, h, e.Target, depth+1)
	}
}

// styleShadow recomputes the resolved attributes of a shadow tree.
// Cloned elements keep the values specified on their originals and
// inherit from the host. Where both the host and the shadow root
// specify an attribute, the template precedence decides.
func (d *Document) styleShadow(shadow, host Handle) {
	hs := d.at(host)
	if d.precedence == ReferencingWins {
		rs := d.at(shadow)
		if rs.kind == ElementNode {
			for name, a := range hs.attrs.Range() {
				if schema.IsTemplateExcluded(name) {
					continue
				}
				if _, ok := rs.attrs.Get(name); ok {
					rs.attrs.Set(name, a)
				}
			}
		}
	}

	d.preorder(shadow, func(h Handle) bool {
		s := d.at(h)
		if s.kind != ElementNode {
			return true
		}

		props := make(map[string]*Attribute, len(s.resolved))
		for name, a := range s.resolved {
			if a.Provenance.Specified() {
				props[name] = a
			}
		}

		parent := s.parent
		if h == shadow {
			parent = host
			if d.precedence == ReferencingWins {
				for name, a := range hs.resolved {
					if !a.Provenance.Specified() || schema.IsTemplateExcluded(name) {
						continue
					}
					if _, ok := props[name]; ok {
						props[name] = a
					}
				}
			}
		}
		s.resolved = inheritProperties(props, d.at(parent).resolved, parent)
		return true
	})
}

// ReferenceEdges returns the edge table built by the last ResolveLinks,
// in document order.
func (d *Document) ReferenceEdges() []ReferenceEdge {
	return slices.Clone(d.edges)
}

// ReferenceEdge returns the edge for attribute name of h. For nodes of
// a shadow tree, the edge of the node they were cloned from is
// reported, with Source set to h.
func (d *Document) ReferenceEdge(h Handle, name string) (ReferenceEdge, bool) {
	if i, ok := d.edgeIdx[edgeKey{source: h, name: name}]; ok {
		return d.edges[i], true
	}
	if o, ok := d.shadowOrigin[h]; ok {
		if i, ok := d.edgeIdx[edgeKey{source: o, name: name}]; ok {
			e := d.edges[i]
			e.Source = h
			return e, true
		}
	}
	return ReferenceEdge{}, false
}

// Shadow returns the root of the tree instantiated for template host h,
// or InvalidHandle.
func (d *Document) Shadow(h Handle) (Handle, error) {
	s, err := d.slot(h)
	if err != nil {
		return InvalidHandle, err
	}
	if !d.IsLive(s.shadow) {
		return InvalidHandle, nil
	}
	return s.shadow, nil
}

// Host returns the template host of a shadow root, or InvalidHandle.
func (d *Document) Host(h Handle) (Handle, error) {
	s, err := d.slot(h)
	if err != nil {
		return InvalidHandle, err
	}
	return s.host, nil
}

// ShadowOrigin returns the document node a shadow node was cloned from.
func (d *Document) ShadowOrigin(h Handle) (Handle, bool) {
	o, ok := d.shadowOrigin[h]
	return o, ok
}

// LinkedNodes returns the nodes holding an unbroken reference to
// target, in document order.
func (d *Document) LinkedNodes(target Handle) []Handle {
	var list []Handle
	for _, e := range d.edges {
		if e.Target != target || e.IsBroken() {
			continue
		}
		if l := len(list); l > 0 && list[l-1] == e.Source {
			continue
		}
		list = append(list, e.Source)
	}
	return list
}

// UsesCount returns the number of nodes referencing target.
func (d *Document) UsesCount(target Handle) int {
	return len(d.LinkedNodes(target))
}

// SetReference points attribute name of h at target, which must have
// an id. It fails with ErrElementCrosslink when h and target are the
// same node or target already references h. The edge table reflects
// the change after the next ResolveLinks.
func (d *Document) SetReference(h Handle, name string, target Handle) error {
	s, err := d.element(h)
	if err != nil {
		return err
	}
	if _, err := d.element(target); err != nil {
		return err
	}

	id := d.ID(target)
	if id == "" {
		return ErrElementMustHaveID
	}
	if h == target {
		return errors.Wrap(ErrElementCrosslink, `element cannot reference itself`)
	}
	if own := d.ID(h); own != "" {
		for _, a := range d.at(target).attrs.Range() {
			if ref, ok := a.Value.(value.Reference); ok && ref.ID == own {
				return errors.Wrapf(ErrElementCrosslink, `%q already references %q`, id, own)
			}
		}
	}

	var ref value.Reference
	switch kind := schema.LinkKindOf(s.data, name); kind {
	case schema.LinkNone:
		return errors.Errorf(`attribute %q cannot hold a reference`, name)
	case schema.LinkHref, schema.LinkTemplate, schema.LinkNavigation:
		ref = value.Reference{ID: id}
	default:
		ref = value.Reference{ID: id, Func: true}
	}
	return d.SetAttribute(h, name, ref)
}

func (e ReferenceEdge) String() string {
	var b strings.Builder
	b.WriteString(e.Source.String())
	b.WriteString(" ")
	b.WriteString(e.Attribute)
	b.WriteString(" -> #")
	b.WriteString(e.TargetID)
	if e.IsBroken() {
		b.WriteString(" (")
		b.WriteString(e.Broken.String())
		b.WriteString(")")
	}
	return b.String()
}
