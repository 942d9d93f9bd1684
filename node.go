package svgdom

import (
	"slices"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
)

// Parent returns the parent of h, or InvalidHandle for detached nodes
// and the document element.
func (d *Document) Parent(h Handle) (Handle, error) {
	s, err := d.slot(h)
	if err != nil {
		return InvalidHandle, err
	}
	return s.parent, nil
}

// Children returns a copy of the child list of h.
func (d *Document) Children(h Handle) ([]Handle, error) {
	s, err := d.slot(h)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.children), nil
}

// isAncestorOrSelf reports whether a is h or one of its ancestors.
func (d *Document) isAncestorOrSelf(a, h Handle) bool {
	for cur := h; cur.IsValid(); cur = d.at(cur).parent {
		if cur == a {
			return true
		}
	}
	return false
}

func (d *Document) checkAttach(parent, child Handle) (*slot, *slot, error) {
	ps, err := d.slot(parent)
	if err != nil {
		return nil, nil, err
	}
	cs, err := d.slot(child)
	if err != nil {
		return nil, nil, err
	}
	if ps.kind != ElementNode {
		return nil, nil, errors.Wrap(ErrNotElement, `parent must be an element`)
	}
	if child == d.root || cs.host.IsValid() {
		return nil, nil, ErrHierarchy
	}
	if d.isAncestorOrSelf(child, parent) {
		return nil, nil, errors.Wrap(ErrHierarchy, `cannot attach a node under itself`)
	}
	return ps, cs, nil
}

// AppendChild attaches child as the last child of parent, detaching it
// from its current parent first.
func (d *Document) AppendChild(parent, child Handle) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	ps, cs, err := d.checkAttach(parent, child)
	if err != nil {
		return err
	}
	d.unlink(child, cs)
	ps.children = append(ps.children, child)
	cs.parent = parent
	return nil
}

// InsertBefore attaches node as the previous sibling of sibling.
func (d *Document) InsertBefore(node, sibling Handle) error {
	ss, err := d.slot(sibling)
	if err != nil {
		return err
	}
	if !ss.parent.IsValid() {
		return errors.Wrap(ErrHierarchy, `sibling has no parent`)
	}
	if node == sibling {
		return errors.Wrap(ErrHierarchy, `cannot insert a node before itself`)
	}
	parent := ss.parent
	ps, cs, err := d.checkAttach(parent, node)
	if err != nil {
		return err
	}
	d.unlink(node, cs)
	i := slices.Index(ps.children, sibling)
	ps.children = slices.Insert(ps.children, i, node)
	cs.parent = parent
	return nil
}

func (d *Document) unlink(h Handle, s *slot) {
	if !s.parent.IsValid() {
		return
	}
	ps := d.at(s.parent)
	if i := slices.Index(ps.children, h); i >= 0 {
		ps.children = slices.Delete(ps.children, i, i+1)
	}
	s.parent = InvalidHandle
}

// Detach removes h from its parent. The node and its subtree stay
// alive and keep their handles.
func (d *Document) Detach(h Handle) error {
	s, err := d.slot(h)
	if err != nil {
		return err
	}
	d.unlink(h, s)
	return nil
}

// Remove detaches h and invalidates it along with every descendant.
func (d *Document) Remove(h Handle) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	s, err := d.slot(h)
	if err != nil {
		return err
	}
	d.unlink(h, s)
	if h == d.root {
		d.root = InvalidHandle
	}
	d.releaseSubtree(h)
	return nil
}

func (d *Document) releaseSubtree(h Handle) {
	s := d.at(h)
	for _, c := range s.children {
		d.releaseSubtree(c)
	}
	if s.shadow.IsValid() && d.IsLive(s.shadow) {
		d.releaseSubtree(s.shadow)
	}
	if s.kind == ElementNode {
		if attr, ok := s.attrs.Get("id"); ok {
			d.unregisterID(attr.Raw, h)
		}
	}
	delete(d.shadowOrigin, h)
	d.release(h)
}

// CloneSubtree deep-copies h and its descendants, attributes included.
// The copy is detached. Reference edges are not copied; they are
// rebuilt by the next ResolveLinks.
func (d *Document) CloneSubtree(h Handle) (Handle, error) {
	if _, err := d.slot(h); err != nil {
		return InvalidHandle, err
	}
	return d.clone(h, true, nil), nil
}

// clone copies a live subtree. When register is false, ids of the copy
// are not added to the id index. If origin is non-nil it receives a
// mapping from each copy to its source node.
func (d *Document) clone(h Handle, register bool, origin map[Handle]Handle) Handle {
	src := d.at(h)
	kind, data := src.kind, src.data
	children := slices.Clone(src.children)
	var attrs []*Attribute
	var resolved map[string]*Attribute
	if kind == ElementNode {
		for _, a := range src.attrs.Range() {
			attrs = append(attrs, a)
		}
		resolved = make(map[string]*Attribute, len(src.resolved))
		for k, v := range src.resolved {
			resolved[k] = v
		}
	}

	// alloc may grow d.slots, so src must not be used past this point
	c := d.alloc(kind, data)
	cs := d.at(c)
	if kind == ElementNode {
		for _, a := range attrs {
			cs.attrs.Set(a.Name, a)
			if register && a.Name == "id" {
				d.registerID(a.Raw, c)
			}
		}
		cs.resolved = resolved
	}
	if origin != nil {
		origin[c] = h
	}

	for _, child := range children {
		cc := d.clone(child, register, origin)
		parent := d.at(c)
		parent.children = append(parent.children, cc)
		d.at(cc).parent = c
	}
	return c
}
