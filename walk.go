package svgdom

import (
	"iter"
)

// The traversal methods return lazy sequences that can be iterated any
// number of times. Mutating the traversed subtree while a sequence is
// being iterated is not allowed; collect the handles first.

// PreOrder yields h and its descendants, parents before children.
func (d *Document) PreOrder(h Handle) (iter.Seq[Handle], error) {
	if _, err := d.slot(h); err != nil {
		return nil, err
	}
	return func(yield func(Handle) bool) {
		d.preorder(h, yield)
	}, nil
}

func (d *Document) preorder(h Handle, yield func(Handle) bool) bool {
	if !d.IsLive(h) {
		return true
	}
	if !yield(h) {
		return false
	}
	for _, c := range d.at(h).children {
		if !d.preorder(c, yield) {
			return false
		}
	}
	return true
}

// PostOrder yields h and its descendants, children before parents.
func (d *Document) PostOrder(h Handle) (iter.Seq[Handle], error) {
	if _, err := d.slot(h); err != nil {
		return nil, err
	}
	return func(yield func(Handle) bool) {
		d.postorder(h, yield)
	}, nil
}

func (d *Document) postorder(h Handle, yield func(Handle) bool) bool {
	if !d.IsLive(h) {
		return true
	}
	for _, c := range d.at(h).children {
		if !d.postorder(c, yield) {
			return false
		}
	}
	return yield(h)
}

// ChildrenOf yields the children of h in order.
func (d *Document) ChildrenOf(h Handle) (iter.Seq[Handle], error) {
	if _, err := d.slot(h); err != nil {
		return nil, err
	}
	return func(yield func(Handle) bool) {
		if !d.IsLive(h) {
			return
		}
		for _, c := range d.at(h).children {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// Ancestors yields the parent of h, then its parent, up to the top of
// the tree. Shadow tree boundaries are not crossed.
func (d *Document) Ancestors(h Handle) (iter.Seq[Handle], error) {
	if _, err := d.slot(h); err != nil {
		return nil, err
	}
	return func(yield func(Handle) bool) {
		if !d.IsLive(h) {
			return
		}
		for cur := d.at(h).parent; cur.IsValid() && d.IsLive(cur); cur = d.at(cur).parent {
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Elements yields every element of the document tree in document order.
func (d *Document) Elements() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		root := d.Root()
		if !root.IsValid() {
			return
		}
		d.preorder(root, func(h Handle) bool {
			if d.at(h).kind != ElementNode {
				return true
			}
			return yield(h)
		})
	}
}
