// Package selector matches CSS selectors against document elements.
// Elements are mirrored into an x/net/html tree so that cascadia can
// evaluate combinators and pseudo-classes.
package selector

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Specificity is the (id, class/attribute, type) selector weight.
type Specificity [3]int

// Less orders specificities the way CSS does.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Compare returns -1, 0 or 1.
func (s Specificity) Compare(other Specificity) int {
	switch {
	case s.Less(other):
		return -1
	case other.Less(s):
		return 1
	}
	return 0
}

// Index mirrors elements of a tree, keyed by K.
type Index[K comparable] struct {
	doc   *html.Node
	nodes map[K]*html.Node
}

func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{
		doc:   &html.Node{Type: html.DocumentNode},
		nodes: make(map[K]*html.Node),
	}
}

// Attr is a name/value pair for an element being indexed.
type Attr struct {
	Name  string
	Value string
}

// AddElement records an element under parent. A parent that is not
// indexed makes the element a top-level node.
func (ix *Index[K]) AddElement(key, parent K, tag string, attrs []Attr) {
	n := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tag),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: strings.ToLower(a.Name), Val: a.Value})
	}
	ix.attach(parent, n)
	ix.nodes[key] = n
}

// AddText records a text child, so that structural pseudo-classes such
// as :empty see it.
func (ix *Index[K]) AddText(parent K, text string) {
	ix.attach(parent, &html.Node{Type: html.TextNode, Data: text})
}

func (ix *Index[K]) attach(parent K, n *html.Node) {
	if p, ok := ix.nodes[parent]; ok {
		p.AppendChild(n)
		return
	}
	ix.doc.AppendChild(n)
}

func (ix *Index[K]) Len() int {
	return len(ix.nodes)
}

func (ix *Index[K]) node(key K) (*html.Node, bool) {
	n, ok := ix.nodes[key]
	return n, ok
}

// Matcher compiles and caches selectors.
type Matcher struct {
	compiled map[string]cascadia.Sel
	failed   map[string]error
}

func NewMatcher() *Matcher {
	return &Matcher{
		compiled: make(map[string]cascadia.Sel),
		failed:   make(map[string]error),
	}
}

// Compile parses a single (non-grouped) selector.
func (m *Matcher) Compile(sel string) (cascadia.Sel, error) {
	if c, ok := m.compiled[sel]; ok {
		return c, nil
	}
	if err, ok := m.failed[sel]; ok {
		return nil, err
	}
	c, err := cascadia.Parse(sel)
	if err != nil {
		err = errors.Wrapf(err, `invalid selector %q`, sel)
		m.failed[sel] = err
		return nil, err
	}
	m.compiled[sel] = c
	return c, nil
}

// Match evaluates sel against the element stored under key in ix.
func Match[K comparable](m *Matcher, ix *Index[K], sel string, key K) (Specificity, bool, error) {
	n, ok := ix.node(key)
	if !ok {
		return Specificity{}, false, nil
	}
	c, err := m.Compile(sel)
	if err != nil {
		return Specificity{}, false, err
	}
	if !c.Match(n) {
		return Specificity{}, false, nil
	}
	return Specificity(c.Specificity()), true, nil
}
