package nsstack

import "github.com/lestrrat-go/svgdom/internal/stack"

type Item struct {
	prefix string
	href   string
	depth  int
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

// Stack keeps namespace declarations in scope, tagged with the element
// depth that declared them.
type Stack struct {
	items stack.Stack[Item]
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Len() int {
	return s.items.Len()
}

func (s *Stack) Push(depth int, prefix, uri string) {
	s.items.Push(Item{prefix: prefix, href: uri, depth: depth})
}

// PopDepth drops every declaration made at depth or deeper.
func (s *Stack) PopDepth(depth int) {
	n := 0
	for i := s.items.Len() - 1; i >= 0 && s.items[i].depth >= depth; i-- {
		n++
	}
	s.items.Pop(n)
}

// Lookup returns the URI bound to prefix.
func (s *Stack) Lookup(prefix string) string {
	i := s.items.IndexFunc(func(item Item) bool { return item.prefix == prefix })
	if i < 0 {
		return ""
	}
	return s.items[i].href
}

// LookupURI returns the innermost prefix bound to uri.
func (s *Stack) LookupURI(uri string) (string, bool) {
	i := s.items.IndexFunc(func(item Item) bool { return item.href == uri })
	if i < 0 {
		return "", false
	}
	return s.items[i].prefix, true
}
