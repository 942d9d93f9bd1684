package stack_test

import (
	"testing"

	"github.com/lestrrat-go/svgdom/internal/stack"
	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var s stack.Stack[string]
	s.Push("a")
	s.Push("b")
	s.Push("c")

	if !assert.Equal(t, 3, s.Len(), "Len == 3") {
		return
	}

	top, ok := s.Top()
	if !assert.True(t, ok, "Top succeeds") {
		return
	}
	if !assert.Equal(t, "c", top, "Top == c") {
		return
	}

	if !assert.Equal(t, []string{"b", "c"}, s.Peek(2), "Peek(2)") {
		return
	}

	if !assert.Equal(t, 0, s.IndexFunc(func(v string) bool { return v == "a" }), "IndexFunc(a)") {
		return
	}
	if !assert.Equal(t, -1, s.IndexFunc(func(v string) bool { return v == "z" }), "IndexFunc(z)") {
		return
	}

	s.Pop(2)
	if !assert.Equal(t, 1, s.Len(), "Len == 1") {
		return
	}

	s.Pop(5)
	if !assert.Equal(t, 0, s.Len(), "Len == 0") {
		return
	}
	_, ok = s.Top()
	assert.False(t, ok, "Top on empty stack fails")
}
