package stack

// Stack is a LIFO of arbitrary items. The zero value is ready to use.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes the top n (default 1) items.
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	l := len(*s)
	if nn > l {
		nn = l
	}
	if nn <= 0 {
		return
	}
	var zero T
	for i := l - nn; i < l; i++ {
		(*s)[i] = zero
	}
	*s = (*s)[:l-nn]
}

// Top returns the most recently pushed item.
func (s Stack[T]) Top() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Peek returns the top n items, oldest first.
func (s Stack[T]) Peek(n int) []T {
	if l := len(s); l > n {
		return s[l-n : l]
	}
	return s
}

// IndexFunc returns the position (from the bottom) of the topmost item
// for which fn returns true, or -1.
func (s Stack[T]) IndexFunc(fn func(T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if fn(s[i]) {
			return i
		}
	}
	return -1
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s Stack[T]) Cap() int {
	return cap(s)
}
