// Package lexer provides the small scanner shared by the attribute
// value grammars (numbers, lengths, lists, transforms and path data).
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/strcursor"
	"github.com/pkg/errors"
)

var ErrNumberExpected = errors.New("number expected")
var ErrFlagExpected = errors.New("flag expected")

type Scanner struct {
	cur *strcursor.RuneCursor
	n   int
}

func New(s string) *Scanner {
	return &Scanner{cur: strcursor.NewRuneCursor(strings.NewReader(s))}
}

func (s *Scanner) Done() bool {
	return s.cur.Done()
}

// Offset returns the number of characters consumed so far.
func (s *Scanner) Offset() int {
	return s.n
}

// Peek returns the next character without consuming it, or 0 at the end.
func (s *Scanner) Peek() rune {
	return s.peek(1)
}

func (s *Scanner) peek(n int) rune {
	r := s.cur.PeekN(n)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func (s *Scanner) Advance(n int) {
	if err := s.cur.Advance(n); err != nil {
		return
	}
	s.n += n
}

// consume reads the next n characters.
func (s *Scanner) consume(n int) string {
	var b strings.Builder
	for range n {
		r := s.peek(1)
		if r == 0 {
			break
		}
		b.WriteRune(r)
		s.Advance(1)
	}
	return b.String()
}

func (s *Scanner) Next() rune {
	r := s.Peek()
	if r != 0 {
		s.Advance(1)
	}
	return r
}

func (s *Scanner) ConsumePrefix(p string) bool {
	if !s.cur.HasPrefixString(p) {
		return false
	}
	s.Advance(len([]rune(p)))
	return true
}

func IsSpace(r rune) bool {
	return r == 0x20 || r == 0x9 || r == 0xa || r == 0xd
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsNumberStart(r rune) bool {
	return IsDigit(r) || r == '-' || r == '+' || r == '.'
}

func (s *Scanner) SkipSpaces() {
	for IsSpace(s.Peek()) {
		s.Advance(1)
	}
}

// SkipSeparator skips the "wsp* ,? wsp*" separator used by SVG lists and
// reports whether a comma was present.
func (s *Scanner) SkipSeparator() bool {
	s.SkipSpaces()
	comma := false
	if s.Peek() == ',' {
		s.Advance(1)
		comma = true
	}
	s.SkipSpaces()
	return comma
}

// Ident consumes a run of letters, digits, '-' and '_' that starts
// with a letter, '-' or '_'.
func (s *Scanner) Ident() string {
	i := 1
	for {
		r := s.peek(i)
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '_'
		if isLetter || (i > 1 && IsDigit(r)) {
			i++
			continue
		}
		break
	}
	if i == 1 {
		return ""
	}
	return s.consume(i - 1)
}

// Rest consumes everything that is left.
func (s *Scanner) Rest() string {
	var b strings.Builder
	for r := s.peek(1); r != 0; r = s.peek(1) {
		b.WriteRune(r)
		s.Advance(1)
	}
	return b.String()
}

// numberLen returns how many characters starting at the cursor form a
// number, or 0.
func (s *Scanner) numberLen() int {
	i := 1
	if r := s.peek(i); r == '-' || r == '+' {
		i++
	}
	digits := 0
	for IsDigit(s.peek(i)) {
		i++
		digits++
	}
	if s.peek(i) == '.' && IsDigit(s.peek(i+1)) {
		i++
		for IsDigit(s.peek(i)) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if r := s.peek(i); r == 'e' || r == 'E' {
		j := i + 1
		if r := s.peek(j); r == '-' || r == '+' {
			j++
		}
		if IsDigit(s.peek(j)) {
			for IsDigit(s.peek(j)) {
				j++
			}
			i = j
		}
	}
	return i - 1
}

// Number consumes a number in the SVG number grammar.
func (s *Scanner) Number() (float64, error) {
	n := s.numberLen()
	if n == 0 {
		return 0, errors.Wrapf(ErrNumberExpected, `at offset %d`, s.n)
	}
	text := s.consume(n)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrapf(err, `invalid number %q`, text)
	}
	return f, nil
}

// Flag consumes a single arc flag digit, which may be followed directly
// by the next token without a separator.
func (s *Scanner) Flag() (bool, error) {
	switch s.Peek() {
	case '0':
		s.Advance(1)
		return false, nil
	case '1':
		s.Advance(1)
		return true, nil
	}
	return false, errors.Wrapf(ErrFlagExpected, `at offset %d`, s.n)
}
