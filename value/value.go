// Package value implements the typed representation of SVG attribute
// values: a closed set of kinds, name-aware parsing and canonical
// formatting.
package value

import (
	"strings"

	"github.com/lestrrat-go/svgdom/internal/pool"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindLength
	KindNumberList
	KindLengthList
	KindColor
	KindTransform
	KindPath
	KindReference
	KindKeyword
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindLength:
		return "length"
	case KindNumberList:
		return "number-list"
	case KindLengthList:
		return "length-list"
	case KindColor:
		return "color"
	case KindTransform:
		return "transform"
	case KindPath:
		return "path"
	case KindReference:
		return "reference"
	case KindKeyword:
		return "keyword"
	}
	return "unknown"
}

// Value is an immutable, typed attribute value. The set of
// implementations is closed to this package.
type Value interface {
	Kind() Kind
	String() string
	appendText(b []byte, prec int) []byte
}

// Format renders v in its canonical textual form. A negative precision
// selects the shortest representation that parses back to the same
// number; otherwise numbers are rounded to prec fractional digits.
func Format(v Value, prec int) string {
	if v == nil {
		return ""
	}
	bs := pool.ByteSlice()
	b := v.appendText(bs.Get(), prec)
	s := string(b)
	bs.Put(b)
	return s
}

// Equal reports whether two values are of the same kind and carry the
// same content.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return Format(a, -1) == Format(b, -1)
}

// String is an attribute value kept as literal text.
type String string

func (String) Kind() Kind { return KindString }
func (v String) String() string { return string(v) }
func (v String) appendText(b []byte, _ int) []byte {
	return append(b, v...)
}

// Keyword is an enumerated token such as "none" or "evenodd".
type Keyword string

func (Keyword) Kind() Kind       { return KindKeyword }
func (v Keyword) String() string { return string(v) }
func (v Keyword) appendText(b []byte, _ int) []byte {
	return append(b, v...)
}

// IsNone reports whether v is the keyword "none".
func IsNone(v Value) bool {
	kw, ok := v.(Keyword)
	return ok && kw == "none"
}

// IsInherit reports whether v is the keyword "inherit".
func IsInherit(v Value) bool {
	kw, ok := v.(Keyword)
	return ok && kw == "inherit"
}

func appendList(b []byte, n int, sep string, fn func([]byte, int) []byte) []byte {
	for i := range n {
		if i > 0 {
			b = append(b, sep...)
		}
		b = fn(b, i)
	}
	return b
}

func trim(s string) string {
	return strings.Trim(s, " \t\r\n")
}
