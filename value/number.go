package value

import (
	"github.com/lestrrat-go/svgdom/internal/lexer"
)

// Number is a plain number.
type Number float64

func (Number) Kind() Kind { return KindNumber }
func (v Number) String() string {
	return Format(v, -1)
}
func (v Number) appendText(b []byte, prec int) []byte {
	return appendNumber(b, float64(v), prec)
}

type Unit int

const (
	UnitNone Unit = iota
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var unitNames = map[Unit]string{
	UnitNone:    "",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPx:      "px",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitPercent: "%",
}

func (u Unit) String() string {
	return unitNames[u]
}

func unitFromString(s string) (Unit, bool) {
	for u, name := range unitNames {
		if name == s {
			return u, true
		}
	}
	return UnitNone, false
}

// Length is a number with an optional unit.
type Length struct {
	Number float64
	Unit   Unit
}

func (Length) Kind() Kind { return KindLength }
func (v Length) String() string {
	return Format(v, -1)
}
func (v Length) appendText(b []byte, prec int) []byte {
	b = appendNumber(b, v.Number, prec)
	return append(b, v.Unit.String()...)
}

// NumberList is a whitespace/comma separated list of numbers, as used by
// viewBox and points.
type NumberList []float64

func (NumberList) Kind() Kind { return KindNumberList }
func (v NumberList) String() string {
	return Format(v, -1)
}
func (v NumberList) appendText(b []byte, prec int) []byte {
	return appendList(b, len(v), " ", func(b []byte, i int) []byte {
		return appendNumber(b, v[i], prec)
	})
}

// LengthList is a list of lengths, as used by stroke-dasharray.
type LengthList []Length

func (LengthList) Kind() Kind { return KindLengthList }
func (v LengthList) String() string {
	return Format(v, -1)
}
func (v LengthList) appendText(b []byte, prec int) []byte {
	return appendList(b, len(v), " ", func(b []byte, i int) []byte {
		return v[i].appendText(b, prec)
	})
}

func ParseNumber(s string) (Number, error) {
	sc := lexer.New(trim(s))
	f, err := sc.Number()
	if err != nil {
		return 0, syntaxError(`%s`, err)
	}
	if !sc.Done() {
		return 0, syntaxError(`trailing data at offset %d`, sc.Offset())
	}
	return Number(f), nil
}

func scanLength(sc *lexer.Scanner) (Length, error) {
	f, err := sc.Number()
	if err != nil {
		return Length{}, syntaxError(`%s`, err)
	}
	if sc.ConsumePrefix("%") {
		return Length{Number: f, Unit: UnitPercent}, nil
	}
	name := sc.Ident()
	u, ok := unitFromString(name)
	if !ok {
		return Length{}, syntaxError(`unknown unit %q`, name)
	}
	return Length{Number: f, Unit: u}, nil
}

func ParseLength(s string) (Length, error) {
	sc := lexer.New(trim(s))
	l, err := scanLength(sc)
	if err != nil {
		return Length{}, err
	}
	if !sc.Done() {
		return Length{}, syntaxError(`trailing data at offset %d`, sc.Offset())
	}
	return l, nil
}

func ParseNumberList(s string) (NumberList, error) {
	sc := lexer.New(trim(s))
	list := NumberList{}
	for !sc.Done() {
		f, err := sc.Number()
		if err != nil {
			return nil, syntaxError(`%s`, err)
		}
		list = append(list, f)
		if sc.SkipSeparator() && sc.Done() {
			return nil, syntaxError(`trailing separator`)
		}
	}
	return list, nil
}

func ParseLengthList(s string) (LengthList, error) {
	sc := lexer.New(trim(s))
	list := LengthList{}
	for !sc.Done() {
		l, err := scanLength(sc)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
		if sc.SkipSeparator() && sc.Done() {
			return nil, syntaxError(`trailing separator`)
		}
	}
	return list, nil
}
