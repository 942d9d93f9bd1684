package value

import (
	"math"

	"github.com/lestrrat-go/svgdom/internal/lexer"
)

// Matrix is the 2x3 affine matrix
//
//	| A C E |
//	| B D F |
type Matrix struct {
	A, B, C, D, E, F float64
}

var Identity = Matrix{A: 1, D: 1}

// Mult returns m × n.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mult(Matrix{A: 1, D: 1, E: x, F: y})
}

func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mult(Matrix{A: x, D: y})
}

// Rotate rotates by theta degrees.
func (m Matrix) Rotate(theta float64) Matrix {
	rad := theta * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return m.Mult(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

func (m Matrix) SkewX(theta float64) Matrix {
	return m.Mult(Matrix{A: 1, C: math.Tan(theta * math.Pi / 180), D: 1})
}

func (m Matrix) SkewY(theta float64) Matrix {
	return m.Mult(Matrix{A: 1, B: math.Tan(theta * math.Pi / 180), D: 1})
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

type TransformType int

const (
	TransformMatrix TransformType = iota
	TransformTranslate
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
)

var transformNames = []string{"matrix", "translate", "scale", "rotate", "skewX", "skewY"}

func (t TransformType) String() string {
	return transformNames[t]
}

// TransformOp is one primitive of a transform list, with the arguments
// as written.
type TransformOp struct {
	Type TransformType
	Args []float64
}

func (op TransformOp) Matrix() Matrix {
	a := op.Args
	switch op.Type {
	case TransformMatrix:
		return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
	case TransformTranslate:
		if len(a) == 1 {
			return Identity.Translate(a[0], 0)
		}
		return Identity.Translate(a[0], a[1])
	case TransformScale:
		if len(a) == 1 {
			return Identity.Scale(a[0], a[0])
		}
		return Identity.Scale(a[0], a[1])
	case TransformRotate:
		if len(a) == 3 {
			return Identity.Translate(a[1], a[2]).Rotate(a[0]).Translate(-a[1], -a[2])
		}
		return Identity.Rotate(a[0])
	case TransformSkewX:
		return Identity.SkewX(a[0])
	case TransformSkewY:
		return Identity.SkewY(a[0])
	}
	return Identity
}

// Transform is an ordered list of primitive transform operations.
type Transform struct {
	Ops []TransformOp
}

func (Transform) Kind() Kind { return KindTransform }
func (v Transform) String() string {
	return Format(v, -1)
}
func (v Transform) appendText(b []byte, prec int) []byte {
	return appendList(b, len(v.Ops), " ", func(b []byte, i int) []byte {
		op := v.Ops[i]
		b = append(b, op.Type.String()...)
		b = append(b, '(')
		b = appendList(b, len(op.Args), " ", func(b []byte, j int) []byte {
			return appendNumber(b, op.Args[j], prec)
		})
		return append(b, ')')
	})
}

// Matrix composes the operations left to right.
func (v Transform) Matrix() Matrix {
	m := Identity
	for _, op := range v.Ops {
		m = m.Mult(op.Matrix())
	}
	return m
}

var transformArity = map[TransformType][]int{
	TransformMatrix:    {6},
	TransformTranslate: {1, 2},
	TransformScale:     {1, 2},
	TransformRotate:    {1, 3},
	TransformSkewX:     {1},
	TransformSkewY:     {1},
}

func ParseTransform(s string) (Transform, error) {
	sc := lexer.New(trim(s))
	var t Transform
	for !sc.Done() {
		name := sc.Ident()
		typ := -1
		for i, n := range transformNames {
			if n == name {
				typ = i
				break
			}
		}
		if typ < 0 {
			return Transform{}, syntaxError(`unknown transform %q at offset %d`, name, sc.Offset())
		}
		sc.SkipSpaces()
		if !sc.ConsumePrefix("(") {
			return Transform{}, syntaxError(`expected '(' after %s`, name)
		}
		sc.SkipSpaces()

		var args []float64
		for !sc.ConsumePrefix(")") {
			if sc.Done() {
				return Transform{}, syntaxError(`unterminated %s()`, name)
			}
			f, err := sc.Number()
			if err != nil {
				return Transform{}, syntaxError(`%s`, err)
			}
			args = append(args, f)
			sc.SkipSeparator()
		}

		op := TransformOp{Type: TransformType(typ), Args: args}
		valid := false
		for _, n := range transformArity[op.Type] {
			if n == len(args) {
				valid = true
			}
		}
		if !valid {
			return Transform{}, syntaxError(`wrong number of arguments to %s(): %d`, name, len(args))
		}
		t.Ops = append(t.Ops, op)
		sc.SkipSeparator()
	}
	return t, nil
}
