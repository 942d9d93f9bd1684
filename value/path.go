package value

import (
	"github.com/lestrrat-go/svgdom/internal/lexer"
)

type PathCommandType int

const (
	PathMove PathCommandType = iota
	PathLine
	PathCurve
	PathArc
	PathClose
)

// PathSegment is a single path command with its operands. Arc flags are
// stored as 0 or 1.
type PathSegment struct {
	Command byte
	Args    []float64
}

func (s PathSegment) Type() PathCommandType {
	switch s.Command | 0x20 {
	case 'm':
		return PathMove
	case 'l', 'h', 'v':
		return PathLine
	case 'c', 's', 'q', 't':
		return PathCurve
	case 'a':
		return PathArc
	}
	return PathClose
}

// Absolute reports whether the command uses absolute coordinates.
func (s PathSegment) Absolute() bool {
	return s.Command >= 'A' && s.Command <= 'Z'
}

// Path is path data with implicit command repetitions made explicit.
type Path []PathSegment

func (Path) Kind() Kind { return KindPath }
func (v Path) String() string {
	return Format(v, -1)
}
func (v Path) appendText(b []byte, prec int) []byte {
	return appendList(b, len(v), " ", func(b []byte, i int) []byte {
		seg := v[i]
		b = append(b, seg.Command)
		for j, arg := range seg.Args {
			b = append(b, ' ')
			if seg.Type() == PathArc && (j == 3 || j == 4) {
				b = appendNumber(b, arg, -1)
				continue
			}
			b = appendNumber(b, arg, prec)
		}
		return b
	})
}

var pathArity = map[byte]int{
	'm': 2, 'l': 2, 'h': 1, 'v': 1,
	'c': 6, 's': 4, 'q': 4, 't': 2,
	'a': 7, 'z': 0,
}

func ParsePath(s string) (Path, error) {
	sc := lexer.New(trim(s))
	path := Path{}
	for !sc.Done() {
		cmd := sc.Next()
		if cmd > 0x7f {
			return nil, syntaxError(`invalid path command %q at offset %d`, cmd, sc.Offset()-1)
		}
		c := byte(cmd)
		arity, ok := pathArity[c|0x20]
		if !ok {
			return nil, syntaxError(`invalid path command %q at offset %d`, cmd, sc.Offset()-1)
		}
		if len(path) == 0 && c|0x20 != 'm' {
			return nil, syntaxError(`path must start with a moveto`)
		}
		sc.SkipSpaces()

		if arity == 0 {
			path = append(path, PathSegment{Command: c})
			sc.SkipSpaces()
			continue
		}

		for first := true; first || lexer.IsNumberStart(sc.Peek()); first = false {
			args, err := scanPathArgs(sc, c, arity)
			if err != nil {
				return nil, err
			}
			path = append(path, PathSegment{Command: c, Args: args})
			sc.SkipSeparator()
			// subsequent pairs after a moveto are implicit linetos
			switch c {
			case 'M':
				c = 'L'
			case 'm':
				c = 'l'
			}
		}
	}
	return path, nil
}

func scanPathArgs(sc *lexer.Scanner, cmd byte, arity int) ([]float64, error) {
	args := make([]float64, 0, arity)
	for i := range arity {
		if i > 0 {
			sc.SkipSeparator()
		}
		if cmd|0x20 == 'a' && (i == 3 || i == 4) {
			flag, err := sc.Flag()
			if err != nil {
				return nil, syntaxError(`%s`, err)
			}
			if flag {
				args = append(args, 1)
			} else {
				args = append(args, 0)
			}
			continue
		}
		f, err := sc.Number()
		if err != nil {
			return nil, syntaxError(`command %c: %s`, cmd, err)
		}
		args = append(args, f)
	}
	return args, nil
}
