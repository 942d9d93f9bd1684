package value

import (
	"math"
	"strings"

	"github.com/lestrrat-go/svgdom/internal/lexer"
	"golang.org/x/image/colornames"
)

// Color is an sRGB color with an optional alpha channel in [0, 1].
type Color struct {
	R, G, B  uint8
	A        float64
	HasAlpha bool
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func (Color) Kind() Kind { return KindColor }
func (v Color) String() string {
	return Format(v, -1)
}

const hexdigits = "0123456789abcdef"

func (v Color) appendText(b []byte, prec int) []byte {
	if v.HasAlpha {
		b = append(b, "rgba("...)
		b = appendNumber(b, float64(v.R), -1)
		b = append(b, ',')
		b = appendNumber(b, float64(v.G), -1)
		b = append(b, ',')
		b = appendNumber(b, float64(v.B), -1)
		b = append(b, ',')
		b = appendNumber(b, v.A, prec)
		return append(b, ')')
	}
	b = append(b, '#')
	for _, c := range []uint8{v.R, v.G, v.B} {
		b = append(b, hexdigits[c>>4], hexdigits[c&0xf])
	}
	return b
}

// ParseColor accepts named colors, #rgb, #rgba, #rrggbb, #rrggbbaa and
// the rgb()/rgba() functional notations.
func ParseColor(s string) (Color, error) {
	s = trim(s)
	if s == "" {
		return Color{}, syntaxError(`empty color`)
	}

	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(lower)
	}

	if lower == "transparent" {
		return Color{A: 0, HasAlpha: true}, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return RGB(c.R, c.G, c.B), nil
	}
	return Color{}, syntaxError(`unknown color %q`, s)
}

func hexval(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseHexColor(s string) (Color, error) {
	digits := make([]uint8, len(s))
	for i := range len(s) {
		v, ok := hexval(s[i])
		if !ok {
			return Color{}, syntaxError(`invalid hex digit %q`, s[i])
		}
		digits[i] = v
	}

	switch len(digits) {
	case 3, 4:
		c := RGB(digits[0]*17, digits[1]*17, digits[2]*17)
		if len(digits) == 4 {
			c.A = float64(digits[3]*17) / 255
			c.HasAlpha = true
		}
		return c, nil
	case 6, 8:
		c := RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5])
		if len(digits) == 8 {
			c.A = float64(digits[6]<<4|digits[7]) / 255
			c.HasAlpha = true
		}
		return c, nil
	}
	return Color{}, syntaxError(`invalid hex color length %d`, len(digits))
}

func clampByte(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

func parseRGBFunc(s string) (Color, error) {
	sc := lexer.New(s)
	name := sc.Ident()
	if !sc.ConsumePrefix("(") {
		return Color{}, syntaxError(`expected '(' after %s`, name)
	}

	var args []float64
	for {
		sc.SkipSpaces()
		if sc.ConsumePrefix(")") {
			break
		}
		f, err := sc.Number()
		if err != nil {
			return Color{}, syntaxError(`%s`, err)
		}
		pct := sc.ConsumePrefix("%")
		idx := len(args)
		switch {
		case idx < 3 && pct:
			f = f * 255 / 100
		case idx == 3 && pct:
			f = f / 100
		}
		args = append(args, f)
		sc.SkipSeparator()
		if sc.ConsumePrefix("/") {
			sc.SkipSpaces()
		}
		if sc.Done() {
			return Color{}, syntaxError(`unterminated %s()`, name)
		}
	}
	sc.SkipSpaces()
	if !sc.Done() {
		return Color{}, syntaxError(`trailing data after %s()`, name)
	}

	switch len(args) {
	case 3:
		return RGB(clampByte(args[0]), clampByte(args[1]), clampByte(args[2])), nil
	case 4:
		c := RGB(clampByte(args[0]), clampByte(args[1]), clampByte(args[2]))
		c.A = math.Max(0, math.Min(1, args[3]))
		c.HasAlpha = true
		return c, nil
	}
	return Color{}, syntaxError(`%s() takes 3 or 4 arguments, got %d`, name, len(args))
}

// ParsePaint parses fill/stroke style values: none, currentColor, a
// color, or a url(#id) reference with an optional fallback.
func ParsePaint(s string) (Value, error) {
	s = trim(s)
	switch s {
	case "none", "currentColor", "context-fill", "context-stroke":
		return Keyword(s), nil
	}
	if strings.HasPrefix(s, "url(") {
		ref, rest, err := scanFuncIRI(s)
		if err != nil {
			return nil, err
		}
		r, ok := ref.(Reference)
		if !ok {
			// external paint servers are kept as written, fallback included
			return String(s), nil
		}
		if rest = trim(rest); rest != "" {
			fb, err := ParsePaint(rest)
			if err != nil {
				return nil, err
			}
			if _, isRef := fb.(Reference); isRef {
				return nil, syntaxError(`fallback paint cannot be a reference`)
			}
			r.Fallback = fb
		}
		return r, nil
	}
	return ParseColor(s)
}
