package value

import (
	"strings"
)

// Reference names another element by id. Func distinguishes the
// url(#id) notation from a bare "#id" href.
type Reference struct {
	ID       string
	Func     bool
	Fallback Value
}

func (Reference) Kind() Kind { return KindReference }
func (v Reference) String() string {
	return Format(v, -1)
}
func (v Reference) appendText(b []byte, prec int) []byte {
	if !v.Func {
		b = append(b, '#')
		return append(b, v.ID...)
	}
	b = append(b, "url(#"...)
	b = append(b, v.ID...)
	b = append(b, ')')
	if v.Fallback != nil {
		b = append(b, ' ')
		b = v.Fallback.appendText(b, prec)
	}
	return b
}

// scanFuncIRI parses a leading url(...) and returns the remaining text.
// References to other documents come back as String values.
func scanFuncIRI(s string) (Value, string, error) {
	if !strings.HasPrefix(s, "url(") {
		return nil, "", syntaxError(`expected url(`)
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return nil, "", syntaxError(`unterminated url(`)
	}
	inner := trim(s[4:end])
	if l := len(inner); l >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[l-1] == inner[0] {
		inner = inner[1 : l-1]
	}
	if !strings.HasPrefix(inner, "#") {
		return String(s[:end+1]), s[end+1:], nil
	}
	id := inner[1:]
	if id == "" {
		return nil, "", syntaxError(`empty fragment in url()`)
	}
	return Reference{ID: id, Func: true}, s[end+1:], nil
}

// ParseFuncIRI parses "none" or a url(#id) reference, as used by
// clip-path, mask, filter and the marker properties.
func ParseFuncIRI(s string) (Value, error) {
	s = trim(s)
	if s == "none" {
		return Keyword(s), nil
	}
	v, rest, err := scanFuncIRI(s)
	if err != nil {
		return nil, err
	}
	if trim(rest) != "" {
		return nil, syntaxError(`trailing data after url()`)
	}
	return v, nil
}

// ParseIRI parses an href. Fragment-only references become Reference
// values, everything else is kept as a String.
func ParseIRI(s string) (Value, error) {
	t := trim(s)
	if strings.HasPrefix(t, "#") {
		if len(t) == 1 {
			return nil, syntaxError(`empty fragment`)
		}
		return Reference{ID: t[1:]}, nil
	}
	return String(s), nil
}
