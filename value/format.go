package value

import (
	"strconv"
)

func appendNumber(b []byte, f float64, prec int) []byte {
	start := len(b)
	if prec < 0 {
		b = strconv.AppendFloat(b, f, 'f', -1, 64)
	} else {
		b = strconv.AppendFloat(b, f, 'f', prec, 64)
		b = trimZeros(b, start)
	}
	if s := string(b[start:]); s == "-0" {
		b = append(b[:start], '0')
	}
	return b
}

func trimZeros(b []byte, start int) []byte {
	dot := -1
	for i := start; i < len(b); i++ {
		if b[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return b
	}
	end := len(b)
	for end > dot+1 && b[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return b[:end]
}

// FormatNumber renders a single number with the given precision.
func FormatNumber(f float64, prec int) string {
	return string(appendNumber(nil, f, prec))
}
