// Package encoding resolves the charset label of an XML declaration to
// a decoder. The common labels are looked up in golang.org/x/text
// tables directly; anything else goes through the WHATWG label
// registry in golang.org/x/net/html/charset.
package encoding

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

var table = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf-8":             unicode.UTF8,
	"utf-16":            unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16be":          unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16le":          unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"euc-jp":            japanese.EUCJP,
	"shift_jis":         japanese.ShiftJIS,
	"shift-jis":         japanese.ShiftJIS,
	"iso-2022-jp":       japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euc-kr":            korean.EUCKR,
	"gbk":               simplifiedchinese.GBK,
	"gb18030":           simplifiedchinese.GB18030,
	"hz-gb2312":         simplifiedchinese.HZGB2312,
	"iso-8859-1":        charmap.Windows1252,
	"latin1":            charmap.Windows1252,
	"iso-8859-2":        charmap.ISO8859_2,
	"iso-8859-5":        charmap.ISO8859_5,
	"iso-8859-15":       charmap.ISO8859_15,
	"koi8-r":            charmap.KOI8R,
	"windows-1250":      charmap.Windows1250,
	"windows-1251":      charmap.Windows1251,
	"windows-1252":      charmap.Windows1252,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
}

// Load returns the encoding for a label, or nil.
func Load(name string) enc.Encoding {
	label := strings.ToLower(strings.TrimSpace(name))
	if e, ok := table[label]; ok {
		return e
	}
	if e, _ := charset.Lookup(label); e != nil {
		return e
	}
	return nil
}

// NewReader wraps input so that it yields UTF-8. It has the signature
// of encoding/xml's Decoder.CharsetReader.
func NewReader(label string, input io.Reader) (io.Reader, error) {
	e := Load(label)
	if e == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, `charset %q`, label)
	}
	if e == unicode.UTF8 {
		return input, nil
	}
	return e.NewDecoder().Reader(input), nil
}
