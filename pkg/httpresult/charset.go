package httpresult

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// charsets is the allow-list of accepted charset parameters.
// utf-16 and utf-32 without an explicit byte order honour a BOM and
// default to big endian.
var charsets = map[string]encoding.Encoding{
	"utf-8":        encoding.Nop,
	"utf8":         encoding.Nop,
	"us-ascii":     encoding.Nop,
	"ascii":        encoding.Nop,
	"utf-16":       unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-32":       utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	"utf-32le":     utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32be":     utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SupportedCharset reports whether name is on the allow-list, ignoring case.
// An empty name means UTF-8 and is supported.
func SupportedCharset(name string) bool {
	if name == "" {
		return true
	}
	_, ok := charsets[strings.ToLower(name)]
	return ok
}

// toUTF8 transcodes body from the given charset. The caller must have checked
// the charset with SupportedCharset.
func toUTF8(body []byte, charset string) ([]byte, error) {
	if enc, ok := charsets[strings.ToLower(charset)]; ok && enc != encoding.Nop {
		out, err := enc.NewDecoder().Bytes(body)
		if err != nil {
			return nil, err
		}
		body = out
	}
	return bytes.TrimPrefix(body, utf8BOM), nil
}
