package engine

import (
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Charset is the closed set of output encodings the extractor supports.
type Charset int

const (
	CharsetUTF8 Charset = iota
	CharsetUSASCII
	CharsetUTF16BE
)

func (c Charset) String() string {
	switch c {
	case CharsetUTF8:
		return "UTF-8"
	case CharsetUSASCII:
		return "US-ASCII"
	case CharsetUTF16BE:
		return "UTF-16BE"
	}
	return "invalid"
}

// ValidCharset reports whether c is a member of the closed charset set.
func ValidCharset(c Charset) bool {
	return c >= CharsetUTF8 && c <= CharsetUTF16BE
}

// encoderFor returns the transformer that converts UTF-8 content into the
// requested output charset, or nil for the identity (UTF-8) case. ASCII
// output substitutes '?' for every code point above 0x7F rather than failing.
func encoderFor(c Charset) transform.Transformer {
	switch c {
	case CharsetUSASCII:
		return runes.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return '?'
			}
			return r
		})
	case CharsetUTF16BE:
		return textunicode.UTF16(textunicode.BigEndian, textunicode.IgnoreBOM).NewEncoder()
	}
	return nil
}
