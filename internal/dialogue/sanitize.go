package dialogue

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText repairs text for display: invalid UTF-8 sequences become
// U+FFFD and control characters other than newline, carriage return and tab
// are removed. The bool reports whether anything was changed.
func NormalizeText(s string) (string, bool) {
	if utf8.ValidString(s) && strings.IndexFunc(s, stripped) < 0 {
		return s, false
	}
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	s = strings.Map(func(r rune) rune {
		if stripped(r) {
			return -1
		}
		return r
	}, s)
	return s, true
}

// NormalizeDocument repairs a raw scene document whose bytes are not valid
// UTF-8, such as a Latin-1 file, so it can still be decoded. Each invalid
// sequence becomes U+FFFD. The bool reports whether anything was changed.
func NormalizeDocument(data []byte) ([]byte, bool) {
	if utf8.Valid(data) {
		return data, false
	}
	return bytes.ToValidUTF8(data, []byte(string(utf8.RuneError))), true
}

func stripped(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.IsControl(r)
}

// normalizeLine repairs every displayed field of line in place and reports
// whether any of them changed.
func normalizeLine(line *Line) bool {
	changed := false
	fix := func(s *string) {
		if out, ok := NormalizeText(*s); ok {
			*s = out
			changed = true
		}
	}
	fix(&line.Speaker)
	fix(&line.Text)
	for i := range line.Options {
		fix(&line.Options[i].Choice)
	}
	return changed
}
