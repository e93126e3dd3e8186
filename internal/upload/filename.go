package upload

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SecureFilename reduces name to a safe ASCII base name: accents are folded,
// path separators and whitespace become "_", anything outside [A-Za-z0-9._-]
// is dropped and leading or trailing dots and underscores are trimmed. The
// result may be empty.
func SecureFilename(name string) string {
	var ascii strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < unicode.MaxASCII {
			ascii.WriteRune(r)
		}
	}
	s := ascii.String()
	s = strings.NewReplacer("/", " ", `\`, " ").Replace(s)
	s = strings.Join(strings.Fields(s), "_")

	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == '.', r == '_', r == '-':
			out.WriteRune(r)
		}
	}
	return strings.Trim(out.String(), "._")
}
