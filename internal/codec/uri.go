package codec

import "net/url"

// uriComponentSafe is the set of ASCII bytes that survive component encoding
// unescaped. It matches the encoding produced by the pages that originally
// minted these links, which is stricter than Go's query escaping for some
// bytes and looser for others (!, ~, *, ', parens stay literal; space does
// not become '+').
func uriComponentSafe(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s for safe embedding in a single URL
// component (path segment, query value, or fragment).
func EscapeComponent(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if !uriComponentSafe(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	out := make([]byte, 0, len(s)+2*hexCount)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if uriComponentSafe(b) {
			out = append(out, b)
		} else {
			out = append(out, '%', upperhex[b>>4], upperhex[b&0xf])
		}
	}
	return string(out)
}

// UnescapeComponent reverses EscapeComponent. A '+' stays a literal '+';
// malformed percent escapes are an error, which callers translate into
// "encoding absent".
func UnescapeComponent(s string) (string, error) {
	return url.PathUnescape(s)
}
