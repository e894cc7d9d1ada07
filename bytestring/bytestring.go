// Package bytestring provides a byte-transparent string type.
//
// Go strings are already byte sequences, so nothing here decodes or
// validates UTF-8; the point of String is to make that guarantee explicit
// at the type level and to gather the handful of ASCII-only operations
// (lowercase, regex match/replace, substring) that the URL core needs
// without ever routing a byte through code-point decoding.
package bytestring

import "regexp"

// String is an immutable-by-convention view over a byte sequence spanning
// the full 0x00-0xFF range. Every constructor and method treats its input
// as opaque bytes; none of them interpret multi-byte UTF-8 sequences.
type String []byte

// FromString wraps a Go string without any decoding. Every byte of s
// survives unchanged.
func FromString(s string) String {
	return String(s)
}

// String returns the Go string form of b, byte-for-byte.
func (b String) String() string {
	return string(b)
}

// Len returns the number of bytes in b.
func (b String) Len() int {
	return len(b)
}

// At returns the byte at index i.
func (b String) At(i int) byte {
	return b[i]
}

// IsEmpty reports whether b has zero length.
func (b String) IsEmpty() bool {
	return len(b) == 0
}

// Equals reports whether b and other hold identical bytes.
func (b String) Equals(other String) bool {
	if len(b) != len(other) {
		return false
	}

	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}

	return true
}

// Concat returns a new String holding the concatenation of parts, in order.
func Concat(parts ...String) String {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	out := make(String, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Sub returns the byte range [start, end) of b. Like a Go slice expression,
// this shares the underlying array; callers that mutate the result must
// copy first.
func (b String) Sub(start, end int) String {
	return b[start:end]
}

// Clone returns a copy of b backed by a new array.
func (b String) Clone() String {
	out := make(String, len(b))
	copy(out, b)

	return out
}

// LowerASCII returns a copy of b with ASCII bytes 'A'-'Z' lowercased. Bytes
// outside that range, including all non-ASCII bytes, pass through
// unchanged.
func (b String) LowerASCII() String {
	out := make(String, len(b))

	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		out[i] = c
	}

	return out
}

// Find returns the index pairs of the leftmost match of re in b and of
// its submatches (as regexp.Regexp.FindSubmatchIndex), or nil if there
// is none.
// re must have been compiled for byte-slice matching (regexp.Regexp
// operates byte-wise regardless of pattern source, so any *regexp.Regexp
// works here).
func (b String) Find(re *regexp.Regexp) []int {
	return re.FindSubmatchIndex(b)
}

// ReplaceAll returns a copy of b with every match of re replaced by repl,
// following regexp.Regexp.ReplaceAll's $-expansion rules.
func (b String) ReplaceAll(re *regexp.Regexp, repl String) String {
	return String(re.ReplaceAll(b, repl))
}

// Match reports whether re matches anywhere in b.
func (b String) Match(re *regexp.Regexp) bool {
	return re.Match(b)
}
