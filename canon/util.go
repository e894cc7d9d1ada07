package canon

import (
	"bytes"
)

// stripCRLFTAB removes every CR, LF and TAB byte from b.
func stripCRLFTAB(b []byte) []byte {
	out := make([]byte, 0, len(b))

	for _, c := range b {
		switch c {
		case '\r', '\n', '\t':
			continue
		}

		out = append(out, c)
	}

	return out
}

// parseUintLenient parses b as an unsigned decimal integer, tolerating
// leading zeros. ok is false if b is empty or contains a non-digit.
func parseUintLenient(b []byte) (n int, ok bool) {
	if len(b) == 0 {
		return 0, false
	}

	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}

		n = n*10 + int(c-'0')
	}

	return n, true
}

// splitParams splits a query string on '&', preserving empty parts so
// callers can distinguish "a&&b" from "a&b" when that matters.
func splitParams(query []byte) [][]byte {
	if len(query) == 0 {
		return nil
	}

	return bytes.Split(query, []byte{'&'})
}

func joinParams(params [][]byte) []byte {
	return bytes.Join(params, []byte{'&'})
}
