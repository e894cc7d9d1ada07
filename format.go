package ssurt

import (
	"bytes"

	"github.com/hueristiq/go-ssurt/ipaddr"
)

// String concatenates all 17 slots in input order, reproducing the
// original bytes exactly when called on a freshly parsed, uncanonicalized
// ParsedUrl.
func (u *ParsedUrl) String() string {
	return string(u.Bytes())
}

// Bytes is the byte-slice form of String.
func (u *ParsedUrl) Bytes() []byte {
	return concat(
		u.leadingJunk, u.scheme, u.colonAfterScheme, u.slashes,
		u.username, u.colonBeforePassword, u.password, u.atSign,
		u.host, u.colonBeforePort, u.port,
		u.path, u.questionMark, u.query, u.hashSign, u.fragment,
		u.trailingJunk,
	)
}

// HostPort returns "host" or "host:port", matching whatever the port
// slot currently holds (callers wanting the scheme's default port
// elided should canonicalize first).
func (u *ParsedUrl) HostPort() []byte {
	if len(u.port) == 0 {
		return append([]byte(nil), u.host...)
	}

	return concat(u.host, []byte(":"), u.port)
}

// SSURT returns the sort-friendly, host-reversed serialization: the same
// slot order as String, except the host slot is run through ssurtHost
// first so that a lexicographic sort over SSURT keys groups a host with
// its subdomains ("www.example.com" sorts as "com,example,www,").
func (u *ParsedUrl) SSURT() []byte {
	return concat(
		u.leadingJunk, u.scheme, u.colonAfterScheme, u.slashes,
		u.username, u.colonBeforePassword, u.password, u.atSign,
		ssurtHost(u.host), u.colonBeforePort, u.port,
		u.path, u.questionMark, u.query, u.hashSign, u.fragment,
		u.trailingJunk,
	)
}

// ssurtHost reverses the dot-delimited segments of h so that a sort over
// SSURT keys groups a host with its subdomains. Hosts that are already
// sort-friendly on their own — empty, a bracketed IPv6 literal, or a
// literal IPv4 address — are returned unchanged.
func ssurtHost(h []byte) []byte {
	if len(h) == 0 || h[0] == '[' {
		return h
	}

	if ipaddr.ParseIPv4(string(h)) != ipaddr.NotIPv4 {
		return h
	}

	return reverseHost(h)
}

// reverseHost reverses the order of the dot-delimited segments of h,
// replaces every ',' inside a segment with '.', rejoins the segments
// with ',' and appends a trailing ','. "x,y.b.c" becomes "c,b,x.y,".
func reverseHost(h []byte) []byte {
	segments := bytes.Split(h, []byte{'.'})

	out := make([]byte, 0, len(h)+1)

	for i := len(segments) - 1; i >= 0; i-- {
		out = append(out, bytes.ReplaceAll(segments[i], []byte{','}, []byte{'.'})...)
		out = append(out, ',')
	}

	return out
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
