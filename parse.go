package ssurt

import (
	"regexp"
	"strings"

	"github.com/hueristiq/go-ssurt/schemes"
)

// topLevelRe splits junk-stripped input into scheme, colon, pathish,
// query and fragment. Scheme and colon are nested inside one outer
// optional group, so the regex can never match a colon without a
// scheme alongside it: colonAfterScheme is empty whenever scheme is.
// Every pattern here uses (?s) so that '.' also matches LF bytes.
var topLevelRe = regexp.MustCompile(`(?s)^(([A-Za-z][^:]*)(:))?([^?#]*)(?:(\?)([^#]*))?(?:(#)(.*))?$`)

// filePathishRe recognizes the "//" (or "\\", mixed, junk-interspersed)
// prefix that introduces a file URL's host, which for "file" is either
// empty or a UNC-style machine name.
var filePathishRe = regexp.MustCompile(`(?s)^([\r\n\t]*(?:[/\\][\r\n\t]*){2})([^/\\]*)([/\\].*)?$`)

// specialPathishRe splits the pathish segment of a special (non-file)
// scheme into its slashes run, authority and path. It always matches
// because every one of its groups is optional or zero-width-capable.
var specialPathishRe = regexp.MustCompile(`(?s)^([/\\\r\n\t]*)([^/\\]*)([/\\].*)?$`)

// nonspecialPathishRe recognizes the "//" prefix of a non-special,
// non-file URL that nonetheless carries an authority (e.g. "ssh://").
var nonspecialPathishRe = regexp.MustCompile(`(?s)^([\r\n\t]*(?:/[\r\n\t]*){2})([^/]*)(/.*)?$`)

// hostPortRe splits the trailing host[:port] part of an authority once
// any userinfo and its '@' have been removed. The host alternative
// tries a bracketed IPv6 literal first so a port-looking suffix inside
// the brackets is never mistaken for a real port separator.
var hostPortRe = regexp.MustCompile(`(?s)^(\[[^\]]*\]|[^:]*)(?:(:)(.*))?$`)

const junkBytes = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f\x20"

// ParseString parses the bytes of s exactly as they are stored in the
// Go string; runes are not narrowed to single Latin-1 bytes, so a
// non-ASCII character stays its UTF-8 byte sequence. Callers who already
// have raw bytes should call Parse instead so no copy is made.
func ParseString(s string) *ParsedUrl {
	return Parse([]byte(s))
}

// Parse decomposes raw into a ParsedUrl. It never fails: empty input
// parses to a ParsedUrl with every slot empty, and input matching none
// of the scheme-dependent pathish forms simply becomes an opaque path.
// Parse never percent-decodes or validates; canonicalization does that.
func Parse(raw []byte) *ParsedUrl {
	u := &ParsedUrl{}

	for _, set := range []func([]byte){
		u.SetLeadingJunk, u.SetScheme, u.SetColonAfterScheme, u.SetSlashes,
		u.SetUsername, u.SetColonBeforePassword, u.SetPassword, u.SetAtSign,
		u.SetHost, u.SetColonBeforePort, u.SetPort,
		u.SetPath, u.SetQuestionMark, u.SetQuery, u.SetHashSign, u.SetFragment,
		u.SetTrailingJunk,
	} {
		set(nil)
	}

	core := raw

	leadEnd := 0
	for leadEnd < len(core) && isJunkByte(core[leadEnd]) {
		leadEnd++
	}

	trailStart := len(core)
	for trailStart > leadEnd && isJunkByte(core[trailStart-1]) {
		trailStart--
	}

	u.SetLeadingJunk(core[:leadEnd])
	u.SetTrailingJunk(core[trailStart:])
	core = core[leadEnd:trailStart]

	m := topLevelRe.FindSubmatch(core)
	if m == nil {
		invariantViolation("topLevelSplit", core)
	}

	u.SetScheme(m[2])
	u.SetColonAfterScheme(m[3])
	pathish := m[4]
	u.SetQuestionMark(m[5])
	u.SetQuery(m[6])
	u.SetHashSign(m[7])
	u.SetFragment(m[8])

	parsePathish(u, pathish)

	return u
}

func isJunkByte(c byte) bool {
	return strings.IndexByte(junkBytes, c) >= 0
}

// cleanScheme returns the ASCII-lowercased scheme with CR, LF and TAB
// removed, the form used to decide special-scheme handling.
func cleanScheme(scheme []byte) string {
	out := make([]byte, 0, len(scheme))

	for _, c := range scheme {
		switch c {
		case '\r', '\n', '\t':
			continue
		}

		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		out = append(out, c)
	}

	return string(out)
}

// ReparsePathish reruns the pathish split (step 3 of Parse) against
// pathish and writes slashes/host/path (and, if an authority is found,
// the userinfo/port slots) into u. Canonicalizer operations that
// recover a scheme after the fact — defaultSchemeHttp assigning "http"
// to a scheme-less input such as "host/path" that the first pass folded
// whole into path — call this to re-derive the authority the first pass
// had no scheme to recognize.
func ReparsePathish(u *ParsedUrl, pathish []byte) {
	parsePathish(u, pathish)
}

func parsePathish(u *ParsedUrl, pathish []byte) {
	scheme := cleanScheme(u.Scheme())

	switch {
	case scheme == "file":
		m := filePathishRe.FindSubmatch(pathish)
		if m == nil {
			u.SetPath(pathish)

			return
		}

		u.SetSlashes(m[1])
		u.SetHost(m[2])
		u.SetPath(m[3])

	case schemes.IsSpecial(scheme):
		m := specialPathishRe.FindSubmatch(pathish)
		if m == nil {
			invariantViolation("specialPathishSplit", pathish)
		}

		u.SetSlashes(m[1])
		u.SetPath(m[3])
		parseAuthority(u, m[2])

	default:
		m := nonspecialPathishRe.FindSubmatch(pathish)
		if m == nil {
			u.SetPath(pathish)

			return
		}

		u.SetSlashes(m[1])
		u.SetPath(m[3])
		parseAuthority(u, m[2])
	}
}

// parseAuthority splits authority into userinfo, host and port. The
// userinfo/host split uses the last '@' in the text (an '@' can
// legally appear earlier inside a password), and the username/password
// split uses the first ':' of the userinfo, rather than a single
// monolithic regex, following the same plain-scan-plus-regex split the
// teacher's splitHostPort uses for host/port.
func parseAuthority(u *ParsedUrl, authority []byte) {
	text := authority

	at := strings.LastIndexByte(string(text), '@')
	if at >= 0 {
		userinfo := text[:at]
		u.SetAtSign(text[at : at+1])
		text = text[at+1:]

		if colon := strings.IndexByte(string(userinfo), ':'); colon >= 0 {
			u.SetUsername(userinfo[:colon])
			u.SetColonBeforePassword(userinfo[colon : colon+1])
			u.SetPassword(userinfo[colon+1:])
		} else {
			u.SetUsername(userinfo)
		}
	}

	m := hostPortRe.FindSubmatch(text)
	if m == nil {
		invariantViolation("authoritySplit", text)
	}

	u.SetHost(m[1])
	u.SetColonBeforePort(m[2])
	u.SetPort(m[3])
}
