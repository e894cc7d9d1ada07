package canon

import (
	"bytes"

	"github.com/hueristiq/go-ssurt"
	"github.com/hueristiq/go-ssurt/idna"
	"github.com/hueristiq/go-ssurt/ipaddr"
	"github.com/hueristiq/go-ssurt/pctcodec"
	"github.com/hueristiq/go-ssurt/schemes"
)

func removeLeadingTrailingJunk(u *ssurt.ParsedUrl) {
	u.SetLeadingJunk(nil)
	u.SetTrailingJunk(nil)
}

func removeTabsAndNewlines(u *ssurt.ParsedUrl) {
	u.SetScheme(stripCRLFTAB(u.Scheme()))
	u.SetSlashes(stripCRLFTAB(u.Slashes()))
	u.SetUsername(stripCRLFTAB(u.Username()))
	u.SetPassword(stripCRLFTAB(u.Password()))
	u.SetHost(stripCRLFTAB(u.Host()))
	u.SetPort(stripCRLFTAB(u.Port()))
	u.SetPath(stripCRLFTAB(u.Path()))
	u.SetQuery(stripCRLFTAB(u.Query()))
	u.SetFragment(stripCRLFTAB(u.Fragment()))
}

func lowercaseScheme(u *ssurt.ParsedUrl) {
	u.SetScheme(bytes.ToLower(u.Scheme()))
}

func cleanSchemeOf(u *ssurt.ParsedUrl) string {
	return string(bytes.ToLower(u.Scheme()))
}

func fixBackslashes(u *ssurt.ParsedUrl) {
	if !schemes.IsSpecial(cleanSchemeOf(u)) {
		return
	}

	u.SetSlashes(bytes.ReplaceAll(u.Slashes(), []byte{'\\'}, []byte{'/'}))
	u.SetPath(bytes.ReplaceAll(u.Path(), []byte{'\\'}, []byte{'/'}))
}

func elideDefaultPort(u *ssurt.ParsedUrl) {
	scheme := cleanSchemeOf(u)
	if !schemes.IsSpecial(scheme) {
		return
	}

	def := schemes.DefaultPort(scheme)
	if def == schemes.NoDefaultPort {
		return
	}

	n, ok := parseUintLenient(u.Port())
	if !ok || n != def {
		return
	}

	u.SetPort(nil)
	u.SetColonBeforePort(nil)
}

func cleanUpUserinfo(u *ssurt.ParsedUrl) {
	if len(u.AtSign()) == 0 {
		u.SetUsername(nil)
		u.SetColonBeforePassword(nil)
		u.SetPassword(nil)
	}

	if len(u.ColonBeforePassword()) == 0 {
		u.SetPassword(nil)
	}
}

func twoSlashes(u *ssurt.ParsedUrl) {
	scheme := cleanSchemeOf(u)
	if scheme != "file" && !schemes.IsSpecial(scheme) {
		return
	}

	if len(u.Slashes()) == 0 {
		return
	}

	u.SetSlashes([]byte("//"))
}

func pctDecode(u *ssurt.ParsedUrl) {
	u.SetScheme(pctcodec.Decode(u.Scheme()))
	u.SetUsername(pctcodec.Decode(u.Username()))
	u.SetPassword(pctcodec.Decode(u.Password()))
	u.SetHost(pctcodec.Decode(u.Host()))
	u.SetPort(pctcodec.Decode(u.Port()))
	u.SetPath(pctcodec.Decode(u.Path()))
	u.SetQuery(pctcodec.Decode(u.Query()))
	u.SetFragment(pctcodec.Decode(u.Fragment()))
}

func normalizeIpAddress(u *ssurt.ParsedUrl) {
	host := u.Host()
	if len(host) == 0 || host[0] == '[' {
		return
	}

	n := ipaddr.ParseIPv4(string(host))
	if n == ipaddr.NotIPv4 {
		return
	}

	u.SetHost([]byte(ipaddr.FormatIPv4(n)))
}

func punycodeSpecialHost(u *ssurt.ParsedUrl) {
	scheme := cleanSchemeOf(u)
	if scheme == "file" || !schemes.IsSpecial(scheme) {
		return
	}

	if len(u.Host()) == 0 || u.Host()[0] == '[' {
		return
	}

	u.SetHost(idna.ToASCII(u.Host()))
}

// WHATWG percent-encode sets, one per component, as used by the fetch
// and URL living standards: each is built on the C0-control-and-above
// set plus a handful of component-specific reserved bytes, except the
// host set, which is that set without 0x7F and with no extra bytes.
func isC0OrAbove(c byte) bool {
	return c <= 0x1f || c >= 0x7f
}

func whatwgUserinfoEscape(c byte) bool {
	if isC0OrAbove(c) {
		return true
	}

	switch c {
	case ' ', '"', '#', '<', '>', '?', '`', '{', '}', '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|':
		return true
	}

	return false
}

func whatwgHostEscape(c byte) bool {
	return isC0OrAbove(c) && c != 0x7f
}

func whatwgPathEscape(c byte) bool {
	if isC0OrAbove(c) {
		return true
	}

	switch c {
	case ' ', '"', '#', '<', '>', '?', '`', '{', '}':
		return true
	}

	return false
}

func whatwgQueryEscape(c byte) bool {
	if isC0OrAbove(c) {
		return true
	}

	switch c {
	case ' ', '"', '#', '<', '>':
		return true
	}

	return false
}

func whatwgFragmentEscape(c byte) bool {
	if isC0OrAbove(c) {
		return true
	}

	switch c {
	case ' ', '"', '<', '>', '`':
		return true
	}

	return false
}

func pctEncodeWhatwg(u *ssurt.ParsedUrl) {
	u.SetUsername(pctcodec.Encode(u.Username(), whatwgUserinfoEscape))
	u.SetPassword(pctcodec.Encode(u.Password(), whatwgUserinfoEscape))

	if len(u.Host()) > 0 && u.Host()[0] != '[' {
		u.SetHost(pctcodec.Encode(u.Host(), whatwgHostEscape))
	}

	u.SetPath(pctcodec.Encode(u.Path(), whatwgPathEscape))
	u.SetQuery(pctcodec.Encode(u.Query(), whatwgQueryEscape))
	u.SetFragment(pctcodec.Encode(u.Fragment(), whatwgFragmentEscape))
}

func leadingSlash(u *ssurt.ParsedUrl) {
	if !schemes.IsSpecial(cleanSchemeOf(u)) {
		return
	}

	path := u.Path()
	if len(path) == 0 || path[0] == '/' {
		return
	}

	u.SetPath(append([]byte("/"), path...))
}

func normalizePathDotsOp(u *ssurt.ParsedUrl) {
	if !schemes.IsSpecial(cleanSchemeOf(u)) {
		return
	}

	u.SetPath(normalizePathDots(u.Path()))
}

func emptyPathToSlash(u *ssurt.ParsedUrl) {
	if !schemes.IsSpecial(cleanSchemeOf(u)) {
		return
	}

	if len(u.Path()) == 0 {
		u.SetPath([]byte("/"))
	}
}
