package canon

import (
	"bytes"
	"sort"

	"github.com/hueristiq/go-ssurt"
	"github.com/hueristiq/go-ssurt/pctcodec"
	"github.com/hueristiq/go-ssurt/schemes"
)

func defaultSchemeHttp(u *ssurt.ParsedUrl) {
	if len(u.Scheme()) > 0 {
		return
	}

	u.SetScheme([]byte("http"))
	u.SetColonAfterScheme([]byte(":"))

	// An input like "//host/path" already had its authority split out by
	// the first pass (slashes non-empty); only a path that still holds
	// the whole pathish is reparsed.
	if len(u.Path()) > 0 && len(u.Slashes()) == 0 {
		ssurt.ReparsePathish(u, u.Path())
	}
}

func pctDecodeRepeatedlyExceptQuery(u *ssurt.ParsedUrl) {
	u.SetScheme(pctcodec.DecodeFixedPoint(u.Scheme()))
	u.SetUsername(pctcodec.DecodeFixedPoint(u.Username()))
	u.SetPassword(pctcodec.DecodeFixedPoint(u.Password()))
	u.SetHost(pctcodec.DecodeFixedPoint(u.Host()))
	u.SetPort(pctcodec.DecodeFixedPoint(u.Port()))
	u.SetPath(pctcodec.DecodeFixedPoint(u.Path()))
	u.SetFragment(pctcodec.DecodeFixedPoint(u.Fragment()))
}

func fixHostDots(u *ssurt.ParsedUrl) {
	host := u.Host()
	if len(host) == 0 || host[0] == '[' {
		return
	}

	start := 0
	for start < len(host) && host[start] == '.' {
		start++
	}

	end := len(host)
	for end > start && host[end-1] == '.' {
		end--
	}

	host = host[start:end]

	collapsed := make([]byte, 0, len(host))

	prevDot := false

	for _, c := range host {
		if c == '.' {
			if prevDot {
				continue
			}

			prevDot = true
		} else {
			prevDot = false
		}

		collapsed = append(collapsed, c)
	}

	u.SetHost(collapsed)
}

func removeUserinfo(u *ssurt.ParsedUrl) {
	u.SetUsername(nil)
	u.SetColonBeforePassword(nil)
	u.SetPassword(nil)
	u.SetAtSign(nil)
}

func isLessDumbGeneralEscape(c byte) bool {
	return c <= 0x20 || c >= 0x7f || c == '#' || c == '%'
}

func lessDumbSchemeHostPortFragmentEscape(c byte) bool {
	return isLessDumbGeneralEscape(c)
}

func lessDumbUserinfoEscape(c byte) bool {
	return isLessDumbGeneralEscape(c) || c == ':' || c == '@'
}

func lessDumbPathEscape(c byte) bool {
	return isLessDumbGeneralEscape(c) || c == '?'
}

func lessDumbPctEncode(u *ssurt.ParsedUrl) {
	u.SetScheme(pctcodec.Encode(u.Scheme(), lessDumbSchemeHostPortFragmentEscape))

	if len(u.Host()) == 0 || u.Host()[0] != '[' {
		u.SetHost(pctcodec.Encode(u.Host(), lessDumbSchemeHostPortFragmentEscape))
	}

	u.SetPort(pctcodec.Encode(u.Port(), lessDumbSchemeHostPortFragmentEscape))
	u.SetFragment(pctcodec.Encode(u.Fragment(), lessDumbSchemeHostPortFragmentEscape))
	u.SetUsername(pctcodec.Encode(u.Username(), lessDumbUserinfoEscape))
	u.SetPassword(pctcodec.Encode(u.Password(), lessDumbUserinfoEscape))
	u.SetPath(pctcodec.Encode(u.Path(), lessDumbPathEscape))
}

func isLessDumbQueryEscape(c byte) bool {
	return c <= 0x20 || c >= 0x7f || c == '#' || c == '%' || c == '&' || c == '='
}

func lessDumbPctRecodeQuery(u *ssurt.ParsedUrl) {
	params := splitParams(u.Query())
	if params == nil {
		return
	}

	for i, p := range params {
		eq := bytes.IndexByte(p, '=')

		if eq < 0 {
			decoded := pctcodec.DecodeFixedPoint(p)
			params[i] = pctcodec.Encode(decoded, isLessDumbQueryEscape)

			continue
		}

		key := pctcodec.DecodeFixedPoint(p[:eq])
		val := pctcodec.DecodeFixedPoint(p[eq+1:])

		key = pctcodec.Encode(key, isLessDumbQueryEscape)
		val = pctcodec.Encode(val, isLessDumbQueryEscape)

		params[i] = append(append(key, '='), val...)
	}

	u.SetQuery(joinParams(params))
}

func collapseConsecutiveSlashes(u *ssurt.ParsedUrl) {
	if !schemes.IsSpecial(cleanSchemeOf(u)) {
		return
	}

	path := u.Path()

	out := make([]byte, 0, len(path))

	prevSlash := false

	for _, c := range path {
		if c == '/' {
			if prevSlash {
				continue
			}

			prevSlash = true
		} else {
			prevSlash = false
		}

		out = append(out, c)
	}

	u.SetPath(out)
}

func alphaReorderQuery(u *ssurt.ParsedUrl) {
	params := splitParams(u.Query())
	if params == nil {
		return
	}

	sort.SliceStable(params, func(i, j int) bool {
		return bytes.Compare(params[i], params[j]) < 0
	})

	u.SetQuery(joinParams(params))
}
