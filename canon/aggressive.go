package canon

import (
	"bytes"
	"regexp"

	"github.com/hueristiq/go-ssurt"
	"github.com/hueristiq/go-ssurt/bytestring"
)

func httpsToHttp(u *ssurt.ParsedUrl) {
	if !bytes.EqualFold(u.Scheme(), []byte("https")) {
		return
	}

	u.SetScheme([]byte("http"))
}

var stripWwwRe = regexp.MustCompile(`(?i)^www[0-9]*\.`)

func stripWww(u *ssurt.ParsedUrl) {
	u.SetHost(stripWwwRe.ReplaceAll(u.Host(), nil))
}

func lowercasePath(u *ssurt.ParsedUrl) {
	u.SetPath(bytestring.String(u.Path()).LowerASCII())
}

func lowercaseQuery(u *ssurt.ParsedUrl) {
	u.SetQuery(bytestring.String(u.Query()).LowerASCII())
}

// sessionIDQueryPatterns match an entire query parameter (name=value)
// that is a known session-id carrier. Matching is case-insensitive and
// anchored to the whole parameter, since stripSessionIdsFromQuery
// operates on one '&'-delimited piece at a time rather than scanning
// the raw query text (Go's regexp has no lookbehind to express "&" or
// string-bounds on both sides directly).
var sessionIDQueryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^jsessionid=[0-9a-z$]{10,}$`),
	regexp.MustCompile(`(?i)^sessionid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^phpsessid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^sid=[0-9a-z]{16,}$`),
	regexp.MustCompile(`(?i)^aspsessionid[a-z]{8}=[0-9a-z]{16,}$`),
}

var cfidRe = regexp.MustCompile(`(?i)^cfid=[0-9]+$`)

var cftokenRe = regexp.MustCompile(`(?i)^cftoken=[0-9a-z-]+$`)

func stripSessionIdsFromQuery(u *ssurt.ParsedUrl) {
	params := splitParams(u.Query())
	if params == nil {
		return
	}

	kept := make([][]byte, 0, len(params))

	for i := 0; i < len(params); i++ {
		p := params[i]

		if i+1 < len(params) && cfidRe.Match(p) && cftokenRe.Match(params[i+1]) {
			i++

			continue
		}

		matched := false

		for _, re := range sessionIDQueryPatterns {
			if re.Match(p) {
				matched = true

				break
			}
		}

		if !matched {
			kept = append(kept, p)
		}
	}

	u.SetQuery(joinParams(kept))
}

var (
	aspxNumericSegmentRe = regexp.MustCompile(`/\([0-9a-zA-Z]{24}\)(?:/|$)`)
	aspxLetterSegmentRe  = regexp.MustCompile(`/(?:\([a-zA-Z]\([0-9a-zA-Z]{24}\)\))+(?:/|$)`)
	aspxTrailingJsessRe  = regexp.MustCompile(`(?i);jsessionid=[0-9a-z]{32}$`)
)

// stripSessionIdsFromPath removes ASP.NET cookieless-session path
// segments from .aspx paths: a lone "(24 alphanumerics)/" segment, a
// run of "(letter(24 alphanumerics))/" segments, and a trailing
// ";jsessionid=..." suffix (checked unconditionally, not just on .aspx
// paths).
func stripSessionIdsFromPath(u *ssurt.ParsedUrl) {
	path := u.Path()

	if bytes.HasSuffix(bytes.ToLower(path), []byte(".aspx")) {
		path = aspxLetterSegmentRe.ReplaceAll(path, []byte("/"))
		path = aspxNumericSegmentRe.ReplaceAll(path, []byte("/"))
	}

	path = aspxTrailingJsessRe.ReplaceAll(path, nil)

	u.SetPath(path)
}

func removeRedundantAmpersandsFromQuery(u *ssurt.ParsedUrl) {
	params := splitParams(u.Query())
	if params == nil {
		return
	}

	kept := params[:0]

	for _, p := range params {
		if len(p) == 0 {
			continue
		}

		kept = append(kept, p)
	}

	u.SetQuery(joinParams(kept))
}

func stripTrailingSlashUnlessEmpty(u *ssurt.ParsedUrl) {
	path := u.Path()
	if len(path) > 1 && path[len(path)-1] == '/' {
		u.SetPath(path[:len(path)-1])
	}
}

func omitQuestionMarkIfQueryEmpty(u *ssurt.ParsedUrl) {
	if len(u.Query()) == 0 {
		u.SetQuestionMark(nil)
	}
}
