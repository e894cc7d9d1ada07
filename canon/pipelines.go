package canon

// WHATWG mirrors the URL living standard's basic URL parser cleanup
// steps: strip junk and control bytes, normalize case/slashes/ports,
// Punycode the host, percent-encode each component, then normalize the
// path.
var WHATWG = Pipeline{
	Name: "WHATWG",
	Ops: []Op{
		removeLeadingTrailingJunk,
		removeTabsAndNewlines,
		lowercaseScheme,
		elideDefaultPort,
		cleanUpUserinfo,
		twoSlashes,
		normalizeIpAddress,
		punycodeSpecialHost,
		pctEncodeWhatwg,
		fixBackslashes,
		leadingSlash,
		normalizePathDotsOp,
		emptyPathToSlash,
	},
}

// SemanticPrecise goes further than WHATWG for deduplication purposes:
// it assumes a missing scheme means http, decodes percent-escapes back
// to their raw bytes wherever that's reversible, drops userinfo
// entirely, and sorts query parameters so that two URLs differing only
// in parameter order compare equal.
var SemanticPrecise = Pipeline{
	Name: "SemanticPrecise",
	Ops: []Op{
		removeLeadingTrailingJunk,
		defaultSchemeHttp,
		removeTabsAndNewlines,
		lowercaseScheme,
		elideDefaultPort,
		cleanUpUserinfo,
		twoSlashes,
		pctDecodeRepeatedlyExceptQuery,
		normalizeIpAddress,
		fixHostDots,
		punycodeSpecialHost,
		removeUserinfo,
		lessDumbPctEncode,
		lessDumbPctRecodeQuery,
		fixBackslashes,
		leadingSlash,
		normalizePathDotsOp,
		collapseConsecutiveSlashes,
		emptyPathToSlash,
		alphaReorderQuery,
	},
}

// Aggressive runs every SemanticPrecise step, then applies fuzzy-match
// heuristics on top: folding https to http, stripping a "www" prefix,
// lowercasing path and query, removing known session-id query
// parameters and ASP.NET session path segments, and dropping a trailing
// slash and empty query marker.
var Aggressive = Pipeline{
	Name: "Aggressive",
	Ops: append(append([]Op{}, SemanticPrecise.Ops...),
		httpsToHttp,
		stripWww,
		lowercasePath,
		lowercaseQuery,
		stripSessionIdsFromQuery,
		stripSessionIdsFromPath,
		stripTrailingSlashUnlessEmpty,
		removeRedundantAmpersandsFromQuery,
		omitQuestionMarkIfQueryEmpty,
		alphaReorderQuery,
	),
}
