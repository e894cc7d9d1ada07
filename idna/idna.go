// Package idna bridges the canonicalizer to golang.org/x/net/idna for
// Punycoding special-scheme hosts. It exposes exactly the one operation
// the canonicalizer needs (toASCII); anything about IDNA table generation
// or profile tuning is out of this core's scope per spec.md §1.
package idna

import "golang.org/x/net/idna"

// profile matches the lenient, non-transitional behavior browsers use for
// host Punycoding: it doesn't reject input it can't confidently encode, it
// just does its best, mirroring the core's never-fail contract.
var profile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// ToASCII Punycodes host if necessary and returns the result. On any
// failure (malformed label, disallowed code point) it returns host
// unchanged — the canonicalizer never fails, it passes malformed input
// through verbatim per spec.md §7.
func ToASCII(host []byte) []byte {
	out, err := profile.ToASCII(string(host))
	if err != nil {
		return host
	}

	return []byte(out)
}
