package ssurt

import "bytes"

// Resolve produces the ParsedUrl that relative refers to when
// interpreted against base, following the ordered rules of §4.2:
// an absolute relative wins outright, a cross-scheme relative wins
// outright, otherwise the scheme, slashes and authority are inherited
// from base and the path is spliced against base's directory. Dot-segment
// normalization is not performed here; it is one of the canonicalizer
// operations.
func Resolve(base, relative *ParsedUrl) *ParsedUrl {
	u := relative.Clone()

	if len(u.Slashes()) > 0 {
		if len(u.Scheme()) == 0 {
			u.SetScheme(base.Scheme())
			u.SetColonAfterScheme(base.ColonAfterScheme())
		}

		return u
	}

	if len(u.Scheme()) > 0 && !bytes.EqualFold(u.Scheme(), base.Scheme()) {
		return u
	}

	u.SetScheme(base.Scheme())
	u.SetColonAfterScheme(base.ColonAfterScheme())
	u.SetSlashes(base.Slashes())
	u.SetUsername(base.Username())
	u.SetColonBeforePassword(base.ColonBeforePassword())
	u.SetPassword(base.Password())
	u.SetAtSign(base.AtSign())
	u.SetHost(base.Host())
	u.SetColonBeforePort(base.ColonBeforePort())
	u.SetPort(base.Port())

	if len(u.Path()) == 0 && len(relative.Host()) > 0 {
		u.SetPath(relative.Host())
	}

	if len(u.Path()) == 0 || u.Path()[0] == '/' {
		return u
	}

	u.SetPath(append(dirname(base.Path()), u.Path()...))

	return u
}

// dirname returns the substring of path up to and including its last
// '/', or empty if path has none. The result is a fresh copy so callers
// can safely append to it.
func dirname(path []byte) []byte {
	idx := bytes.LastIndexByte(path, '/')
	if idx < 0 {
		return nil
	}

	out := make([]byte, idx+1)
	copy(out, path[:idx+1])

	return out
}
