// Package ssurt implements the tolerant URL parser, canonicalization
// pipelines and SSURT serializer described for web-archival
// deduplication and indexing. See parse.go, resolve.go, format.go and
// the canon subpackage.
package ssurt

import "github.com/hueristiq/go-ssurt/bytestring"

// ParsedUrl is the central data model: a record of 17 byte-string slots
// that, concatenated in the order below, reproduce the original input
// byte-for-byte before any canonicalization runs.
//
//	leadingJunk, scheme, colonAfterScheme, slashes,
//	username, colonBeforePassword, password, atSign,
//	host, colonBeforePort, port,
//	path, questionMark, query, hashSign, fragment,
//	trailingJunk
//
// No slot of a ParsedUrl returned by Parse, and no slot written through
// a setter, is nil; an absent field is the empty bytestring.String,
// never a distinguished null. ParsedUrl is a plain value: copying it
// (Clone) is cheap and safe because every canonicalizer operation
// replaces a slot wholesale rather than mutating its backing bytes.
type ParsedUrl struct {
	leadingJunk         bytestring.String
	scheme              bytestring.String
	colonAfterScheme    bytestring.String
	slashes             bytestring.String
	username            bytestring.String
	colonBeforePassword bytestring.String
	password            bytestring.String
	atSign              bytestring.String
	host                bytestring.String
	colonBeforePort     bytestring.String
	port                bytestring.String
	path                bytestring.String
	questionMark        bytestring.String
	query               bytestring.String
	hashSign            bytestring.String
	fragment            bytestring.String
	trailingJunk        bytestring.String
}

// Clone returns a copy of u. Because every slot is replaced wholesale by
// canonicalizer operations rather than mutated byte-by-byte, the shallow
// struct copy is sufficient to make the clone independent of u from the
// caller's point of view.
func (u *ParsedUrl) Clone() *ParsedUrl {
	c := *u

	return &c
}

func orEmpty(b []byte) bytestring.String {
	if b == nil {
		return bytestring.String{}
	}

	return bytestring.String(b)
}

// LeadingJunk returns the bytes in 0x00-0x20 stripped from the front of
// the input before parsing began.
func (u *ParsedUrl) LeadingJunk() []byte { return u.leadingJunk }

// SetLeadingJunk replaces the leading-junk slot. A nil b is stored as
// empty, never as a null.
func (u *ParsedUrl) SetLeadingJunk(b []byte) { u.leadingJunk = orEmpty(b) }

// Scheme returns the raw scheme bytes, exactly as they appeared in the
// input (case and all, before lowercaseScheme runs).
func (u *ParsedUrl) Scheme() []byte { return u.scheme }

// SetScheme replaces the scheme slot.
func (u *ParsedUrl) SetScheme(b []byte) { u.scheme = orEmpty(b) }

// ColonAfterScheme is either empty or the single byte ":".
func (u *ParsedUrl) ColonAfterScheme() []byte { return u.colonAfterScheme }

// SetColonAfterScheme replaces the colon-after-scheme slot.
func (u *ParsedUrl) SetColonAfterScheme(b []byte) { u.colonAfterScheme = orEmpty(b) }

// Slashes holds whatever run of '/', '\\', CR, LF or TAB separated the
// scheme from the authority/path in the input.
func (u *ParsedUrl) Slashes() []byte { return u.slashes }

// SetSlashes replaces the slashes slot.
func (u *ParsedUrl) SetSlashes(b []byte) { u.slashes = orEmpty(b) }

// Username returns the userinfo username slot.
func (u *ParsedUrl) Username() []byte { return u.username }

// SetUsername replaces the username slot.
func (u *ParsedUrl) SetUsername(b []byte) { u.username = orEmpty(b) }

// ColonBeforePassword is either empty or the single byte ":".
func (u *ParsedUrl) ColonBeforePassword() []byte { return u.colonBeforePassword }

// SetColonBeforePassword replaces the colon-before-password slot.
func (u *ParsedUrl) SetColonBeforePassword(b []byte) { u.colonBeforePassword = orEmpty(b) }

// Password returns the userinfo password slot.
func (u *ParsedUrl) Password() []byte { return u.password }

// SetPassword replaces the password slot.
func (u *ParsedUrl) SetPassword(b []byte) { u.password = orEmpty(b) }

// AtSign is either empty or the single byte "@".
func (u *ParsedUrl) AtSign() []byte { return u.atSign }

// SetAtSign replaces the at-sign slot.
func (u *ParsedUrl) SetAtSign(b []byte) { u.atSign = orEmpty(b) }

// Host returns the raw host slot, including brackets for an IPv6 literal.
func (u *ParsedUrl) Host() []byte { return u.host }

// SetHost replaces the host slot.
func (u *ParsedUrl) SetHost(b []byte) { u.host = orEmpty(b) }

// ColonBeforePort is either empty or the single byte ":".
func (u *ParsedUrl) ColonBeforePort() []byte { return u.colonBeforePort }

// SetColonBeforePort replaces the colon-before-port slot.
func (u *ParsedUrl) SetColonBeforePort(b []byte) { u.colonBeforePort = orEmpty(b) }

// Port returns the raw port slot.
func (u *ParsedUrl) Port() []byte { return u.port }

// SetPort replaces the port slot.
func (u *ParsedUrl) SetPort(b []byte) { u.port = orEmpty(b) }

// Path returns the raw path slot.
func (u *ParsedUrl) Path() []byte { return u.path }

// SetPath replaces the path slot.
func (u *ParsedUrl) SetPath(b []byte) { u.path = orEmpty(b) }

// QuestionMark is either empty or the single byte "?".
func (u *ParsedUrl) QuestionMark() []byte { return u.questionMark }

// SetQuestionMark replaces the question-mark slot.
func (u *ParsedUrl) SetQuestionMark(b []byte) { u.questionMark = orEmpty(b) }

// Query returns the raw query slot, without the leading "?".
func (u *ParsedUrl) Query() []byte { return u.query }

// SetQuery replaces the query slot.
func (u *ParsedUrl) SetQuery(b []byte) { u.query = orEmpty(b) }

// HashSign is either empty or the single byte "#".
func (u *ParsedUrl) HashSign() []byte { return u.hashSign }

// SetHashSign replaces the hash-sign slot.
func (u *ParsedUrl) SetHashSign(b []byte) { u.hashSign = orEmpty(b) }

// Fragment returns the raw fragment slot, without the leading "#".
func (u *ParsedUrl) Fragment() []byte { return u.fragment }

// SetFragment replaces the fragment slot.
func (u *ParsedUrl) SetFragment(b []byte) { u.fragment = orEmpty(b) }

// TrailingJunk returns the bytes in 0x00-0x20 stripped from the end of the
// input before parsing began.
func (u *ParsedUrl) TrailingJunk() []byte { return u.trailingJunk }

// SetTrailingJunk replaces the trailing-junk slot.
func (u *ParsedUrl) SetTrailingJunk(b []byte) { u.trailingJunk = orEmpty(b) }
