// Package canon implements the canonicalization pipelines: named,
// ordered compositions of small total operations that each mutate a
// ssurt.ParsedUrl in place. Expressing a pipeline as a slice of Op
// values rather than a hard-coded method body keeps every step
// independently testable and keeps the pipeline itself inspectable,
// following the Profile shape of nlnwa's whatwg-url canon package
// without its functional-options layer: pipelines take no options.
package canon

import "github.com/hueristiq/go-ssurt"

// Op is one canonicalization step. Every Op is total: given any
// ParsedUrl produced by ssurt.Parse, it returns without panicking.
type Op func(u *ssurt.ParsedUrl)

// Pipeline is a named, ordered list of operations.
type Pipeline struct {
	Name string
	Ops  []Op
}

// Canonicalize runs every operation in p against u, in order, mutating
// u in place. It also returns u so callers can chain
// Canonicalize(u).String().
func (p Pipeline) Canonicalize(u *ssurt.ParsedUrl) *ssurt.ParsedUrl {
	for _, op := range p.Ops {
		op(u)
	}

	return u
}
