package ssurt

import "fmt"

// InvariantError is the one error kind the core ever raises: a fixed
// regular expression that the parser or canonicalizer assumes will
// always match did not match. That can only happen if the regex set
// itself is wrong, so InvariantError is raised as a panic rather than
// threaded through every return value — there is nothing a caller can
// do to recover from a broken regex except fix the regex.
type InvariantError struct {
	Op    string
	Input string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ssurt: invariant violated in %s on input %q", e.Op, e.Input)
}

func invariantViolation(op string, input []byte) {
	panic(&InvariantError{Op: op, Input: string(input)})
}

// SafeCanonicalize runs fn and converts any InvariantError panic into a
// returned error instead of letting it unwind further. Use this at
// process boundaries (a server handler, a batch job per-record loop)
// that must stay alive even if a future input manages to defeat one of
// the parser's regexes. Ordinary malformed input never reaches this
// path: the parser and canonicalizer are total functions and do not
// panic on any input they're documented to accept.
func SafeCanonicalize(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				err = ie

				return
			}

			panic(r)
		}
	}()

	fn()

	return nil
}
