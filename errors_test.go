package ssurt_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCanonicalizeRecoversInvariantError(t *testing.T) {
	t.Parallel()

	err := ssurt.SafeCanonicalize(func() {
		panic(&ssurt.InvariantError{Op: "test", Input: "x"})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}

func TestSafeCanonicalizeReturnsNilOnSuccess(t *testing.T) {
	t.Parallel()

	err := ssurt.SafeCanonicalize(func() {
		ssurt.ParseString("http://example.com/")
	})

	assert.NoError(t, err)
}

func TestSafeCanonicalizeRepanicsOnOtherPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_ = ssurt.SafeCanonicalize(func() {
			panic("unrelated")
		})
	})
}
