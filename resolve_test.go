package ssurt_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"plain relative path", "http://example.com/a/b/c", "d", "http://example.com/a/b/d"},
		{"absolute path", "http://example.com/a/b/c", "/d", "http://example.com/d"},
		{"protocol-relative", "http://example.com/a", "//other.example/x", "http://other.example/x"},
		{"full absolute with scheme", "http://example.com/a", "https://other.example/x", "https://other.example/x"},
		{"empty relative keeps inherited authority, empty path", "http://example.com/a/b", "", "http://example.com"},
		{"fragment only", "http://example.com/a/b", "#frag", "http://example.com#frag"},
		{"query only", "http://example.com/a/b?x=1", "?y=2", "http://example.com?y=2"},
		{"dot segments left unresolved", "http://example.com/a/b/", "../c", "http://example.com/a/b/../c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := ssurt.ParseString(tt.base)
			rel := ssurt.ParseString(tt.rel)

			got := ssurt.Resolve(base, rel)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := ssurt.ParseString("http://example.com/a/b/c")
	rel := ssurt.ParseString("d")

	_ = ssurt.Resolve(base, rel)

	assert.Equal(t, "http://example.com/a/b/c", base.String())
	assert.Equal(t, "d", rel.String())
}
