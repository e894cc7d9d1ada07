package bytestring_test

import (
	"regexp"
	"testing"

	"github.com/hueristiq/go-ssurt/bytestring"
	"github.com/stretchr/testify/assert"
)

func TestFromStringRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "http://example.com/"},
		{"high bytes", "\xff\xfe\x00caf\xe9"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := bytestring.FromString(tt.in)

			assert.Equal(t, tt.in, b.String())
			assert.Equal(t, len(tt.in), b.Len())
		})
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	a := bytestring.FromString("abc")
	b := bytestring.FromString("abc")
	c := bytestring.FromString("abd")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestConcat(t *testing.T) {
	t.Parallel()

	got := bytestring.Concat(
		bytestring.FromString("ht"),
		bytestring.FromString("tp"),
		bytestring.FromString("://"),
	)

	assert.Equal(t, "http://", got.String())
}

func TestLowerASCII(t *testing.T) {
	t.Parallel()

	got := bytestring.FromString("HTTP://EXAMPLE.com/Path\xc9").LowerASCII()

	assert.Equal(t, "http://example.com/path\xc9", got.String())
}

func TestSub(t *testing.T) {
	t.Parallel()

	b := bytestring.FromString("scheme://host/path")

	assert.Equal(t, "scheme", b.Sub(0, 6).String())
	assert.Equal(t, "host", b.Sub(9, 13).String())
}

func TestMatchAndReplaceAll(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`[\r\n\t]`)
	b := bytestring.FromString("ht\ntp://exa\tmple.com/")

	assert.True(t, b.Match(re))

	cleaned := b.ReplaceAll(re, bytestring.FromString(""))

	assert.Equal(t, "http://example.com/", cleaned.String())
}
