package pctcodec_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt/pctcodec"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no percents", "example.com", "example.com"},
		{"simple", "%68ttp", "http"},
		{"invalid trailing percent", "100%", "100%"},
		{"invalid short", "%2", "%2"},
		{"invalid non-hex", "%zz", "%zz"},
		{"mixed case hex", "%2F%2f", "//"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pctcodec.Decode([]byte(tt.in))

			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeFixedPoint(t *testing.T) {
	t.Parallel()

	got := pctcodec.DecodeFixedPoint([]byte("%2568"))

	assert.Equal(t, "h", string(got))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	shouldEscape := func(c byte) bool {
		return c == '#' || c == ' '
	}

	got := pctcodec.Encode([]byte("a b#c"), shouldEscape)

	assert.Equal(t, "a%20b%23c", string(got))
}

func TestEncodeNoOp(t *testing.T) {
	t.Parallel()

	shouldEscape := func(byte) bool { return false }

	in := []byte("unchanged")
	got := pctcodec.Encode(in, shouldEscape)

	assert.Equal(t, "unchanged", string(got))
}
