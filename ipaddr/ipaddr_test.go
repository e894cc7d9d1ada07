package ipaddr_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt/ipaddr"
	"github.com/stretchr/testify/assert"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"dotted decimal", "192.168.0.1", 0xC0A80001},
		{"single number", "3232235521", 0xC0A80001},
		{"two parts", "192.11010049", 0xC0A80001},
		{"three parts", "192.168.1", 0xC0A80001},
		{"octal", "0300.0250.00.01", 0xC0A80001},
		{"hex", "0xC0.0xA8.0x00.0x01", 0xC0A80001},
		{"not an ip, too many parts", "1.2.3.4.5", ipaddr.NotIPv4},
		{"not an ip, empty part", "1..3.4", ipaddr.NotIPv4},
		{"not an ip, letters", "example.com", ipaddr.NotIPv4},
		{"not an ip, overflow byte", "1.2.3.999", ipaddr.NotIPv4},
		{"empty", "", ipaddr.NotIPv4},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ipaddr.ParseIPv4(tt.in)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIPv4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "192.168.0.1", ipaddr.FormatIPv4(0xC0A80001))
	assert.Equal(t, "0.0.0.0", ipaddr.FormatIPv4(0))
}

func TestLooksBracketedIPv6(t *testing.T) {
	t.Parallel()

	assert.True(t, ipaddr.LooksBracketedIPv6([]byte("[::1]")))
	assert.False(t, ipaddr.LooksBracketedIPv6([]byte("example.com")))
	assert.False(t, ipaddr.LooksBracketedIPv6(nil))
}
