package ssurt_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/go-ssurt"
	"github.com/hueristiq/go-ssurt/tlds"
	"github.com/stretchr/testify/assert"
)

func TestSSURTWorkedExample(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("http://www.example.com:80/foo")
	assert.Equal(t, "http://com,example,www,:80/foo", string(u.SSURT()))
}

func TestSSURTEmptyHostUnchanged(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("file:///C:/tmp/x")
	assert.Equal(t, "file:///C:/tmp/x", string(u.SSURT()))
}

func TestSSURTBracketedIPv6Unchanged(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("http://[::1]:8080/x")
	assert.Equal(t, "http://[::1]:8080/x", string(u.SSURT()))
}

func TestSSURTIPv4Unchanged(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("http://192.168.1.1/x")
	assert.Equal(t, "http://192.168.1.1/x", string(u.SSURT()))
}

func TestHostPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com:8080", string(ssurt.ParseString("http://example.com:8080/x").HostPort()))
	assert.Equal(t, "example.com", string(ssurt.ParseString("http://example.com/x").HostPort()))
}

func TestSSURTReversesDotDelimitedHostSegments(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("http://a.b.c/")
	assert.Equal(t, "http://c,b,a,/", string(u.SSURT()))
}

func TestSSURTOnPseudoTLDHostsEndsWithTrailingComma(t *testing.T) {
	t.Parallel()

	for _, tld := range tlds.Pseudo {
		host := fmt.Sprintf("www.example.%s", tld)
		u := ssurt.ParseString("http://" + host + "/")

		want := fmt.Sprintf("http://%s,example,www,/", tld)
		assert.Equal(t, want, string(u.SSURT()), "tld %q", tld)
	}
}
