package schemes_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt/schemes"
	"github.com/stretchr/testify/assert"
)

func TestIsSpecial(t *testing.T) {
	t.Parallel()

	assert.True(t, schemes.IsSpecial("http"))
	assert.True(t, schemes.IsSpecial("file"))
	assert.False(t, schemes.IsSpecial("foo"))
	assert.False(t, schemes.IsSpecial("HTTP"))
}

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 80, schemes.DefaultPort("http"))
	assert.Equal(t, 443, schemes.DefaultPort("https"))
	assert.Equal(t, 21, schemes.DefaultPort("ftp"))
	assert.Equal(t, schemes.NoDefaultPort, schemes.DefaultPort("file"))
	assert.Equal(t, schemes.NoDefaultPort, schemes.DefaultPort("foo"))
}
