package idna_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt/idna"
	"github.com/stretchr/testify/assert"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", string(idna.ToASCII([]byte("example.com"))))
	assert.Equal(t, "xn--mnchen-3ya.de", string(idna.ToASCII([]byte("münchen.de"))))
}

func TestToASCIIPassesThroughOnFailure(t *testing.T) {
	t.Parallel()

	// A host with a stray bracket isn't a valid IDNA label; ToASCII must
	// return it unchanged rather than erroring.
	in := []byte("[not-a-host")
	assert.Equal(t, in, idna.ToASCII(in))
}
