package ssurt_test

import (
	"testing"

	"github.com/hueristiq/go-ssurt"
	"github.com/stretchr/testify/assert"
)

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	u := ssurt.ParseString("http://example.com/a")
	c := u.Clone()

	c.SetPath([]byte("/b"))

	assert.Equal(t, "/a", string(u.Path()))
	assert.Equal(t, "/b", string(c.Path()))
}

func TestSettersRejectNilAsEmptyNotNull(t *testing.T) {
	t.Parallel()

	u := &ssurt.ParsedUrl{}
	u.SetPath(nil)

	assert.Equal(t, "", string(u.Path()))
	assert.NotNil(t, u.Path())
}
