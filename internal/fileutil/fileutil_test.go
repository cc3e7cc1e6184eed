package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerReadWrite(t *testing.T) {
	assert.Zero(t, OwnerReadWrite&0o077, "group and other bits must be clear")
	assert.Equal(t, "-rw-------", OwnerReadWrite.String())
}
