package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	assert.Contains(t, full, GetVersion())
	assert.Contains(t, full, "commit")
}
