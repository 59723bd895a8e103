package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvWithDefault(t *testing.T) {
	t.Setenv("VOLSCAN_TEST_SET", "value")
	t.Setenv("VOLSCAN_TEST_EMPTY", "")

	assert.Equal(t, "value", LoadEnvWithDefault("VOLSCAN_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", LoadEnvWithDefault("VOLSCAN_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", LoadEnvWithDefault("VOLSCAN_TEST_UNSET_XYZ", "fallback"))
}

func TestLoadBoolEnvWithDefault(t *testing.T) {
	t.Setenv("VOLSCAN_TEST_BOOL", "true")
	assert.True(t, LoadBoolEnvWithDefault("VOLSCAN_TEST_BOOL"))

	t.Setenv("VOLSCAN_TEST_BOOL", "yes")
	assert.False(t, LoadBoolEnvWithDefault("VOLSCAN_TEST_BOOL"))
	assert.False(t, LoadBoolEnvWithDefault("VOLSCAN_TEST_UNSET_XYZ"))
}
