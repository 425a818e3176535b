package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("KOSH_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("KOSH_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("KOSH_TEST_UNSET", "fallback"))

	t.Setenv("KOSH_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("KOSH_TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("KOSH_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("KOSH_TEST_INT", 7))

	t.Setenv("KOSH_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("KOSH_TEST_INT", 7))
	assert.Equal(t, 7, GetIntEnv("KOSH_TEST_INT_UNSET", 7))
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("KOSH_TEST_BOOL", "true")
	assert.True(t, GetBoolEnv("KOSH_TEST_BOOL", false))

	t.Setenv("KOSH_TEST_BOOL", "nope")
	assert.True(t, GetBoolEnv("KOSH_TEST_BOOL", true))
	assert.False(t, GetBoolEnv("KOSH_TEST_BOOL_UNSET", false))
}
