package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers_Defaults(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvString("NEWSPORTAL_TEST_UNSET", "fallback"))
	assert.Equal(t, 7, GetEnvInt("NEWSPORTAL_TEST_UNSET", 7))
	assert.Equal(t, 0.5, GetEnvFloat("NEWSPORTAL_TEST_UNSET", 0.5))
	assert.True(t, GetEnvBool("NEWSPORTAL_TEST_UNSET", true))
	assert.Equal(t, time.Second, GetEnvDuration("NEWSPORTAL_TEST_UNSET", time.Second))
	assert.Equal(t, []string{"a"}, GetEnvStringList("NEWSPORTAL_TEST_UNSET", []string{"a"}))
}

func TestGetEnvHelpers_Values(t *testing.T) {
	t.Setenv("NP_STRING", "static")
	t.Setenv("NP_INT", "42")
	t.Setenv("NP_FLOAT", "0.25")
	t.Setenv("NP_BOOL", "false")
	t.Setenv("NP_DURATION", "90s")
	t.Setenv("NP_LIST", " a, ,b ")

	assert.Equal(t, "static", GetEnvString("NP_STRING", ""))
	assert.Equal(t, 42, GetEnvInt("NP_INT", 0))
	assert.Equal(t, 0.25, GetEnvFloat("NP_FLOAT", 1))
	assert.False(t, GetEnvBool("NP_BOOL", true))
	assert.Equal(t, 90*time.Second, GetEnvDuration("NP_DURATION", 0))
	assert.Equal(t, []string{"a", "b"}, GetEnvStringList("NP_LIST", nil))
}

func TestGetEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("NP_INT", "forty")
	t.Setenv("NP_FLOAT", "half")
	t.Setenv("NP_BOOL", "maybe")
	t.Setenv("NP_DURATION", "soon")
	t.Setenv("NP_LIST", " , ")

	assert.Equal(t, 3, GetEnvInt("NP_INT", 3))
	assert.Equal(t, 1.0, GetEnvFloat("NP_FLOAT", 1))
	assert.True(t, GetEnvBool("NP_BOOL", true))
	assert.Equal(t, time.Minute, GetEnvDuration("NP_DURATION", time.Minute))
	assert.Equal(t, []string{"x"}, GetEnvStringList("NP_LIST", []string{"x"}))
}
