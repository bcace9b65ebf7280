package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "not-a-number"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 10))
	assert.Equal(t, 10, GetInt(c, "BAD", 10))
	assert.Equal(t, 10, GetInt(c, "MISSING", 10))
	assert.Equal(t, 10, GetInt(nil, "TIMEOUT", 10))
}

func TestGetDuration(t *testing.T) {
	c := map[string]string{"READ_TIMEOUT_SECONDS": "30", "BAD": "soon"}

	assert.Equal(t, 30*time.Second, GetDuration(c, "READ_TIMEOUT_SECONDS", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "BAD", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "MISSING", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(nil, "READ_TIMEOUT_SECONDS", time.Minute))
}
