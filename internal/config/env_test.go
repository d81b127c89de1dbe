package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	assert.True(t, boolEnvOrDefault("BOOL_TEST", true), "expected default when unset")

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		assert.Equal(t, tc.expected, boolEnvOrDefault("BOOL_TEST", true), tc.val)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "12")
	assert.Equal(t, 12, intEnvOrDefault("INT_TEST", 3))

	t.Setenv("INT_TEST", "0")
	assert.Equal(t, 0, intEnvOrDefault("INT_TEST", 3))

	t.Setenv("INT_TEST", "-1")
	assert.Equal(t, 3, intEnvOrDefault("INT_TEST", 3))

	t.Setenv("INT_TEST", "abc")
	assert.Equal(t, 3, intEnvOrDefault("INT_TEST", 3))
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DUR_TEST", "250ms")
	assert.Equal(t, 250*time.Millisecond, durationEnvOrDefault("DUR_TEST", time.Second))

	t.Setenv("DUR_TEST", "0s")
	assert.Equal(t, time.Second, durationEnvOrDefault("DUR_TEST", time.Second))
}

func TestStringEnvOrDefaultKeepsExplicitEmpty(t *testing.T) {
	assert.Equal(t, "fallback", stringEnvOrDefault("STRING_TEST_UNSET", "fallback"))

	t.Setenv("STRING_TEST", "")
	assert.Equal(t, "", stringEnvOrDefault("STRING_TEST", "fallback"))
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("LIST_ENV", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, listEnvOrDefault("LIST_ENV", []string{"*"}))

	t.Setenv("LIST_ENV", " , ")
	assert.Equal(t, []string{"*"}, listEnvOrDefault("LIST_ENV", []string{"*"}))

	t.Setenv("LIST_ENV", "")
	assert.Equal(t, []string{"*"}, listEnvOrDefault("LIST_ENV", []string{"*"}))
}
