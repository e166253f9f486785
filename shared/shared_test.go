package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonetag/shared"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "uppercase false", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestBoolOrDefault(t *testing.T) {
	assert.True(t, shared.BoolOrDefault("", true))
	assert.False(t, shared.BoolOrDefault("", false))
	assert.False(t, shared.BoolOrDefault("false", true))
	assert.True(t, shared.BoolOrDefault("t", false))
	assert.True(t, shared.BoolOrDefault("garbage", true))
}

func TestParseInstant(t *testing.T) {
	fixed := time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	t.Run("empty means now", func(t *testing.T) {
		instant, err := shared.ParseInstant("", now)

		require.NoError(t, err)
		assert.Equal(t, fixed, instant)
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		instant, err := shared.ParseInstant("2024-01-15T13:00:00+01:00", now)

		require.NoError(t, err)
		assert.True(t, instant.Equal(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := shared.ParseInstant("yesterday", now)

		assert.Error(t, err)
	})
}

func boolPtr(b bool) *bool {
	return &b
}
