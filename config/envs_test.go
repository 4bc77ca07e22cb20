package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"MAZE_WIDTH", "MAZE_HEIGHT", "MAZE_MAX_DIMENSION", "MAZE_SEED", "MAZE_POLICY", "MAZE_STYLE",
		"MAZE_GLYPHS", "SERVE_HTTP", "HOST_IP", "REST_PORT", "GIN_MODE", "LOG_DEBUG",
	} {
		t.Setenv(key, "")
	}

	c, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, 30, c.MazeWidth)
	assert.Equal(t, 30, c.MazeHeight)
	assert.Equal(t, 512, c.MazeMaxDim)
	assert.Nil(t, c.MazeSeed)
	assert.False(t, c.ServeHTTP)
	assert.Equal(t, 8080, c.RESTPort)
	assert.False(t, c.LogDebug)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MAZE_WIDTH", "12")
	t.Setenv("MAZE_HEIGHT", "7")
	t.Setenv("MAZE_MAX_DIMENSION", "100")
	t.Setenv("MAZE_SEED", "-42")
	t.Setenv("MAZE_POLICY", "middle-index")
	t.Setenv("MAZE_STYLE", "compact")
	t.Setenv("MAZE_GLYPHS", "ascii")
	t.Setenv("SERVE_HTTP", "true")
	t.Setenv("REST_PORT", "9000")
	t.Setenv("LOG_DEBUG", "1")

	c, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, 12, c.MazeWidth)
	assert.Equal(t, 7, c.MazeHeight)
	assert.Equal(t, 100, c.MazeMaxDim)
	require.NotNil(t, c.MazeSeed)
	assert.Equal(t, int64(-42), *c.MazeSeed)
	assert.Equal(t, "middle-index", c.MazePolicy)
	assert.Equal(t, "compact", c.MazeStyle)
	assert.Equal(t, "ascii", c.MazeGlyphs)
	assert.True(t, c.ServeHTTP)
	assert.Equal(t, 9000, c.RESTPort)
	assert.True(t, c.LogDebug)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAZE_WIDTH", "wide"},
		{"MAZE_MAX_DIMENSION", "huge"},
		{"MAZE_SEED", "0x2a"},
		{"SERVE_HTTP", "maybe"},
		{"REST_PORT", "80a"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := fromEnv()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
