package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format emits structured lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", Format: "json", Out: &buf})

		logger.Info().Str("key", "value").Msg("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "value", line["key"])
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "shout", Format: "json", Out: &buf})

		logger.Debug().Msg("hidden")
		assert.Empty(t, buf.String())

		logger.Info().Msg("shown")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("level filters output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "error", Format: "json", Out: &buf})

		logger.Warn().Msg("suppressed")
		assert.Empty(t, buf.String())
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(New(Config{Level: "info", Format: "json", Out: &buf}), "ingest")

	logger.Info().Msg("tagged")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ingest", line["component"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", Out: &buf})

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info().Msg("via context")

	assert.Contains(t, buf.String(), "via context")
}

func TestFromContextWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
