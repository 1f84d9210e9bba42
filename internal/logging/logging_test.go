package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/literalura/internal/config"
)

func TestSetupWithWriter(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("json format writes structured lines", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.Log{Level: "info", Format: config.LogFormatJSON}, &buf)

		log.Info().Str("title", "Dracula").Msg("book imported")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "book imported", line["message"])
		assert.Equal(t, "Dracula", line["title"])
	})

	t.Run("level filters lower records", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.Log{Level: "warn", Format: config.LogFormatJSON}, &buf)

		log.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWithWriter(config.Log{Level: "chatty", Format: config.LogFormatConsole}, &buf)

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
		log.Info().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}
