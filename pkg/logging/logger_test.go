package logging_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complykit/trustreport/pkg/logging"
)

// swapDefault installs a buffer-backed default logger and restores the
// previous one when the test finishes.
func swapDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))
	return &buf
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("key", "value").Msg("test message")

	out := buf.String()
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, `"key":"value"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestPackageLevelEvents(t *testing.T) {
	buf := swapDefault(t)

	logging.Info().Msg("info line")
	logging.Warn().Msg("warn line")
	logging.Error().Msg("error line")
	logging.Err(errors.New("boom")).Msg("err line")

	out := buf.String()
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
	assert.Contains(t, out, `"error":"boom"`)
}

func TestSetDefault(t *testing.T) {
	buf := swapDefault(t)

	logging.Default().Info().Msg("through default")
	assert.Contains(t, buf.String(), "through default")
}

func TestNopDiscards(t *testing.T) {
	prev := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	logging.SetDefault(logging.Nop)
	logging.Info().Msg("should vanish")
	logging.Error().Msg("should also vanish")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	logger.Info().Int("count", 3).Msg("json output")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"))
	assert.Contains(t, line, `"count":3`)
}
