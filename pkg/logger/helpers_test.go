package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxlog/pkg/logger"
)

const sampleID = "00ff00ff"

// newTestLogger builds a logger on the built-in defaults writing to a buffer.
func newTestLogger(t *testing.T, opts ...logger.Option) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := []logger.Option{
		logger.WithConfig(logger.DefaultConfig()),
		logger.WithOutput(buf),
	}
	l, err := logger.New(append(base, opts...)...)
	require.NoError(t, err)
	return l, buf
}

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func parseLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q is not valid JSON", line)
	return entry
}
