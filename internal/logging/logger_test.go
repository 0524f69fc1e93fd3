package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)
	logger.Info("query served", GraphName("g1"), Distance(3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "query served", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	fields := entry["fields"].(map[string]any)
	assert.Equal(t, "g1", fields["graph_name"])
}

func TestJSONLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)
	logger.Info("should not appear")
	logger.Warn("should appear")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "should appear")
}

func TestJSONLoggerWithMergesFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, DebugLevel)
	child := base.With(GraphName("g1"))
	child.Info("reload", CorrelationID("abc"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	fields := entry["fields"].(map[string]any)
	assert.Equal(t, "g1", fields["graph_name"])
	assert.Equal(t, "abc", fields["correlation_id"])
}

func TestJSONLoggerSetLevelGetLevel(t *testing.T) {
	logger := NewJSONLogger(&bytes.Buffer{}, InfoLevel)
	logger.SetLevel(ErrorLevel)
	assert.Equal(t, ErrorLevel, logger.GetLevel())
}

func TestParseLevelUnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, InfoLevel, ParseLevel("garbage"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
}

func TestNopLoggerDiscardsAndReturnsSelf(t *testing.T) {
	l := NewNopLogger()
	l.Info("anything")
	assert.Equal(t, InfoLevel, l.GetLevel())
	assert.Equal(t, l, l.With(GraphName("g")))
}

func TestErrorFieldNilVsNonNil(t *testing.T) {
	assert.Nil(t, Error(nil).Value)
	assert.Equal(t, "boom", Error(errors.New("boom")).Value)
}
