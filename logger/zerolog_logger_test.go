package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	var buf bytes.Buffer
	l := NewZerologLogger("test", Options{Out: &buf, Level: "debug"})
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))
}

func TestZerologLoggerJSON(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := NewZerologLogger("gen", Options{Out: &buf})
	l.Debugf("hidden")
	l.Infof("generated %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug is below the default level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "gen", rec["component"])
	assert.Equal(t, "generated 3", rec["message"])
}

func TestZerologLoggerWith(t *testing.T) {
	t.Setenv("APP_ENV", "")
	var buf bytes.Buffer
	l := NewZerologLogger("root", Options{Out: &buf, Level: "warn"}).With("child")
	l.Infof("dropped")
	l.Debugw("dropped", map[string]any{"x": 1})
	l.Warnf("kept")
	out := buf.String()
	assert.Contains(t, out, `"component":"child"`)
	assert.Contains(t, out, "kept")
	assert.NotContains(t, out, "dropped")
}

func TestNop(t *testing.T) {
	Nop.Debugf("x")
	Nop.Debugw("x", nil)
	Nop.Infof("x")
	Nop.Warnf("x")
	Nop.Errorf("x")
	assert.NotNil(t, New("svc"))
}
