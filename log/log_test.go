package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestGologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	gl := golog.New()
	gl.SetOutput(&buf)
	gl.SetLevel("warn")

	logger := NewGologLogger(gl)
	logger.Info("should be dropped")
	logger.Warn("kept: %s", "warning")
	logger.Error("kept: %s", "error")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "kept: warning")
	assert.Contains(t, out, "kept: error")
}

func TestSetDefaultLogger(t *testing.T) {
	orig := GetDefaultLogger()
	defer SetDefaultLogger(orig)

	SetDefaultLogger(NoOpLogger{})
	assert.IsType(t, NoOpLogger{}, GetDefaultLogger())

	// Must not panic.
	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)
	Error("error %d", 4)
}

func TestSetLevel(t *testing.T) {
	orig := GetDefaultLogger()
	defer SetDefaultLogger(orig)

	var buf bytes.Buffer
	gl := golog.New()
	gl.SetOutput(&buf)
	logger := NewGologLogger(gl)
	SetDefaultLogger(logger)

	SetLevel("error")
	Info("quiet")
	Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
