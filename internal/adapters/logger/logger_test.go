package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/six/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false)

	log.Debug("invisible")
	log.Info("visible")
	log.Error(errors.New("broken"))

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "broken")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, true)

	log.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
