package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hbomb79/Strata/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level logger.LogStatus) *bytes.Buffer {
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	logger.SetMinLoggingLevel(level.Level())
	t.Cleanup(func() {
		logger.SetMinLoggingLevel(logger.DEFAULT_MIN_STAT.Level())
	})

	return buf
}

func Test_Emit_RespectsMinLevel(t *testing.T) {
	buf := captureLogs(t, logger.WARNING)
	log := logger.Get("Test")

	log.Emit(logger.DEBUG, "hidden %d\n", 1)
	assert.Empty(t, buf.String())

	log.Emit(logger.ERROR, "shown %d\n", 2)
	assert.Contains(t, buf.String(), "[Test]")
	assert.Contains(t, buf.String(), "(!!) shown 2")
}

func Test_Emit_PadsNames(t *testing.T) {
	buf := captureLogs(t, logger.VERBOSE)

	logger.Get("LongerLoggerName").Emit(logger.INFO, "a\n")
	buf.Reset()
	logger.Get("Short").Emit(logger.INFO, "b\n")

	assert.Contains(t, buf.String(), "[Short] "+strings.Repeat(" ", 11)+"(I) b")
}

func Test_LogStatus_OutOfRange(t *testing.T) {
	assert.Equal(t, "UNKNOWN[42]", logger.LogStatus(42).String())
	assert.Equal(t, "UNKNOWN[-1]", logger.LogStatus(-1).String())
	assert.NotNil(t, logger.LogStatus(42).Color())
	assert.Equal(t, "!!", logger.ERROR.String())

	buf := captureLogs(t, logger.VERBOSE)
	require.NotPanics(t, func() { logger.Get("Test").Emit(logger.LogStatus(42), "odd\n") })
	assert.Contains(t, buf.String(), "(UNKNOWN[42]) odd")
}

func Test_ParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected logger.LogStatus
		err      bool
	}{
		{"debug", logger.DEBUG, false},
		{"WARN", logger.WARNING, false},
		{" error ", logger.ERROR, false},
		{"", logger.INFO, false},
		{"loud", logger.INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := logger.ParseLevel(tt.in)
			if tt.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, lvl)
		})
	}
}
