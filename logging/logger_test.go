package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/logging"
)

func observe(t *testing.T, opts ...uberzap.Option) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logging.UseCore(core, opts...)
	prev := logging.GetLevel()
	t.Cleanup(func() {
		restore()
		logging.SetLevel(prev)
	})
	return logs
}

func TestDefaultLevelIsDebug(t *testing.T) {
	assert.Equal(t, logging.DEBUG, logging.GetLevel())
}

func TestLevelsAreFormatted(t *testing.T) {
	logs := observe(t)
	logging.SetLevel(logging.DEBUG)

	logging.Debugf("d %d", 1)
	logging.Infof("i %s", "two")
	logging.Warnf("w %v", true)
	logging.Errorf("e %.1f", 4.0)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "d 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "i two", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "w true", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "e 4.0", entries[3].Message)
}

func TestThresholdGatesOutput(t *testing.T) {
	logs := observe(t)
	logging.SetLevel(logging.WARN)

	logging.Debugf("dropped")
	logging.Infof("dropped")
	logging.Warnf("kept")
	logging.Errorf("kept")

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestFatalUsesHook(t *testing.T) {
	observe(t, uberzap.WithFatalHook(zapcore.WriteThenPanic))
	logging.SetLevel(logging.ERROR)
	assert.Panics(t, func() { logging.Fatalf("boom %d", 1) })
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logging.Level{
		"debug": logging.DEBUG,
		"info":  logging.INFO,
		"warn":  logging.WARN,
		"error": logging.ERROR,
		"fatal": logging.FATAL,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"chatty", "", "dpanic", "panic"} {
		_, err := logging.ParseLevel(in)
		assert.ErrorIs(t, err, api.ErrInvalidArgument, in)
	}
}
