package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode, "debug")
		require.NoError(t, err, mode)
		assert.NotNil(t, l.SugaredLogger)
	}
	_, err := New("loud", "info")
	assert.ErrorContains(t, err, `unknown log mode "loud"`)
	_, err = New("dev", "chatty")
	assert.ErrorContains(t, err, `unknown log level "chatty"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
	lvl, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}

func TestFieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "test")

	l.Info("hello", "n", 1)
	l.Warn("careful")
	l.Debug("details")
	l.Error("bad", "err", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "test", ctx["component"])
	assert.EqualValues(t, 1, ctx["n"])
	assert.Equal(t, "boom", entries[3].ContextMap()["err"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Sync()
}
