package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New(false)
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(zap.DebugLevel))

	logger, err = New(true)
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
}

func TestRecoverPassesThroughErrors(t *testing.T) {
	want := errors.New("write failed")
	err := Recover(zap.NewNop().Sugar(), func() error { return want })
	assert.ErrorIs(t, err, want)

	assert.NoError(t, Recover(nil, func() error { return nil }))
}

func TestRecoverConvertsPanic(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core).Sugar()

	err := Recover(logger, func() error {
		var m map[string]int
		m["boom"] = 1
		return nil
	}, "collection", "gallery")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "gallery", fields["collection"])
	assert.NotEmpty(t, fields["stack"])
}
