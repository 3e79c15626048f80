package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {

	for _, testInfo := range []struct {
		Debug bool
		Level zapcore.Level
	}{
		{Debug: false, Level: zapcore.InfoLevel},
		{Debug: true, Level: zapcore.DebugLevel},
	} {
		l, err := New(testInfo.Debug)
		require.NoError(t, err)

		require.True(t, l.Core().Enabled(testInfo.Level))
		require.False(t, l.Core().Enabled(testInfo.Level-1))
	}
}
