package loggerProvider

import (
	"testing"

	"workorder/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWiresSharedLogger(t *testing.T) {
	provider := NewLogProvider()
	provider.InitLogger()

	require.NotNil(t, provider.GetLogger())

	// Services log through utils.Logger, so boot must replace the no-op
	// default with a logger that actually records.
	assert.True(t, utils.Logger.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, utils.Logger, provider.GetLogger())
}
