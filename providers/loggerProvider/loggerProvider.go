package loggerProvider

import (
	"workorder/providers"
	"workorder/utils"

	"go.uber.org/zap"
)

type LogProvider struct {
	logger *zap.Logger
}

func NewLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{}
}

// InitLogger builds the process-wide logger. utils.Logger is the instance the
// services and responders write to, so it must be the same one held here.
func (l *LogProvider) InitLogger() {
	utils.InitLogger()
	l.logger = utils.Logger
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	return l.logger
}
