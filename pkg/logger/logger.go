// Package logger строит zap.Logger в зависимости от окружения.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLocal      = "local"
	envDev        = "dev"
	envProduction = "production"
)

// New возвращает логгер для указанного окружения: читаемый консольный
// вывод для local/dev, JSON для production.
func New(env string) *zap.Logger {
	var cfg zap.Config

	switch env {
	case envLocal, envDev:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case envProduction:
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		// Логгер обязан существовать до того, как появится куда логировать
		panic("failed to build zap logger: " + err.Error())
	}

	return log
}
