// Package logger собирает zap SugaredLogger по уровню из конфигурации
// и, при необходимости, дублирует вывод в файл с ротацией.
package logger

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Параметры ротации файла логов.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New создаёт логгер в dev-конфигурации zap с уровнем level.
// Если file не пустой, записи дополнительно пишутся в файл через lumberjack.
func New(level, file string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	if file != "" {
		rotating := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		})
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), rotating, lvl)
		zl = zl.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	return zl.Sugar(), nil
}

// Sync сбрасывает буфер, игнорируя ошибку sync для stderr/stdout.
func Sync(l *zap.SugaredLogger) error {
	if err := l.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}
