// Package logger настраивает logrus для сервиса оповещений
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем logLevel
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(ParseLevel(logLevel))

	return log
}

// ParseLevel разбирает уровень логирования. Некорректное значение заменяется на info.
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
