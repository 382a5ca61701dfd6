package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. level задается строкой logrus (debug, info, warn...), нераспознанный
// уровень заменяется на info.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	// вне продакшна читаемый вывод и подробный уровень, если он не задан явно.
	if os.Getenv("GIN_MODE") != "release" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if level == "" {
			l.SetLevel(logrus.DebugLevel)
		}
	}

	return l
}
