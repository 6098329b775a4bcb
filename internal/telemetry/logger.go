// Package telemetry содержит сквозные средства наблюдаемости цикла
// эволюции: структурированное логирование (logrus), метрики (Prometheus) и
// необязательный HTTP-эндпоинт /metrics + /healthz (chi).
package telemetry

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	setupOnce sync.Once
	base      *logrus.Logger
)

// Logger возвращает общий для процесса экземпляр logrus.Logger, настроенный
// ровно один раз независимо от числа вызовов.
func Logger() *logrus.Logger {
	setupOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stdout)
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		base.SetLevel(logrus.InfoLevel)
	})
	return base
}

// SetLevel меняет уровень логирования общего логгера (например, при
// передаче --verbose в CLI).
func SetLevel(level logrus.Level) {
	Logger().SetLevel(level)
}
