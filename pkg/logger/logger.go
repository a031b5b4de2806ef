package logger

import (
	"os"
	"strings"

	"protocol-playground/pkg/config"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Config - параметры логгера из окружения.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Init инициализирует глобальный логгер из переменных окружения.
// Должна быть вызвана один раз при старте (main.go или TestMain).
func Init() {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		cfg = Config{Level: "info", Format: "text"}
	}
	Log = New(cfg)
}

// New собирает логгер по конфигу. Неизвестный уровень -> info, неизвестный формат -> text.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// "json" - для сбора логов, "text" - для удобной разработки.
	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(os.Stdout)
	return l
}
