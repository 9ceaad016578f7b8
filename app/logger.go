package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

func InitLogger() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	logLevel := strings.ToLower(Config.Logger.Level)
	log.Debug("[LOGGER] Initializing logger with level: ", logLevel)

	level, err := log.ParseLevel(logLevel)
	if err != nil || level > log.DebugLevel {
		log.Warn("[LOGGER] Unsupported log level ", logLevel, ", using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	log.Info("[LOGGER] Logger initialized with level: ", level.String())
}
