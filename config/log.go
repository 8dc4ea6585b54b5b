package config

import (
	"github.com/sirupsen/logrus"
	"tour-booking-api/config/common"
)

func NewLogger(cfg *common.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
