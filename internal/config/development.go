package config

import "github.com/sirupsen/logrus"

func (g Game) Development() bool {
	return g.Mode == "development"
}

// Level is the explicit log level if set, otherwise Debug in development and
// Info in production.
func (g Game) Level() logrus.Level {
	if level, err := logrus.ParseLevel(g.LogLevel); err == nil && g.LogLevel != "" {
		return level
	}
	if g.Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
