package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Setup configures log for the process. Development mode turns on debug
// output and colors; logFile, when non-empty, adds a size-rotated file copy
// of every entry.
func Setup(log *logrus.Logger, development bool, logFile string) error {
	if development {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      log.GetLevel(),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	return nil
}

// New builds a fresh logger configured by [Setup].
func New(development bool, logFile string) (*logrus.Logger, error) {
	log := logrus.New()
	if err := Setup(log, development, logFile); err != nil {
		return nil, err
	}
	return log, nil
}
