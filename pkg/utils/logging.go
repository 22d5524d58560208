package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets the global logrus level and format. Unknown levels fall back to info
func ConfigureLogging(level string, json bool) {
	log.SetOutput(os.Stderr)

	parsed, err := log.ParseLevel(level)
	if err != nil {
		if level != "" {
			log.Warnf("[UTILS]: Unknown LOG_LEVEL %q, using info", level)
		}
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)

	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
