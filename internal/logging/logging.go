// Package logging configures logrus for the mcpbox binaries.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup sends logs to stderr, which stays free on servers whose stdout is
// the MCP channel. debug overrides level with DebugLevel.
func Setup(level logrus.Level, debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
