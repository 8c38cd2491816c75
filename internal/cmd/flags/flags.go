package flags

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

// LogFile keeps logs off stdout, which belongs to the alt-screen UI.
var LogFile = &cli.StringFlag{
	Name:    "log-file",
	Usage:   "Append logs to this file; empty discards them",
	Value:   "",
	Sources: cli.EnvVars("LOG_FILE"),
}

var Splash = &cli.DurationFlag{
	Name:    "splash",
	Usage:   "How long the splash screen stays up",
	Value:   2 * time.Second,
	Sources: cli.EnvVars("SPLASH_DELAY"),
}

var ShareEndpoint = &cli.StringFlag{
	Name:    "share-endpoint",
	Usage:   "HTTP endpoint receiving shared stories",
	Value:   "http://127.0.0.1:8723/share",
	Sources: cli.EnvVars("SHARE_ENDPOINT"),
}
