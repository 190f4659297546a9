package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/treekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory
//	-f string   database file name inside the data directory
//	-t int      notification timeout in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so -c/-config and unknown flags
// do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "database file name")
	timeout := fs.Int("t", int(cfg.NotificationTimeout.Seconds()), "notification timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides; the default is rounded to seconds.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.NotificationTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
