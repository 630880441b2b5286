package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brickingsoft/wire/cmd/wire/internal/config"
)

var (
	// Global flags
	configPath string
	logLevel   string

	// Global configuration (loaded at init time)
	globalConfig *config.Config

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "wire",
	Short: "Byte buffers, framing, socket addresses and HTTP/1 responses from a shell",
	Long: `wire - inspect and produce the wire formats handled by this module.

Commands:
  frame     length-prefixed framing (encode, decode, pack, unpack)
  addr      socket address parsing and identity
  response  HTTP/1 response encoding

An optional YAML file sets the defaults:

  frame:
    width: 4
    order: big
    signed: false
  log:
    level: info

Examples:
  wire frame encode hello world
  wire frame decode --width 2 000568656c6c6f
  wire addr '[::1]:8080' /tmp/wire.sock
  wire response --status 200 --body hello`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	logger.SetOutput(rootCmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	globalConfig, configLoadErr = config.Load(configPath)
	level := logLevel
	if level == "" && globalConfig != nil {
		level = globalConfig.Log.Level
	}
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("unknown log level, keeping info")
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}

// GetConfig returns the global configuration.
func GetConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, fmt.Errorf("config not available: %w", configLoadErr)
	}
	if globalConfig == nil {
		return config.Default(), nil
	}
	return globalConfig, nil
}

func componentLogger(component string, operation string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"component": component,
		"operation": operation,
	})
}
