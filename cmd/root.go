package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mayura-ui/mayura/internal/config"
	"github.com/mayura-ui/mayura/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mayura",
	Short: "Controlled UI widgets with a live showcase",
	Long: `mayura is a library of controlled UI widgets (pagination, select,
dropdown, table, tabs, modal and tooltip) rendered with templ.

The CLI serves a live showcase of every widget, lists the catalogue,
prints pagination windows and runs a terminal playground.

Quick Start:
  mayura serve                    Start the showcase
  mayura list                     List all widgets
  mayura pages --current 6        Print a page window
  mayura playground               Drive the table and select from the keyboard`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .mayura.yml, can also use "+config.ConfigFileEnv+")")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig picks the config file: --config, then MAYURA_CONFIG_FILE, then
// .mayura.yml in the working directory. A missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.ConfigFileEnv); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.DefaultConfigName)
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads the merged configuration and a logger built from it.
func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	var logger logging.Logger = logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger = logging.NewMultiLogger(logger, logging.NewLogger(&logging.LoggerConfig{
			Level:  level,
			Format: "json",
			Output: f,
		}))
	}
	return cfg, logger, nil
}
