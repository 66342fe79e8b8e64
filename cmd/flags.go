package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mayura-ui/mayura/internal/errors"
)

// Output formats understood by commands with output flags.
var outputFormats = []string{"table", "json", "yaml"}

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Server flags
	Port     int
	Host     string
	Fixtures string
	NoWatch  bool

	// Output flags
	Format string
	Quiet  bool
}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "server":
			addServerFlags(cmd, flags)
		case "output":
			addOutputFlags(cmd, flags)
		}
	}

	return flags
}

func addServerFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().IntVarP(&flags.Port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVar(&flags.Host, "host", "localhost", "Host to bind to")
	cmd.Flags().StringVar(&flags.Fixtures, "fixtures", "", "Demo data file (YAML); empty uses the built-in set")
	cmd.Flags().BoolVar(&flags.NoWatch, "no-watch", false, "Don't reload the fixtures file on change")
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "table", "Output format ("+strings.Join(outputFormats, "|")+")")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print names only")
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.Format != "" {
		if err := ValidateFormatWithSuggestion(f.Format, outputFormats); err != nil {
			return err
		}
	}
	return nil
}

// SetViperBindings binds flags to viper configuration keys, so that an
// explicitly set flag overrides the config file and environment.
func SetViperBindings(cmd *cobra.Command, bindings map[string]string) {
	for flagName, configKey := range bindings {
		if flag := cmd.Flags().Lookup(flagName); flag != nil {
			_ = viper.BindPFlag(configKey, flag)
		}
	}
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidatePort accepts 1..65535.
func ValidatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", portStr)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}

	return nil
}

// ValidateFormatWithSuggestion rejects formats outside valid and names the
// closest valid one.
func ValidateFormatWithSuggestion(format string, valid []string) error {
	if slices.Contains(valid, strings.ToLower(format)) {
		return nil
	}
	msg := fmt.Sprintf("invalid format %q, must be one of: %s", format, strings.Join(valid, ", "))
	if s := errors.Suggest(format, valid, 1); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", s[0])
	}
	return fmt.Errorf("%s", msg)
}
