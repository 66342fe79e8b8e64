package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mayura-ui/mayura/internal/config"
	"github.com/mayura-ui/mayura/internal/registry"
	"github.com/mayura-ui/mayura/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the live widget showcase",
	Long: `Start the showcase server. Every widget gets a live page whose state
is driven over a websocket; the fixtures file is reloaded on change.

Examples:
  mayura serve                          # Serve on localhost:8080
  mayura serve --port 3000              # Serve on another port
  mayura serve --fixtures demo.yml      # Use your own demo data`,
	RunE: runServe,
}

var serveFlags *StandardFlags

func init() {
	rootCmd.AddCommand(serveCmd)

	serveFlags = AddStandardFlags(serveCmd, "server")
	AddFlagValidation(serveCmd, "port", ValidatePort)
	SetViperBindings(serveCmd, map[string]string{
		"port":     "server.port",
		"host":     "server.host",
		"fixtures": "showcase.fixtures",
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serveFlags.NoWatch {
		cfg.Showcase.Watch = false
	}
	if result := config.ValidateConfigWithDetails(cfg); result.HasWarnings() {
		for _, w := range result.Warnings {
			logger.Warn(cmd.Context(), nil, w.Message, "field", w.Field)
		}
	}

	srv, err := server.New(cfg, registry.Builtin(), logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting mayura showcase at http://%s\n", cfg.Server.Address())
	return srv.Start(ctx)
}
