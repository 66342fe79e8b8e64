package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mayura-ui/mayura/internal/fixtures"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/tui"
)

var playgroundCmd = &cobra.Command{
	Use:     "playground",
	Aliases: []string{"p"},
	Short:   "Drive the table and select from the terminal",
	Long: `Open a terminal playground hosting a sorted, paginated table and a
searchable select, driven by the same reducers as the web showcase.

Keys:
  ←/→  pick a column     s      cycle its sort
  ↑/↓  move              space  toggle the row
  [ ]  change page       /      search the select
  tab  switch widget     q      quit`,
	RunE: runPlayground,
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("playground needs an interactive terminal")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	fx := fixtures.Default()
	if cfg.Showcase.Fixtures != "" {
		if fx, err = fixtures.Load(cfg.Showcase.Fixtures); err != nil {
			return err
		}
	}
	catalog, err := i18n.New(cfg.Showcase.Locale)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	model := tui.New(fx, tui.Options{
		Catalog:        catalog,
		PageSize:       cfg.Showcase.PageSize,
		MaxPageNumbers: cfg.Showcase.MaxPageNumbers,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground failed: %w", err)
	}
	return nil
}
