package main

import (
	"context"

	"snowstat/internal/config"
	"snowstat/internal/tui"
	"snowstat/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tuiCommand constructs the 'tui' subcommand that runs the interactive
// terminal dashboard against the configured database and upstream API.
func tuiCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Opens the interactive status dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			st := setupStatus(ctx, cfg, strg)

			model := tui.New(st, tui.Options{
				RefreshInterval: cfg.Poller.Interval,
			})

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				logger.Fatal(ctx, "could not run dashboard", zap.Error(err))
			}
		},
	}

	return cmd
}
