// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/tui"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/render"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/ui"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive search page",
		Long: `Opens a search box in the terminal. Type a name or codename and press
Enter to show the member card. Press Esc or Ctrl+C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			source, err := opts.rosterSource(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if errClose := source.Close(); errClose != nil {
					slog.WarnContext(ctx, "failed to close roster source", "error", errClose)
				}
			}()

			page := ui.NewPage(usecase.NewRosterLoader(source, opts.timeout), render.NewTerminal(nil))
			model := tui.New(ctx, page.Panel())
			page.Bind(model)

			_, err = tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
}
