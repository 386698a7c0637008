// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/render"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/ui"
)

// errMemberNotFound makes the process exit with status 1 when the query
// matches nobody. The not-found card has already been printed.
var errMemberNotFound = errors.New("member not found")

func newFindCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query...>",
		Short: "Print the member card for a name or codename",
		Example: `  rosterctl find EagleEye
  rosterctl find agent beta
  rosterctl --source http --url https://example.org/members.json find IronWall`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, opts, strings.Join(args, " "))
		},
	}
}

func runFind(cmd *cobra.Command, opts *options, query string) error {
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

	out := cmd.OutOrStdout()
	dispatcher := ui.NewDispatcher()
	page := ui.NewPage(
		usecase.NewRosterLoader(source, opts.timeout),
		render.NewTerminal(lipgloss.NewRenderer(out)),
	)
	page.Bind(dispatcher)

	dispatcher.Fire(ctx, ui.EventPageLoad, ui.Payload{})
	dispatcher.Fire(ctx, ui.EventSearchClick, ui.Payload{Query: query})

	state, content := page.Panel().Snapshot()
	fmt.Fprintln(out, content)
	if state != ui.PanelMember {
		return errMemberNotFound
	}
	return nil
}
