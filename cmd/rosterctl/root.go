// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/linuxfoundation/lfx-v2-roster-service/cmd/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/file"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/remote"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/config"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	logging "github.com/linuxfoundation/lfx-v2-roster-service/pkg/log"
)

// options holds the persistent flags shared by every command.
type options struct {
	source  string
	file    string
	url     string
	timeout time.Duration
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Search the member roster from a terminal",
		Long: `rosterctl loads the member roster once and resolves queries against it.

A query matches a member whose codename or name equals it, ignoring case and
surrounding spaces. When the roster source cannot be read the built-in
placeholder roster is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd.ErrOrStderr(), opts.debug)
		},
	}

	defaultTimeout, err := config.DurationEnv("ROSTER_LOAD_TIMEOUT", constants.DefaultRosterLoadTimeout)
	if err != nil {
		defaultTimeout = constants.DefaultRosterLoadTimeout
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.source, "source", config.StringEnv("ROSTER_SOURCE", constants.DefaultRosterSource),
		"roster source: file, http, opensearch, nats, valkey or mock")
	flags.StringVar(&opts.file, "file", "", "roster document read by the file source (overrides ROSTER_FILE)")
	flags.StringVar(&opts.url, "url", "", "roster document URL read by the http source (overrides ROSTER_URL)")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "bound on the single roster fetch")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newFindCmd(opts))
	rootCmd.AddCommand(newBrowseCmd(opts))

	return rootCmd
}

// initLogger writes text logs to w, warnings and above unless debug is set.
func initLogger(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logging.NewHandler(w, logging.Options{
		Level:  level,
		Format: "text",
	})))
}

// rosterSource builds the source named by --source, letting --file and --url
// take precedence over the environment.
func (o *options) rosterSource(ctx context.Context) (port.RosterSource, error) {
	switch {
	case o.source == file.SourceName && o.file != "":
		source, err := file.NewRosterSource(o.file)
		if err != nil {
			return nil, err
		}
		return source, nil

	case o.source == remote.SourceName && o.url != "":
		remoteConfig, err := remote.NewConfig(o.url, os.Getenv("ROSTER_URL_TOKEN"), os.Getenv("ROSTER_HTTP_TIMEOUT"))
		if err != nil {
			return nil, fmt.Errorf("failed to create remote roster configuration: %w", err)
		}
		return remote.NewClient(remoteConfig), nil
	}

	return service.NewRosterSource(ctx, o.source)
}
