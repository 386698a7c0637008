// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/config"
)

func main() {
	if err := config.LoadDotenvIfPresent(); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errMemberNotFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
