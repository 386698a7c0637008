// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package file reads the roster document from the local filesystem.
package file

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/document"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "file"

// RosterSource reads a JSON or YAML roster document from disk
type RosterSource struct {
	path   string
	format document.Format
}

// Name implements port.RosterSource
func (s *RosterSource) Name() string {
	return SourceName
}

// FetchRoster implements port.RosterSource
func (s *RosterSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFound(fmt.Sprintf("roster file %s not found", s.path), err)
		}
		return nil, errors.NewUnexpected(fmt.Sprintf("failed to read roster file %s", s.path), err)
	}

	members, err := document.Decode(data, s.format)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "roster file read",
		"path", s.path,
		"format", s.format,
		"members", len(members),
	)
	return members, nil
}

// Close implements port.RosterSource
func (s *RosterSource) Close() error {
	return nil
}

// NewRosterSource returns a source reading path; the format follows the
// file extension.
func NewRosterSource(path string) (*RosterSource, error) {
	if path == "" {
		return nil, fmt.Errorf("roster file path is required")
	}
	return &RosterSource{
		path:   path,
		format: document.FormatFromPath(path),
	}, nil
}

var _ port.RosterSource = (*RosterSource)(nil)
