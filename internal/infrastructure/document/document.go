// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package document decodes roster documents shared by the roster sources.
package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a roster document.
type Format string

const (
	// FormatJSON is a JSON array of member objects
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of member mappings
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data as a list of members. An empty or null document, or one
// whose top level is not a list, is a validation error.
func Decode(data []byte, format Format) ([]model.Member, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewValidation("roster document is empty")
	}

	var (
		members []model.Member
		err     error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &members)
	case FormatJSON, "":
		err = json.Unmarshal(data, &members)
	default:
		return nil, errors.NewValidation(fmt.Sprintf("unsupported roster document format %q", format))
	}
	if err != nil {
		return nil, errors.NewValidation("roster document is malformed", err)
	}
	if members == nil {
		return nil, errors.NewValidation("roster document is not a list")
	}

	return members, nil
}
