// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
)

// MemberSearcher defines the interface for member search operations
type MemberSearcher interface {
	// SearchMember resolves a raw query against the loaded roster
	SearchMember(ctx context.Context, queryText string) model.QueryOutcome

	// Roster returns the snapshot searches run against
	Roster() model.Roster
}

// Resolve maps a raw query to an outcome against roster. The query is trimmed
// and lower-cased; a member matches when its lower-cased codename or name
// equals it exactly. The first match in roster order wins.
func Resolve(roster model.Roster, queryText string) model.QueryOutcome {
	trimmed := strings.TrimSpace(queryText)
	normalized := strings.ToLower(trimmed)

	for i := 0; i < roster.Len(); i++ {
		member := roster.At(i)
		if strings.ToLower(member.Codename) == normalized || strings.ToLower(member.Name) == normalized {
			return model.Found(member, trimmed)
		}
	}

	return model.NotFound(trimmed)
}

// MemberSearch handles member lookups over one roster snapshot
type MemberSearch struct {
	roster model.Roster
}

// SearchMember performs the lookup and logs the outcome
func (s *MemberSearch) SearchMember(ctx context.Context, queryText string) model.QueryOutcome {

	slog.DebugContext(ctx, "starting member search",
		"query", queryText,
		"roster_source", s.roster.Source(),
		"roster_size", s.roster.Len(),
	)

	outcome := Resolve(s.roster, queryText)

	if member, ok := outcome.Member(); ok {
		slog.DebugContext(ctx, "member search completed",
			"query", outcome.Query(),
			"codename", member.Codename,
		)
		return outcome
	}

	slog.InfoContext(ctx, "no member matches query",
		"query", outcome.Query(),
	)
	return outcome
}

// Roster returns the snapshot searches run against
func (s *MemberSearch) Roster() model.Roster {
	return s.roster
}

// NewMemberSearch creates a new MemberSearch over roster
func NewMemberSearch(roster model.Roster) MemberSearcher {
	return &MemberSearch{
		roster: roster,
	}
}
