// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
)

// outcomeToResponse converts a domain outcome to the API result
func (s *rosterSvcsrvc) outcomeToResponse(outcome model.QueryOutcome) *api.SearchMemberResult {
	view, ok := usecase.View(outcome)
	if !ok {
		message := fmt.Sprintf(`"%s" does not match any registered member.`, outcome.Query())
		return &api.SearchMemberResult{
			Found:   false,
			Query:   outcome.Query(),
			Message: &message,
		}
	}

	return &api.SearchMemberResult{
		Found: true,
		Query: outcome.Query(),
		Member: &api.Member{
			Name:     view.Member.Name,
			Codename: view.Member.Codename,
			Role:     view.Member.Role,
		},
		Highlights: &api.Highlights{
			Name:     spansToResponse(view.NameHighlights),
			Codename: spansToResponse(view.CodenameHighlights),
		},
	}
}

// spansToResponse always returns a non-nil slice so empty highlights
// encode as [] rather than null
func spansToResponse(spans []model.Span) []*api.Span {
	response := make([]*api.Span, len(spans))
	for i, span := range spans {
		response[i] = &api.Span{Start: span.Start, End: span.End}
	}
	return response
}

// renderOutcome renders the member card or the not-found card
func (s *rosterSvcsrvc) renderOutcome(outcome model.QueryOutcome) string {
	if view, ok := usecase.View(outcome); ok {
		return s.renderer.RenderMember(view)
	}
	return s.renderer.RenderNotFound(outcome.Query())
}
