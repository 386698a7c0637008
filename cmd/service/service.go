// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/log"

	"goa.design/goa/v3/security"
)

// roster-svc service implementation using clean architecture.
type rosterSvcsrvc struct {
	memberService usecase.MemberSearcher
	renderer      port.ResultRenderer
	auth          port.Authenticator
}

// JWTAuth implements the authorization logic for service "roster-svc" for the
// "jwt" security scheme.
func (s *rosterSvcsrvc) JWTAuth(ctx context.Context, token string, scheme *security.JWTScheme) (context.Context, error) {

	// Parse the Heimdall-authorized principal from the token.
	principal, err := s.auth.ParsePrincipal(ctx, token, slog.Default())
	if err != nil {
		return ctx, wrapError(ctx, err)
	}

	// Log the principal for debugging purposes in all logs for this request.
	ctx = log.AppendCtx(ctx, slog.String(string(constants.PrincipalAttribute), principal))

	// Return a new context containing the principal as a value.
	return context.WithValue(ctx, constants.PrincipalContextID, principal), nil
}

// Resolve a query against the loaded roster. A query without a match is a
// successful response with found set to false.
func (s *rosterSvcsrvc) SearchMember(ctx context.Context, p *api.QueryPayload) (res *api.SearchMemberResult, err error) {

	slog.DebugContext(ctx, "rosterSvc.search-member",
		"q", p.Q,
	)

	outcome := s.memberService.SearchMember(ctx, p.Q)
	return s.outcomeToResponse(outcome), nil
}

// Render the member or not-found card for a query.
func (s *rosterSvcsrvc) MemberCard(ctx context.Context, p *api.QueryPayload) (res []byte, err error) {

	slog.DebugContext(ctx, "rosterSvc.member-card",
		"q", p.Q,
	)

	outcome := s.memberService.SearchMember(ctx, p.Q)
	return []byte(s.renderOutcome(outcome)), nil
}

// Describe the loaded roster.
func (s *rosterSvcsrvc) RosterSource(ctx context.Context, p *api.SourcePayload) (res *api.SourceResult, err error) {
	roster := s.memberService.Roster()
	return &api.SourceResult{
		Source: roster.Source(),
		Count:  roster.Len(),
	}, nil
}

// Check if the service is able to take inbound requests.
func (s *rosterSvcsrvc) Readyz(ctx context.Context) (res []byte, err error) {
	// The server only starts once the roster is loaded, so a running
	// service always has a roster to search.
	if s.memberService == nil {
		slog.ErrorContext(ctx, "rosterSvc.readyz failed: roster not loaded")
		return nil, api.MakeServiceUnavailable("roster not loaded")
	}
	return []byte("OK\n"), nil
}

// Check if the service is alive.
func (s *rosterSvcsrvc) Livez(ctx context.Context) (res []byte, err error) {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	return []byte("OK\n"), nil
}

// NewRosterSvc returns the roster-svc service implementation.
func NewRosterSvc(memberService usecase.MemberSearcher,
	renderer port.ResultRenderer,
	auth port.Authenticator,
) api.ServiceAuther {
	return &rosterSvcsrvc{
		memberService: memberService,
		renderer:      renderer,
		auth:          auth,
	}
}
