// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package api

import (
	"context"

	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Endpoints wraps the roster-svc service methods.
type Endpoints struct {
	SearchMember goa.Endpoint
	MemberCard   goa.Endpoint
	RosterSource goa.Endpoint
	Readyz       goa.Endpoint
	Livez        goa.Endpoint
}

// ServiceAuther is a Service that also authorizes requests.
type ServiceAuther interface {
	Service
	Auther
}

// NewEndpoints wraps the methods of s in endpoints. Roster endpoints
// authorize the bearer token before calling the method.
func NewEndpoints(s ServiceAuther) *Endpoints {
	return &Endpoints{
		SearchMember: NewSearchMemberEndpoint(s, s.JWTAuth),
		MemberCard:   NewMemberCardEndpoint(s, s.JWTAuth),
		RosterSource: NewRosterSourceEndpoint(s, s.JWTAuth),
		Readyz:       NewReadyzEndpoint(s),
		Livez:        NewLivezEndpoint(s),
	}
}

// Use applies the given middleware to all the endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.SearchMember = m(e.SearchMember)
	e.MemberCard = m(e.MemberCard)
	e.RosterSource = m(e.RosterSource)
	e.Readyz = m(e.Readyz)
	e.Livez = m(e.Livez)
}

// NewSearchMemberEndpoint returns an endpoint function that calls the
// method "search-member".
func NewSearchMemberEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*QueryPayload)
		ctx, err := authJWTFn(ctx, p.BearerToken, jwtScheme())
		if err != nil {
			return nil, err
		}
		return s.SearchMember(ctx, p)
	}
}

// NewMemberCardEndpoint returns an endpoint function that calls the method
// "member-card".
func NewMemberCardEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*QueryPayload)
		ctx, err := authJWTFn(ctx, p.BearerToken, jwtScheme())
		if err != nil {
			return nil, err
		}
		return s.MemberCard(ctx, p)
	}
}

// NewRosterSourceEndpoint returns an endpoint function that calls the
// method "roster-source".
func NewRosterSourceEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*SourcePayload)
		ctx, err := authJWTFn(ctx, p.BearerToken, jwtScheme())
		if err != nil {
			return nil, err
		}
		return s.RosterSource(ctx, p)
	}
}

// NewReadyzEndpoint returns an endpoint function that calls the method
// "readyz".
func NewReadyzEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Readyz(ctx)
	}
}

// NewLivezEndpoint returns an endpoint function that calls the method
// "livez".
func NewLivezEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		return s.Livez(ctx)
	}
}

func jwtScheme() *security.JWTScheme {
	return &security.JWTScheme{
		Name:           "jwt",
		Scopes:         []string{},
		RequiredScopes: []string{},
	}
}
