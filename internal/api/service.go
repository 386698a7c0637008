// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package api defines the roster-svc service contract: payloads, results,
// errors and the goa endpoints wrapping a Service implementation.
package api

import (
	"context"

	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// ServiceName is the name of the service as used in logs and endpoints.
const ServiceName = "roster-svc"

// MethodNames lists the service method names.
var MethodNames = [5]string{"search-member", "member-card", "roster-source", "readyz", "livez"}

// Service is the roster lookup API.
type Service interface {
	// Resolve a query against the roster by exact, case-insensitive match on
	// name or codename.
	SearchMember(context.Context, *QueryPayload) (res *SearchMemberResult, err error)
	// Render the member or not-found card for a query as HTML.
	MemberCard(context.Context, *QueryPayload) (res []byte, err error)
	// Describe the loaded roster.
	RosterSource(context.Context, *SourcePayload) (res *SourceResult, err error)
	// Check if the service is able to take inbound requests.
	Readyz(context.Context) (res []byte, err error)
	// Check if the service is alive.
	Livez(context.Context) (res []byte, err error)
}

// Auther defines the authorization functions to be implemented by the service.
type Auther interface {
	// JWTAuth implements the authorization logic for the JWT security scheme.
	JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error)
}

// QueryPayload is the payload of the search-member and member-card methods.
type QueryPayload struct {
	// BearerToken is the JWT from the Authorization header
	BearerToken string
	// Version is the API version
	Version string
	// Q is the raw query text
	Q string
}

// SourcePayload is the payload of the roster-source method.
type SourcePayload struct {
	BearerToken string
	Version     string
}

// SearchMemberResult is the outcome of a member search.
type SearchMemberResult struct {
	Found      bool        `json:"found"`
	Query      string      `json:"query"`
	Member     *Member     `json:"member,omitempty"`
	Highlights *Highlights `json:"highlights,omitempty"`
	Message    *string     `json:"message,omitempty"`
}

// Member is a roster record.
type Member struct {
	Name     string `json:"name"`
	Codename string `json:"codename"`
	Role     string `json:"role"`
}

// Highlights marks where the query occurs in the member's fields.
type Highlights struct {
	Name     []*Span `json:"name"`
	Codename []*Span `json:"codename"`
}

// Span is a half-open byte range.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SourceResult describes the roster in use.
type SourceResult struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Error names returned by the service methods.
const (
	ErrBadRequest         = "BadRequest"
	ErrUnauthorized       = "Unauthorized"
	ErrNotFound           = "NotFound"
	ErrServiceUnavailable = "ServiceUnavailable"
	ErrInternalServer     = "InternalServerError"
)

// MakeBadRequest builds a BadRequest service error.
func MakeBadRequest(message string) *goa.ServiceError {
	return goa.PermanentError(ErrBadRequest, "%s", message)
}

// MakeUnauthorized builds an Unauthorized service error.
func MakeUnauthorized(message string) *goa.ServiceError {
	return goa.PermanentError(ErrUnauthorized, "%s", message)
}

// MakeNotFound builds a NotFound service error.
func MakeNotFound(message string) *goa.ServiceError {
	return goa.PermanentError(ErrNotFound, "%s", message)
}

// MakeServiceUnavailable builds a ServiceUnavailable service error.
func MakeServiceUnavailable(message string) *goa.ServiceError {
	return goa.TemporaryError(ErrServiceUnavailable, "%s", message)
}

// MakeInternalServer builds an InternalServerError service error.
func MakeInternalServer(message string) *goa.ServiceError {
	return goa.PermanentError(ErrInternalServer, "%s", message)
}
