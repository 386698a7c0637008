// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package server maps the roster-svc endpoints onto HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Server lists the roster-svc endpoint HTTP handlers.
type Server struct {
	Mounts       []*MountPoint
	SearchMember http.Handler
	MemberCard   http.Handler
	RosterSource http.Handler
	Readyz       http.Handler
	Livez        http.Handler
}

// MountPoint holds information about the mounted endpoints.
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the
	// mounted handler.
	Pattern string
}

// ErrorHandler is called when writing a response fails.
type ErrorHandler func(context.Context, http.ResponseWriter, error)

// New instantiates HTTP handlers for all the roster-svc service endpoints
// using the provided encoder.
func New(e *api.Endpoints, enc func(context.Context, http.ResponseWriter) goahttp.Encoder, eh ErrorHandler) *Server {
	return &Server{
		Mounts: []*MountPoint{
			{"SearchMember", "GET", "/roster/members"},
			{"MemberCard", "GET", "/roster/card"},
			{"RosterSource", "GET", "/roster/source"},
			{"Readyz", "GET", "/readyz"},
			{"Livez", "GET", "/livez"},
		},
		SearchMember: newHandler(e.SearchMember, decodeQueryRequest, encodeSearchMemberResponse(enc), enc, eh),
		MemberCard:   newHandler(e.MemberCard, decodeQueryRequest, encodeBytesResponse("text/html; charset=utf-8"), enc, eh),
		RosterSource: newHandler(e.RosterSource, decodeSourceRequest, encodeSourceResponse(enc), enc, eh),
		Readyz:       newHandler(e.Readyz, decodeEmptyRequest, encodeBytesResponse("text/plain; charset=utf-8"), enc, eh),
		Livez:        newHandler(e.Livez, decodeEmptyRequest, encodeBytesResponse("text/plain; charset=utf-8"), enc, eh),
	}
}

// Service returns the name of the service served.
func (s *Server) Service() string { return api.ServiceName }

// Use wraps the server handlers with the given middleware.
func (s *Server) Use(m func(http.Handler) http.Handler) {
	s.SearchMember = m(s.SearchMember)
	s.MemberCard = m(s.MemberCard)
	s.RosterSource = m(s.RosterSource)
	s.Readyz = m(s.Readyz)
	s.Livez = m(s.Livez)
}

// Mount configures the mux to serve the roster-svc endpoints.
func Mount(mux goahttp.Muxer, h *Server) {
	mux.Handle("GET", "/roster/members", h.SearchMember.ServeHTTP)
	mux.Handle("GET", "/roster/card", h.MemberCard.ServeHTTP)
	mux.Handle("GET", "/roster/source", h.RosterSource.ServeHTTP)
	mux.Handle("GET", "/readyz", h.Readyz.ServeHTTP)
	mux.Handle("GET", "/livez", h.Livez.ServeHTTP)
}

type (
	requestDecoder  func(*http.Request) (any, error)
	responseEncoder func(context.Context, http.ResponseWriter, any) error
)

// newHandler decodes the request, calls the endpoint and encodes either the
// result or the error.
func newHandler(
	endpoint goa.Endpoint,
	decode requestDecoder,
	encode responseEncoder,
	enc func(context.Context, http.ResponseWriter) goahttp.Encoder,
	eh ErrorHandler,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := decode(r)
		if err != nil {
			if errEncode := encodeError(ctx, w, enc, err); errEncode != nil && eh != nil {
				eh(ctx, w, errEncode)
			}
			return
		}

		res, err := endpoint(ctx, payload)
		if err != nil {
			if errEncode := encodeError(ctx, w, enc, err); errEncode != nil && eh != nil {
				eh(ctx, w, errEncode)
			}
			return
		}

		if err := encode(ctx, w, res); err != nil && eh != nil {
			eh(ctx, w, err)
		}
	})
}
