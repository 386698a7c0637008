// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// ErrorBody is the response body of every failed request.
type ErrorBody struct {
	// Name is the error name, e.g. "BadRequest"
	Name string `json:"name"`
	// ID is a unique value identifying the occurrence of the error
	ID string `json:"id"`
	// Message describes the error
	Message string `json:"message"`
}

// decodeQueryRequest returns a decoder for requests sent to the
// search-member and member-card endpoints.
func decodeQueryRequest(r *http.Request) (any, error) {
	version, err := decodeVersion(r)
	if err != nil {
		return nil, err
	}
	return &api.QueryPayload{
		BearerToken: bearerToken(r),
		Version:     version,
		Q:           r.URL.Query().Get("q"),
	}, nil
}

// decodeSourceRequest returns a decoder for requests sent to the
// roster-source endpoint.
func decodeSourceRequest(r *http.Request) (any, error) {
	version, err := decodeVersion(r)
	if err != nil {
		return nil, err
	}
	return &api.SourcePayload{
		BearerToken: bearerToken(r),
		Version:     version,
	}, nil
}

func decodeEmptyRequest(r *http.Request) (any, error) {
	return nil, nil
}

func decodeVersion(r *http.Request) (string, error) {
	version := r.URL.Query().Get("v")
	if version == "" {
		return "", api.MakeBadRequest(`missing required query parameter "v"`)
	}
	if version != constants.APIVersion {
		return "", api.MakeBadRequest(fmt.Sprintf("unsupported API version %q, expected %q", version, constants.APIVersion))
	}
	return version, nil
}

// bearerToken strips the scheme from the Authorization header.
func bearerToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(rest)
	}
	return token
}

// encodeSearchMemberResponse returns an encoder for responses returned by
// the search-member endpoint.
func encodeSearchMemberResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) responseEncoder {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*api.SearchMemberResult)
		enc := encoder(ctx, w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(res)
	}
}

// encodeSourceResponse returns an encoder for responses returned by the
// roster-source endpoint.
func encodeSourceResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) responseEncoder {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.(*api.SourceResult)
		enc := encoder(ctx, w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(res)
	}
}

// encodeBytesResponse writes a raw byte result with the given content type.
func encodeBytesResponse(contentType string) responseEncoder {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res, _ := v.([]byte)
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(res)
		return err
	}
}

// encodeError writes err as an ErrorBody with the status matching its name.
func encodeError(ctx context.Context, w http.ResponseWriter, encoder func(context.Context, http.ResponseWriter) goahttp.Encoder, err error) error {
	var serviceErr *goa.ServiceError
	if !errors.As(err, &serviceErr) {
		serviceErr = api.MakeInternalServer(err.Error())
	}

	body := ErrorBody{
		Name:    serviceErr.Name,
		ID:      serviceErr.ID,
		Message: serviceErr.Message,
	}
	w.Header().Set("goa-error", serviceErr.Name)
	enc := encoder(ctx, w)
	w.WriteHeader(StatusCode(serviceErr.Name))
	return enc.Encode(body)
}

// StatusCode maps a service error name to its HTTP status.
func StatusCode(name string) int {
	switch name {
	case api.ErrBadRequest:
		return http.StatusBadRequest
	case api.ErrUnauthorized:
		return http.StatusUnauthorized
	case api.ErrNotFound:
		return http.StatusNotFound
	case api.ErrServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
