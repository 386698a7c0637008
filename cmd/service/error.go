// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
)

func wrapError(ctx context.Context, err error) error {

	f := func(err error) error {
		if err == nil {
			return api.MakeInternalServer("unknown error")
		}

		var (
			validation   errors.Validation
			notFound     errors.NotFound
			unauthorized errors.Unauthorized
			unavailable  errors.ServiceUnavailable
		)
		switch {
		case stderrors.As(err, &unauthorized):
			return api.MakeUnauthorized(err.Error())
		case stderrors.As(err, &validation):
			return api.MakeBadRequest(err.Error())
		case stderrors.As(err, &notFound):
			return api.MakeNotFound(err.Error())
		case stderrors.As(err, &unavailable):
			return api.MakeServiceUnavailable(err.Error())
		default:
			return api.MakeInternalServer(err.Error())
		}
	}

	slog.ErrorContext(ctx, "request failed",
		"error", err,
	)
	return f(err)
}
