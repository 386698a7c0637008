// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"

// ResultRenderer turns a search outcome into display content
type ResultRenderer interface {
	// RenderMember renders the member card of a found outcome
	RenderMember(view model.MemberView) string

	// RenderNotFound renders the error card naming the query
	RenderNotFound(query string) string
}
