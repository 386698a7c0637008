// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"unicode"
	"unicode/utf8"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
)

// Highlight returns every case-insensitive occurrence of query inside text,
// left to right and non-overlapping. The query is matched literally, so
// characters such as "(" or "*" have no special meaning. An empty query
// marks nothing.
func Highlight(text, query string) []model.Span {
	if query == "" {
		return nil
	}

	var spans []model.Span
	for i := 0; i < len(text); {
		if n, ok := foldPrefix(text[i:], query); ok {
			spans = append(spans, model.Span{Start: i, End: i + n})
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// View builds the renderer input for a found outcome, highlighting the query
// inside the member's name and codename. It returns false for NotFound.
func View(outcome model.QueryOutcome) (model.MemberView, bool) {
	member, ok := outcome.Member()
	if !ok {
		return model.MemberView{}, false
	}

	query := outcome.Query()
	return model.MemberView{
		Member:             member,
		Query:              query,
		NameHighlights:     Highlight(member.Name, query),
		CodenameHighlights: Highlight(member.Codename, query),
	}, true
}

// foldPrefix reports whether s starts with query ignoring case, and the byte
// length of that prefix in s.
func foldPrefix(s, query string) (int, bool) {
	n := 0
	for _, qr := range query {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(sr, qr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// equalFoldRune matches runes equal under simple folding or under
// unicode.ToLower, the mapping Resolve compares with.
func equalFoldRune(a, b rune) bool {
	if a == b || unicode.ToLower(a) == unicode.ToLower(b) {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
