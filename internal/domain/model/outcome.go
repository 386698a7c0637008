// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// QueryOutcome is the result of one search: a matched member or a not-found
// signal. Both variants carry the trimmed query text in its original case.
type QueryOutcome struct {
	member *Member
	query  string
}

// Found builds the outcome for a matched member.
func Found(member Member, query string) QueryOutcome {
	return QueryOutcome{member: &member, query: query}
}

// NotFound builds the outcome for a query without a match.
func NotFound(query string) QueryOutcome {
	return QueryOutcome{query: query}
}

// IsFound reports whether a member matched.
func (o QueryOutcome) IsFound() bool {
	return o.member != nil
}

// Member returns the matched member and true, or the zero value and false.
func (o QueryOutcome) Member() (Member, bool) {
	if o.member == nil {
		return Member{}, false
	}
	return *o.member, true
}

// Query returns the trimmed query text as typed by the user.
func (o QueryOutcome) Query() string {
	return o.query
}

// Span is a half-open byte range [Start, End) inside a display field.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MemberView is what a renderer needs to display a found member.
type MemberView struct {
	Member Member
	// Query is the trimmed query the highlights were computed for
	Query string
	// NameHighlights marks the query occurrences inside Member.Name
	NameHighlights []Span
	// CodenameHighlights marks the query occurrences inside Member.Codename
	CodenameHighlights []Span
}
