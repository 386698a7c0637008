// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// Member represents one roster entry
type Member struct {
	// Display name
	Name string `json:"name" yaml:"name"`
	// Alternate identifier
	Codename string `json:"codename" yaml:"codename"`
	// Descriptive label
	Role string `json:"role" yaml:"role"`
}

// Roster is the ordered, read-only collection of members for one load.
// The zero value is an empty roster.
type Roster struct {
	members []Member
	source  string
}

// NewRoster builds a roster from members in the given order. The slice is
// copied so later changes by the caller are not observed.
func NewRoster(source string, members []Member) Roster {
	copied := make([]Member, len(members))
	copy(copied, members)
	return Roster{
		members: copied,
		source:  source,
	}
}

// Members returns a copy of the roster entries in stored order.
func (r Roster) Members() []Member {
	copied := make([]Member, len(r.members))
	copy(copied, r.members)
	return copied
}

// Len returns the number of members.
func (r Roster) Len() int {
	return len(r.members)
}

// At returns the member at index i in stored order.
func (r Roster) At(i int) Member {
	return r.members[i]
}

// Source names where the roster came from.
func (r Roster) Source() string {
	return r.source
}

// DefaultSourceName labels the built-in roster.
const DefaultSourceName = "default"

// DefaultMembers returns the built-in placeholder roster entries.
func DefaultMembers() []Member {
	return []Member{
		{Name: "Agent Alpha", Codename: "EagleEye", Role: "Member"},
		{Name: "Agent Beta", Codename: "IronWall", Role: "Member"},
	}
}

// DefaultRoster is the roster used whenever the data source cannot be read.
func DefaultRoster() Roster {
	return NewRoster(DefaultSourceName, DefaultMembers())
}
