// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import "time"

const (
	// DefaultRosterSource is the roster source used when ROSTER_SOURCE is unset
	DefaultRosterSource = "file"
	// DefaultRosterFile is the roster document read by the file source
	DefaultRosterFile = "data/members.json"
	// DefaultRosterLoadTimeout bounds the single roster fetch at start-up
	DefaultRosterLoadTimeout = 10 * time.Second

	// RosterMemberObjectType is the object type of indexed roster members
	RosterMemberObjectType = "member"
	// DefaultRosterIndexSize caps the number of members read from an index
	DefaultRosterIndexSize = 500

	// DefaultRosterSubject is the NATS subject answering roster requests
	DefaultRosterSubject = "lfx.roster.members"
	// DefaultRosterKey is the Valkey key holding the roster document
	DefaultRosterKey = "roster:members"
)
