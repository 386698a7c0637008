// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

type contextID int

type logAttribute string

const (
	// PrincipalContextID is the context key holding the authenticated principal
	PrincipalContextID contextID = iota
)

const (
	// PrincipalAttribute is the log attribute carrying the principal
	PrincipalAttribute logAttribute = "principal"
	// AnonymousPrincipal is the identifier for anonymous users
	AnonymousPrincipal = `_anonymous`
)
