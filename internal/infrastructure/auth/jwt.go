// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	errs "github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

const (
	// PS256 is the default for Heimdall's JWT finalizer.
	signatureAlgorithm = validator.PS256
	defaultIssuer      = "heimdall"
	defaultAudience    = "lfx-v2-roster-service"
	defaultJWKSURL     = "http://heimdall:4457/.well-known/jwks"
)

// JWTAuthConfig holds the configuration parameters for JWT authentication.
type JWTAuthConfig struct {
	// JWKSURL is the URL to the JSON Web Key Set endpoint
	JWKSURL string
	// Audience is the intended audience for the JWT token
	Audience string
}

var (
	// Factory for custom JWT claims target.
	customClaims = func() validator.CustomClaims {
		return &HeimdallClaims{}
	}
)

// HeimdallClaims contains extra custom claims we want to parse from the JWT
// token.
type HeimdallClaims struct {
	Principal string `json:"principal"`
	Email     string `json:"email,omitempty"`
}

// Validate provides additional middleware validation of any claims defined in
// HeimdallClaims.
func (c *HeimdallClaims) Validate(ctx context.Context) error {
	if c.Principal == "" {
		return errors.New("principal must be provided")
	}
	return nil
}

// JWTAuth validates the tokens Heimdall issues for roster requests, with
// the roster service as audience, and extracts their principal.
type JWTAuth struct {
	validator *validator.Validator
	config    JWTAuthConfig
}

// ParsePrincipal validates the bearer token of a roster request and returns
// its principal. Every failure is an errors.Unauthorized, including a
// missing token, so the roster endpoints answer 401 rather than 500. The
// error text keeps at most two levels of the validator's error chain.
func (j *JWTAuth) ParsePrincipal(ctx context.Context, token string, logger *slog.Logger) (string, error) {

	if j.validator == nil {
		return "", errors.New("JWT validator is not set up")
	}
	if token == "" {
		return "", errs.NewUnauthorized("missing bearer token")
	}

	parsedJWT, err := j.validator.ValidateToken(ctx, token)
	if err != nil {
		logger.WarnContext(ctx, "failed to validate JWT token",
			"error", err,
		)
		return "", errs.NewUnauthorized(shallowError(err))
	}

	claims, ok := parsedJWT.(*validator.ValidatedClaims)
	if !ok {
		return "", errs.NewUnauthorized("failed to get validated authorization claims")
	}
	rosterClaims, ok := claims.CustomClaims.(*HeimdallClaims)
	if !ok {
		return "", errs.NewUnauthorized("failed to get custom authorization claims")
	}

	logger.DebugContext(ctx, "parsed principal",
		"principal", rosterClaims.Principal,
	)
	return rosterClaims.Principal, nil
}

// shallowError drops the third and deeper nested errors of err, using colons
// as an approximation of error boundaries, so key material and library
// internals are not echoed back to callers.
func shallowError(err error) string {
	errString := strings.Replace(err.Error(), ": go-jose/go-jose/jwt", "", 1)
	firstColon := strings.Index(errString, ":")
	if firstColon == -1 || firstColon+1 >= len(errString) {
		return errString
	}
	if secondColon := strings.Index(errString[firstColon+1:], ":"); secondColon != -1 {
		return errString[:firstColon+secondColon+1]
	}
	return errString
}

// AnonymousAuth admits every request as the anonymous principal.
type AnonymousAuth struct{}

// ParsePrincipal ignores the token and returns the anonymous principal.
func (AnonymousAuth) ParsePrincipal(ctx context.Context, token string, logger *slog.Logger) (string, error) {
	return constants.AnonymousPrincipal, nil
}

// NewJWTAuth creates the JWT authenticator. An empty JWKSURL or Audience
// falls back to the in-cluster Heimdall endpoint and the roster audience.
func NewJWTAuth(config JWTAuthConfig) (*JWTAuth, error) {
	// Set up defaults if not provided
	jwksURLStr := config.JWKSURL
	if jwksURLStr == "" {
		jwksURLStr = defaultJWKSURL
	}
	audience := config.Audience
	if audience == "" {
		audience = defaultAudience
	}

	// Set up Heimdall JWKS key provider.
	jwksURL, err := url.Parse(jwksURLStr)
	if err != nil {
		slog.With("error", err).Error("invalid JWKS_URL")
		return nil, err
	}
	var issuer *url.URL
	issuer, err = url.Parse(defaultIssuer)
	if err != nil {
		// This shouldn't happen; a bare hostname is a valid URL.
		slog.Error("unexpected URL parsing of default issuer")
		return nil, err
	}
	provider := jwks.NewCachingProvider(issuer, 5*time.Minute, jwks.WithCustomJWKSURI(jwksURL))

	// Set up the JWT validator.
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		signatureAlgorithm,
		issuer.String(),
		[]string{audience},
		validator.WithCustomClaims(customClaims),
		validator.WithAllowedClockSkew(5*time.Second),
	)
	if err != nil {
		slog.With("error", err).Error("failed to set up the Heimdall JWT validator")
		return nil, err
	}

	return &JWTAuth{
		validator: jwtValidator,
		config:    config,
	}, nil
}
