// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/auth"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/file"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/opensearch"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/remote"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/valkey"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/config"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
)

// RosterSourceImpl injects the roster source implementation selected by
// ROSTER_SOURCE. Invalid configuration is fatal; an unreachable backend is
// not, its error surfaces from the single fetch and the roster falls back.
func RosterSourceImpl(ctx context.Context) port.RosterSource {
	source, err := NewRosterSource(ctx, config.StringEnv("ROSTER_SOURCE", constants.DefaultRosterSource))
	if err != nil {
		log.Fatalf("failed to initialize roster source: %v", err)
	}
	return source
}

// NewRosterSource builds the named roster source from the environment.
func NewRosterSource(ctx context.Context, sourceName string) (port.RosterSource, error) {

	switch sourceName {
	case mock.SourceName:
		slog.InfoContext(ctx, "initializing mock roster source")
		return mock.NewMockRosterSource(), nil

	case file.SourceName:
		path := config.StringEnv("ROSTER_FILE", constants.DefaultRosterFile)
		slog.InfoContext(ctx, "initializing file roster source",
			"path", path,
		)
		source, err := file.NewRosterSource(path)
		if err != nil {
			return nil, err
		}
		return source, nil

	case remote.SourceName:
		remoteConfig, err := remote.NewConfig(
			os.Getenv("ROSTER_URL"),
			os.Getenv("ROSTER_URL_TOKEN"),
			os.Getenv("ROSTER_HTTP_TIMEOUT"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create remote roster configuration: %w", err)
		}
		slog.InfoContext(ctx, "initializing remote roster source",
			"url", remoteConfig.URL,
			"timeout", remoteConfig.Timeout,
		)
		return remote.NewClient(remoteConfig), nil

	case opensearch.SourceName:
		size, err := intEnv("OPENSEARCH_SIZE", constants.DefaultRosterIndexSize)
		if err != nil {
			return nil, err
		}
		opensearchConfig := opensearch.Config{
			URL:       config.StringEnv("OPENSEARCH_URL", "http://localhost:9200"),
			Index:     config.StringEnv("OPENSEARCH_INDEX", "resources"),
			SortField: config.StringEnv("OPENSEARCH_SORT_FIELD", "sort_name"),
			Size:      size,
		}
		slog.InfoContext(ctx, "initializing opensearch roster source",
			"url", opensearchConfig.URL,
			"index", opensearchConfig.Index,
		)
		searcher, err := opensearch.NewRosterSearcher(ctx, opensearchConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenSearch roster source: %w", err)
		}
		if errReady := searcher.IsReady(ctx); errReady != nil {
			slog.WarnContext(ctx, "opensearch cluster is not ready, the roster fetch may fall back",
				"url", opensearchConfig.URL,
				"error", errReady,
			)
		}
		return searcher, nil

	case nats.SourceName:
		natsConfig, err := natsConfigFromEnv()
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "initializing NATS roster source",
			"url", natsConfig.URL,
			"subject", natsConfig.Subject,
		)
		source, err := nats.NewRosterSource(ctx, natsConfig)
		if err != nil {
			return newUnavailableSource(nats.SourceName, err), nil
		}
		return source, nil

	case valkey.SourceName:
		db, err := intEnv("VALKEY_DB", 0)
		if err != nil {
			return nil, err
		}
		valkeyConfig := valkey.Config{
			Addr:         config.StringEnv("VALKEY_ADDR", "localhost:6379"),
			Username:     os.Getenv("VALKEY_USERNAME"),
			Password:     os.Getenv("VALKEY_PASSWORD"),
			DB:           db,
			Key:          config.StringEnv("VALKEY_ROSTER_KEY", constants.DefaultRosterKey),
			DisableCache: os.Getenv("VALKEY_DISABLE_CACHE") == "true",
		}
		slog.InfoContext(ctx, "initializing valkey roster source",
			"addr", valkeyConfig.Addr,
			"key", valkeyConfig.Key,
		)
		source, err := valkey.NewRosterSource(ctx, valkeyConfig)
		if err != nil {
			return newUnavailableSource(valkey.SourceName, err), nil
		}
		return source, nil

	default:
		return nil, fmt.Errorf("unsupported roster source implementation: %s", sourceName)
	}
}

// RosterLoadTimeout returns the bound on the single roster fetch.
func RosterLoadTimeout() time.Duration {
	timeout, err := config.DurationEnv("ROSTER_LOAD_TIMEOUT", constants.DefaultRosterLoadTimeout)
	if err != nil {
		log.Fatalf("invalid roster load timeout: %v", err)
	}
	return timeout
}

// AuthServiceImpl injects the authentication service implementation
func AuthServiceImpl(ctx context.Context) port.Authenticator {
	authService, err := NewAuthService(ctx, config.StringEnv("AUTH_SOURCE", "jwt"))
	if err != nil {
		log.Fatalf("failed to initialize authentication service: %v", err)
	}
	return authService
}

// NewAuthService builds the named authentication service from the environment.
func NewAuthService(ctx context.Context, authSource string) (port.Authenticator, error) {

	switch authSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock authentication service")
		return mock.NewMockAuthService(), nil

	case "anonymous":
		slog.WarnContext(ctx, "authentication disabled, all requests use the anonymous principal")
		return auth.AnonymousAuth{}, nil

	case "jwt":
		jwtConfig := auth.JWTAuthConfig{
			JWKSURL:  os.Getenv("JWKS_URL"),
			Audience: os.Getenv("AUDIENCE"),
		}
		slog.InfoContext(ctx, "initializing JWT authentication service",
			"jwks_url", jwtConfig.JWKSURL,
		)
		jwtAuth, err := auth.NewJWTAuth(jwtConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT authentication service: %w", err)
		}
		return jwtAuth, nil

	default:
		return nil, fmt.Errorf("unsupported authentication implementation: %s", authSource)
	}
}

func natsConfigFromEnv() (nats.Config, error) {
	natsTimeout, err := config.DurationEnv("NATS_TIMEOUT", 10*time.Second)
	if err != nil {
		return nats.Config{}, err
	}
	natsMaxReconnect, err := intEnv("NATS_MAX_RECONNECT", 3)
	if err != nil {
		return nats.Config{}, err
	}
	natsReconnectWait, err := config.DurationEnv("NATS_RECONNECT_WAIT", 2*time.Second)
	if err != nil {
		return nats.Config{}, err
	}

	return nats.Config{
		URL:           config.StringEnv("NATS_URL", "nats://localhost:4222"),
		Subject:       config.StringEnv("NATS_ROSTER_SUBJECT", constants.DefaultRosterSubject),
		Timeout:       natsTimeout,
		MaxReconnect:  natsMaxReconnect,
		ReconnectWait: natsReconnectWait,
	}, nil
}

func intEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %s: %w", name, raw, err)
	}
	return v, nil
}

// unavailableSource stands in for a backend that could not be reached at
// start-up; its only fetch fails with the connection error.
type unavailableSource struct {
	name string
	err  error
}

func newUnavailableSource(name string, err error) port.RosterSource {
	slog.Warn("roster source unreachable, the default roster will be used",
		"source", name,
		"error", err,
	)
	return &unavailableSource{name: name, err: err}
}

func (u *unavailableSource) Name() string { return u.name }

func (u *unavailableSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	return nil, errors.NewServiceUnavailable(fmt.Sprintf("%s roster source unreachable", u.name), u.err)
}

func (u *unavailableSource) Close() error { return nil }
