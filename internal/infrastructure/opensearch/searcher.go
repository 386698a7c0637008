// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "opensearch"

// RosterSearcher reads the roster from member documents in an OpenSearch index
type RosterSearcher struct {
	client OpenSearchClientRetriever
	index  string
	size   int
	sort   string
}

// OpenSearchClientRetriever defines the interface for OpenSearch operations
// This allows for easy mocking and testing
type OpenSearchClientRetriever interface {
	Search(ctx context.Context, index string, query []byte) (*SearchResponse, error)
	IsReady(ctx context.Context) error
}

// Name implements port.RosterSource
func (os *RosterSearcher) Name() string {
	return SourceName
}

// FetchRoster implements port.RosterSource
func (os *RosterSearcher) FetchRoster(ctx context.Context) ([]model.Member, error) {
	query, err := os.Render(ctx)
	if err != nil {
		return nil, errors.NewUnexpected("failed to render query", err)
	}

	response, err := os.client.Search(ctx, os.index, query)
	if err != nil {
		return nil, errors.NewServiceUnavailable("opensearch search failed", err)
	}

	members, err := os.convertResponse(response)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "opensearch roster fetched",
		"index", os.index,
		"members", len(members),
		"total_hits", response.Hits.Total.Value,
	)
	return members, nil
}

// Render generates the OpenSearch query selecting roster members
func (os *RosterSearcher) Render(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	data := queryTemplateData{
		ObjectType: constants.RosterMemberObjectType,
		Size:       os.size,
		SortField:  os.sort,
	}
	if err := queryMembersTemplate.Execute(&buf, data); err != nil {
		slog.ErrorContext(ctx, "failed to render query template", "error", err)
		return nil, err
	}
	if !json.Valid(buf.Bytes()) {
		return nil, fmt.Errorf("rendered query is not valid JSON")
	}
	return buf.Bytes(), nil
}

// convertResponse converts hits to members in index order. A single bad hit
// fails the whole roster, and so does an index holding more members than
// one page returns.
func (os *RosterSearcher) convertResponse(response *SearchResponse) ([]model.Member, error) {
	if response == nil {
		return nil, errors.NewValidation("opensearch returned no response")
	}
	if response.Hits.Total.Value > len(response.Hits.Hits) {
		return nil, errors.NewValidation(fmt.Sprintf(
			"opensearch index holds %d members but only %d were returned, raise OPENSEARCH_SIZE",
			response.Hits.Total.Value, len(response.Hits.Hits),
		))
	}

	members := make([]model.Member, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		member, err := os.convertHit(hit)
		if err != nil {
			return nil, errors.NewValidation(fmt.Sprintf("invalid member document %q", hit.ID), err)
		}
		members = append(members, member)
	}
	return members, nil
}

// convertHit converts a single OpenSearch hit to a member
func (os *RosterSearcher) convertHit(hit Hit) (model.Member, error) {
	if len(hit.Source) == 0 {
		return model.Member{}, fmt.Errorf("missing source")
	}

	var doc memberDocument
	if err := json.Unmarshal(hit.Source, &doc); err != nil {
		return model.Member{}, fmt.Errorf("failed to unmarshal source data: %w", err)
	}

	// documents without a separate data field carry the member at the top level
	data := doc.Data
	if len(data) == 0 {
		data = hit.Source
	}

	var member model.Member
	if err := json.Unmarshal(data, &member); err != nil {
		return model.Member{}, fmt.Errorf("failed to unmarshal member data: %w", err)
	}
	if member.Name == "" && member.Codename == "" {
		return model.Member{}, fmt.Errorf("member has neither name nor codename")
	}
	return member, nil
}

// Close implements port.RosterSource
func (os *RosterSearcher) Close() error {
	return nil
}

// IsReady checks if the OpenSearch cluster is reachable. It is called once
// before the roster fetch so an unreachable cluster is reported on its own.
func (os *RosterSearcher) IsReady(ctx context.Context) error {
	return os.client.IsReady(ctx)
}

// NewRosterSearcher returns an OpenSearch backed roster source
func NewRosterSearcher(ctx context.Context, config Config) (*RosterSearcher, error) {

	if config.URL == "" {
		slog.ErrorContext(ctx, "opensearch URL is required")
		return nil, fmt.Errorf("opensearch URL is required")
	}
	if config.Index == "" {
		slog.ErrorContext(ctx, "opensearch index is required")
		return nil, fmt.Errorf("opensearch index is required")
	}

	opensearchClient, errOpensearchClient := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{config.URL},
			Transport: &http.Transport{
				MaxIdleConnsPerHost:   10,
				ResponseHeaderTimeout: 5 * time.Second,
				DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
			},
		},
	})
	if errOpensearchClient != nil {
		slog.ErrorContext(ctx, "failed to create OpenSearch client", "error", errOpensearchClient)
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", errOpensearchClient)
	}

	return newRosterSearcher(&httpClient{client: opensearchClient}, config), nil
}

func newRosterSearcher(client OpenSearchClientRetriever, config Config) *RosterSearcher {
	size := config.Size
	if size <= 0 {
		size = constants.DefaultRosterIndexSize
	}
	return &RosterSearcher{
		client: client,
		index:  config.Index,
		size:   size,
		sort:   config.SortField,
	}
}

var _ port.RosterSource = (*RosterSearcher)(nil)
