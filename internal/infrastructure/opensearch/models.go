// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

import "github.com/goccy/go-json"

// Config represents OpenSearch configuration
type Config struct {
	URL   string `json:"url"`
	Index string `json:"index"`
	// SortField orders members; ties are broken by document id
	SortField string `json:"sort_field"`
	// Size caps the number of members read
	Size int `json:"size"`
}

// SearchResponse represents the OpenSearch search response
type SearchResponse struct {
	Hits `json:"hits"`
}

// Hits represents the hits in the search response
type Hits struct {
	Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total represents the total number of hits
type Total struct {
	Value int `json:"value"`
}

// Hit represents a single search result hit
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// memberDocument is the indexed shape of a roster member
type memberDocument struct {
	ObjectType string          `json:"object_type"`
	Data       json.RawMessage `json:"data"`
}
