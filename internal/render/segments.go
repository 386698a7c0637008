// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package render turns search outcomes into display output.
package render

import (
	"sort"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
)

// Segment is a run of text that is either plain or highlighted.
type Segment struct {
	Text        string
	Highlighted bool
}

// Segments splits text into plain and highlighted runs following spans.
// Spans outside the text are clipped and overlapping spans are merged into
// the earlier one.
func Segments(text string, spans []model.Span) []Segment {
	if text == "" {
		return nil
	}

	ordered := make([]model.Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var segments []Segment
	pos := 0
	for _, span := range ordered {
		start, end := clamp(span.Start, len(text)), clamp(span.End, len(text))
		if start < pos {
			start = pos
		}
		if end <= start {
			continue
		}
		if start > pos {
			segments = append(segments, Segment{Text: text[pos:start]})
		}
		segments = append(segments, Segment{Text: text[start:end], Highlighted: true})
		pos = end
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}
	return segments
}

func clamp(v, limit int) int {
	switch {
	case v < 0:
		return 0
	case v > limit:
		return limit
	default:
		return v
	}
}
