// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"strconv"
	"text/template"
)

var queryMembersTemplate = template.Must(
	template.New("queryMembers").
		Funcs(template.FuncMap{
			"quote": strconv.Quote,
		}).
		Parse(queryMembersSource))

// queryTemplateData is rendered into queryMembersSource
type queryTemplateData struct {
	ObjectType string
	Size       int
	SortField  string
}

const queryMembersSource = `{
  "size": {{ .Size }},
  "query": {
    "bool": {
      "must": [
        {
          "term": {
            "object_type": {{ .ObjectType | quote }}
          }
        }
      ]
    }
  },
  "sort": [
    {{- if .SortField }}
    {
      {{ .SortField | quote }}: {
        "order": "asc"
      }
    },
    {{- end }}
    {"_id": "asc"}
  ]
}`
