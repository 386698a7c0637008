// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
)

const (
	memberCardTemplate = `<div class="member-card"><h3>{{.Name}} <span class="codename">({{.Codename}})</span></h3><p class="role">Role: {{.Role}}</p></div>`

	notFoundCardTemplate = `<div class="member-card error-card"><h3 class="error-title">Member Not Found</h3><p class="error-message">"{{.}}" does not match any registered member.</p></div>`

	highlightOpen  = `<span class="highlight">`
	highlightClose = `</span>`
)

var (
	memberCard   = template.Must(template.New("member-card").Parse(memberCardTemplate))
	notFoundCard = template.Must(template.New("not-found-card").Parse(notFoundCardTemplate))
)

// HTML renders outcomes as the member and error cards of the roster page.
// Record and query text is always escaped.
type HTML struct{}

type memberCardData struct {
	Name     template.HTML
	Codename template.HTML
	Role     string
}

// RenderMember renders the member card with the query highlighted.
func (HTML) RenderMember(view model.MemberView) string {
	data := memberCardData{
		Name:     highlightHTML(view.Member.Name, view.NameHighlights),
		Codename: highlightHTML(view.Member.Codename, view.CodenameHighlights),
		Role:     view.Member.Role,
	}
	return execute(memberCard, data)
}

// RenderNotFound renders the error card for the trimmed query.
func (HTML) RenderNotFound(query string) string {
	return execute(notFoundCard, query)
}

// highlightHTML escapes every segment and wraps highlighted ones.
func highlightHTML(text string, spans []model.Span) template.HTML {
	var b strings.Builder
	for _, segment := range Segments(text, spans) {
		escaped := template.HTMLEscapeString(segment.Text)
		if !segment.Highlighted {
			b.WriteString(escaped)
			continue
		}
		b.WriteString(highlightOpen)
		b.WriteString(escaped)
		b.WriteString(highlightClose)
	}
	// segments are escaped above
	return template.HTML(b.String()) // #nosec G203
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("error rendering card",
			"template", tmpl.Name(),
			"error", err,
		)
		return ""
	}
	return buf.String()
}

var _ port.ResultRenderer = HTML{}
