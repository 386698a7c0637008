// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
)

// Terminal renders outcomes as styled text for a terminal.
type Terminal struct {
	Name         lipgloss.Style
	Codename     lipgloss.Style
	Role         lipgloss.Style
	Highlight    lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTerminal builds the default styles on r, or on the default renderer
// when r is nil.
func NewTerminal(r *lipgloss.Renderer) *Terminal {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Terminal{
		Name:         r.NewStyle().Bold(true),
		Codename:     r.NewStyle().Foreground(lipgloss.Color("39")),
		Role:         r.NewStyle().Faint(true),
		Highlight:    r.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("214")),
		ErrorTitle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		ErrorMessage: r.NewStyle(),
	}
}

// RenderMember renders the member as two lines: name with codename, then role.
func (t *Terminal) RenderMember(view model.MemberView) string {
	name := t.highlight(t.Name, view.Member.Name, view.NameHighlights)
	codename := t.highlight(t.Codename, view.Member.Codename, view.CodenameHighlights)

	return fmt.Sprintf("%s %s\n%s",
		name,
		t.Codename.Render("(")+codename+t.Codename.Render(")"),
		t.Role.Render("Role: "+view.Member.Role),
	)
}

// RenderNotFound renders the not-found title and message.
func (t *Terminal) RenderNotFound(query string) string {
	return t.ErrorTitle.Render("Member Not Found") + "\n" +
		t.ErrorMessage.Render(`"`+query+`" does not match any registered member.`)
}

func (t *Terminal) highlight(base lipgloss.Style, text string, spans []model.Span) string {
	var b strings.Builder
	for _, segment := range Segments(text, spans) {
		if segment.Highlighted {
			b.WriteString(t.Highlight.Render(segment.Text))
			continue
		}
		b.WriteString(base.Render(segment.Text))
	}
	return b.String()
}

var _ port.ResultRenderer = (*Terminal)(nil)
