package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles

	var body string
	switch m.overlay {
	case overlayDetail:
		body = m.renderDetail()
	case overlaySearch:
		body = m.search.view(st)
	case overlayTheme:
		body = m.themeForm.view(st)
	default:
		body = m.renderGrid()
	}

	divider := lipgloss.NewStyle().
		Foreground(ColorTeal).
		Render(strings.Repeat("─", max(m.width-4, 20)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		divider,
		m.renderFooter(),
	)

	return st.Base.
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(content)
}

func (m BrowserModel) renderHeader() string {
	st := m.styles
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(ColorOrange).Bold(true).Render("Book"),
		lipgloss.NewStyle().Foreground(ColorTealLight).Bold(true).Render("Connect"),
	)

	status := fmt.Sprintf("%d books · showing %d", m.state.Total(), len(m.state.Visible()))
	if f, ok := m.state.LastFilter(); ok {
		c := m.state.Catalogue()
		var parts []string
		if f.Genre != catalog.AllOption {
			parts = append(parts, "genre: "+c.Genres[f.Genre])
		}
		if f.Author != catalog.AllOption {
			parts = append(parts, "author: "+c.Authors[f.Author])
		}
		if f.Title != "" {
			parts = append(parts, fmt.Sprintf("title: %q", f.Title))
		}
		if len(parts) == 0 {
			parts = append(parts, "all books")
		}
		status += " · filtered by " + strings.Join(parts, ", ")
	}
	return title + "  " + st.Help.Render(status)
}

func (m BrowserModel) renderGrid() string {
	st := m.styles

	if m.state.Empty() {
		return st.Message.Render(browse.NoResultsMessage) + "\n" + m.renderButton()
	}

	grid, err := renderGrid(st, m.state.Catalogue(), m.state.Visible(), m.columns(), m.cursor, m.firstRow, m.gridRows())
	if err != nil {
		return st.Error.Render("Error: " + err.Error())
	}

	parts := []string{grid}
	if m.err != nil {
		parts = append(parts, st.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	parts = append(parts, m.renderButton())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderButton draws "Show more (N)"; it is dimmed once the list is exhausted.
func (m BrowserModel) renderButton() string {
	label := "Show more " + m.state.RemainingLabel()
	if m.state.CanLoadMore() {
		return m.styles.Button.Render(label)
	}
	return m.styles.ButtonDisabled.Render(label)
}

func (m BrowserModel) renderDetail() string {
	st := m.styles
	d := m.detail

	width := min(max(m.width-8, 30), 72)
	text := lipgloss.NewStyle().Width(width)

	var s strings.Builder
	if img := RenderCover(d.Image, DetectImageProtocol()); img != "" {
		s.WriteString(img)
		s.WriteString("\n\n")
	}
	s.WriteString(st.Header.Render(text.Render(d.Title)))
	s.WriteString("\n")
	s.WriteString(st.Help.Render(d.Subtitle))
	s.WriteString("\n\n")

	if len(d.Genres) > 0 {
		pills := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			pills[i] = st.Pill.Render(g)
		}
		s.WriteString(strings.Join(pills, " "))
		s.WriteString("\n\n")
	}

	if d.Description != "" {
		s.WriteString(st.Normal.Render(text.Render(d.Description)))
		s.WriteString("\n\n")
	}
	if d.Image != "" {
		s.WriteString(st.Help.Render("Cover: " + d.Image))
		s.WriteString("\n")
	}

	return st.Border.Padding(1, 2).Render(s.String())
}

// renderFooter lists the shortcuts for the active view.
func (m BrowserModel) renderFooter() string {
	switch m.overlay {
	case overlayDetail:
		return RenderFooterBar(m.styles, []ShortcutEntry{{Label: "esc close"}}, m.activeCmd)
	case overlaySearch, overlayTheme:
		return ""
	}
	return RenderFooterBar(m.styles, []ShortcutEntry{
		{Label: "←↑↓→ navigate"},
		{Label: "enter details"},
		{Key: "m", Label: "m show more"},
		{Key: "/", Label: "/ search"},
		{Key: "c", Label: "c clear"},
		{Key: "t", Label: "t theme"},
		{Label: "q quit"},
	}, m.activeCmd)
}
