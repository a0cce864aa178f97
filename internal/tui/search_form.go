package tui

import (
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	searchFieldGenre = iota
	searchFieldAuthor
	searchFieldTitle
	searchFieldCount
)

// formOutcome is what a key press did to an overlay form.
type formOutcome int

const (
	formPending formOutcome = iota
	formSubmitted
	formCanceled
)

// searchForm is the genre/author/title filter overlay.
type searchForm struct {
	genres  []catalog.Option
	authors []catalog.Option

	genre   int
	author  int
	title   textinput.Model
	focused int
}

func newSearchForm(c *catalog.Catalogue) searchForm {
	ti := textinput.New()
	ti.Placeholder = "Any title"
	ti.CharLimit = 120
	ti.Width = 36
	ti.Prompt = "│ "

	return searchForm{
		genres:  c.GenreOptions(),
		authors: c.AuthorOptions(),
		title:   ti,
	}
}

// reset clears every field back to "All" / empty.
func (f searchForm) reset() searchForm {
	f.genre = 0
	f.author = 0
	f.title.SetValue("")
	return f.focus(searchFieldGenre)
}

// prefill loads a previously submitted filter into the fields.
func (f searchForm) prefill(filter catalog.Filter) searchForm {
	f.genre = catalog.OptionIndex(f.genres, filter.Genre)
	f.author = catalog.OptionIndex(f.authors, filter.Author)
	f.title.SetValue(filter.Title)
	return f
}

func (f searchForm) focus(field int) searchForm {
	f.focused = (field + searchFieldCount) % searchFieldCount
	if f.focused == searchFieldTitle {
		f.title.Focus()
	} else {
		f.title.Blur()
	}
	return f
}

// filter returns the criteria currently entered.
func (f searchForm) filter() catalog.Filter {
	return catalog.Filter{
		Genre:  f.genres[f.genre].Value,
		Author: f.authors[f.author].Value,
		Title:  strings.TrimSpace(f.title.Value()),
	}
}

func (f searchForm) update(msg tea.KeyMsg) (searchForm, formOutcome, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Cancel):
		return f.reset(), formCanceled, nil

	case key.Matches(msg, formKeys.Submit):
		return f, formSubmitted, nil

	case key.Matches(msg, formKeys.Next):
		return f.focus(f.focused + 1), formPending, textinput.Blink

	case key.Matches(msg, formKeys.Prev):
		return f.focus(f.focused - 1), formPending, textinput.Blink
	}

	if f.focused != searchFieldTitle {
		step := 0
		switch {
		case key.Matches(msg, formKeys.Cycle):
			step = 1
		case key.Matches(msg, formKeys.Back):
			step = -1
		}
		if f.focused == searchFieldGenre {
			f.genre = cycle(f.genre, step, len(f.genres))
		} else {
			f.author = cycle(f.author, step, len(f.authors))
		}
		return f, formPending, nil
	}

	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	return f, formPending, cmd
}

func cycle(i, step, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+step)%n + n) % n
}

func (f searchForm) view(st Styles) string {
	label := st.Help.Width(9).Align(lipgloss.Right).PaddingRight(1)
	labelActive := st.Highlight.Width(9).Align(lipgloss.Right).PaddingRight(1)

	selector := func(opts []catalog.Option, i int, active bool) string {
		text := "‹ " + opts[i].Label + " ›"
		if active {
			return st.Highlight.Render(text)
		}
		return st.Normal.Render(text)
	}

	rows := []struct {
		name  string
		field string
	}{
		{"Genre", selector(f.genres, f.genre, f.focused == searchFieldGenre)},
		{"Author", selector(f.authors, f.author, f.focused == searchFieldAuthor)},
		{"Title", f.title.View()},
	}

	var b strings.Builder
	b.WriteString(st.Header.Render("Search"))
	b.WriteString("\n\n")
	for i, r := range rows {
		if i == f.focused {
			b.WriteString(labelActive.Render("› " + r.name))
		} else {
			b.WriteString(label.Render(r.name))
		}
		b.WriteString(r.field)
		b.WriteString("\n\n")
	}
	b.WriteString(RenderFooterBar(st, []ShortcutEntry{
		{Label: "tab/↑↓ field"},
		{Label: "←/→ option"},
		{Label: "enter search"},
		{Label: "esc cancel"},
	}, ""))

	return st.Border.Padding(0, 2, 0, 1).Render(b.String())
}
