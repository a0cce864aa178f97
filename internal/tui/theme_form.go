package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/bookconnect/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// themeItem is one choice in the theme overlay.
type themeItem struct {
	theme Theme
}

// FilterValue implements list.Item
func (t themeItem) FilterValue() string { return t.theme.Label }

// themeForm is the day/night settings overlay.
type themeForm struct {
	list list.Model
}

func newThemeForm(st Styles) themeForm {
	items := make([]list.Item, len(Themes))
	for i, t := range Themes {
		items[i] = themeItem{theme: t}
	}

	render := func(w io.Writer, item list.Item, selected bool) {
		ti, ok := item.(themeItem)
		if !ok {
			return
		}
		if selected {
			_, _ = fmt.Fprint(w, st.Highlight.Render("› "+ti.theme.Label))
			return
		}
		_, _ = fmt.Fprint(w, "  "+st.Normal.Render(ti.theme.Label))
	}

	l := list.New(items, delegate.New(render, delegate.WithSpacing(1)), 24, 2*len(Themes)+6)
	l.Title = "Theme"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = st.Header
	return themeForm{list: l}
}

// open positions the cursor on the theme currently in use.
func (f themeForm) open(current Theme) themeForm {
	for i, t := range Themes {
		if t.Name == current.Name {
			f.list.Select(i)
		}
	}
	return f
}

// selected returns the theme under the cursor.
func (f themeForm) selected() Theme {
	if ti, ok := f.list.SelectedItem().(themeItem); ok {
		return ti.theme
	}
	return ThemeDay
}

func (f themeForm) update(msg tea.KeyMsg) (themeForm, formOutcome, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Cancel), msg.String() == "q":
		return f, formCanceled, nil
	case key.Matches(msg, formKeys.Submit):
		return f, formSubmitted, nil
	}
	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, formPending, cmd
}

func (f themeForm) view(st Styles) string {
	footer := RenderFooterBar(st, []ShortcutEntry{
		{Label: "↑/↓ choose"},
		{Label: "enter save"},
		{Label: "esc cancel"},
	}, "")
	return st.Border.Padding(0, 2, 0, 1).Render(f.list.View() + "\n" + footer)
}
