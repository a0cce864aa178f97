package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(n int) *catalog.Catalogue {
	c := &catalog.Catalogue{
		Authors: map[string]string{"a": "Ann Author", "b": "Bob Writer"},
		Genres:  map[string]string{"sf": "Science Fiction", "fan": "Fantasy"},
	}
	for i := 0; i < n; i++ {
		author, genre := "a", "sf"
		if i%2 == 1 {
			author, genre = "b", "fan"
		}
		d, _ := catalog.ParseDate(fmt.Sprintf("%d-01-01", 1900+i))
		c.Books = append(c.Books, catalog.Book{
			ID:          fmt.Sprintf("book-%02d", i),
			Title:       fmt.Sprintf("Book Number %02d", i),
			Author:      author,
			Genres:      []string{genre},
			Published:   d,
			Description: fmt.Sprintf("Description of book %d.", i),
		})
	}
	return c
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func send(t *testing.T, m BrowserModel, msgs ...tea.Msg) BrowserModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(BrowserModel)
		require.True(t, ok)
	}
	return m
}

func newTestModel(t *testing.T, n int) (BrowserModel, *browse.State) {
	t.Helper()
	state := browse.New(fixture(n), 36)
	m := NewBrowserModel(state, "day")
	m = send(t, m, tea.WindowSizeMsg{Width: 130, Height: 40})
	return m, state
}

func TestBrowser_ShowMore(t *testing.T) {
	m, state := newTestModel(t, 40)
	assert.Contains(t, m.View(), "Show more (4)")

	m = send(t, m, runes("m"))
	assert.Len(t, state.Visible(), 40)
	assert.False(t, state.CanLoadMore())
	assert.Equal(t, 36, m.cursor, "cursor jumps to first new preview")
	assert.Contains(t, m.View(), "Show more (0)")

	m = send(t, m, runes("m"))
	assert.Len(t, state.Visible(), 40)
}

func TestBrowser_CursorMovement(t *testing.T) {
	m, _ := newTestModel(t, 40)
	cols := m.columns()
	require.Greater(t, cols, 1)

	m = send(t, m, rightKey)
	assert.Equal(t, 1, m.cursor)
	m = send(t, m, downKey)
	assert.Equal(t, 1+cols, m.cursor)
	m = send(t, m, runes("h"))
	assert.Equal(t, cols, m.cursor)

	// cannot move past the rendered items
	m.cursor = 35
	m = send(t, m, rightKey)
	assert.Equal(t, 35, m.cursor)
}

func TestBrowser_DetailOverlay(t *testing.T) {
	m, _ := newTestModel(t, 40)
	m = send(t, m, rightKey, enterKey)
	require.Equal(t, overlayDetail, m.overlay)
	assert.Equal(t, "Book Number 01", m.detail.Title)
	assert.Equal(t, "Bob Writer (1901)", m.detail.Subtitle)
	assert.Contains(t, m.View(), "Description of book 1.")

	m = send(t, m, escKey)
	assert.Equal(t, overlayNone, m.overlay)
}

func TestBrowser_SearchSubmitAndReopen(t *testing.T) {
	m, state := newTestModel(t, 40)

	m = send(t, m, runes("/"))
	require.Equal(t, overlaySearch, m.overlay)

	// genre: All genres -> Fantasy
	m = send(t, m, rightKey)
	// title field
	m = send(t, m, tabKey, tabKey, runes("number 1"))
	assert.Equal(t, searchFieldTitle, m.search.focused)
	m = send(t, m, enterKey)

	assert.Equal(t, overlayNone, m.overlay)
	assert.True(t, state.Filtered())
	assert.Len(t, state.Visible(), 5) // 11,13,15,17,19
	for _, v := range state.Visible() {
		assert.Equal(t, 1, v.Index%2)
	}

	// reopening shows the last submitted values
	m = send(t, m, runes("/"))
	f := m.search.filter()
	assert.Equal(t, catalog.Filter{Genre: "fan", Author: catalog.AllOption, Title: "number 1"}, f)

	// cancel resets the form but keeps the active list
	m = send(t, m, escKey)
	assert.Equal(t, overlayNone, m.overlay)
	assert.True(t, m.search.filter().IsZero())
	assert.Len(t, state.Visible(), 5)

	// detail of a filtered preview resolves the original index
	m = send(t, m, enterKey)
	assert.Equal(t, "Book Number 11", m.detail.Title)
}

func TestBrowser_NoResults(t *testing.T) {
	m, state := newTestModel(t, 40)
	m = send(t, m, runes("/"), tabKey, tabKey, runes("does not exist"), enterKey)
	assert.True(t, state.Empty())
	view := m.View()
	assert.Contains(t, view, browse.NoResultsMessage)
	assert.Contains(t, view, "Show more (0)")

	m = send(t, m, enterKey) // nothing to open
	assert.Equal(t, overlayNone, m.overlay)
}

func TestBrowser_ClearRestoresCatalogue(t *testing.T) {
	m, state := newTestModel(t, 40)
	m = send(t, m, runes("/"), rightKey, enterKey)
	require.Equal(t, 20, state.Total())

	m = send(t, m, runes("c"))
	assert.False(t, state.Filtered())
	assert.Equal(t, 40, state.Total())
	assert.Equal(t, 0, m.cursor)
}

func TestBrowser_ThemeToggle(t *testing.T) {
	m, _ := newTestModel(t, 4)
	assert.Equal(t, ThemeDay, m.Theme())

	m = send(t, m, runes("t"))
	require.Equal(t, overlayTheme, m.overlay)
	assert.Equal(t, ThemeDay, m.themeForm.selected())

	m = send(t, m, downKey, enterKey)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, ThemeNight, m.Theme())

	// reopening selects the current theme; esc keeps it
	m = send(t, m, runes("t"))
	assert.Equal(t, ThemeNight, m.themeForm.selected())
	m = send(t, m, escKey)
	assert.Equal(t, ThemeNight, m.Theme())
}

func TestBrowser_Quit(t *testing.T) {
	m, _ := newTestModel(t, 4)
	next, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.True(t, next.(BrowserModel).quitting)
	assert.Empty(t, next.(BrowserModel).View())
}

func TestBrowser_ScrollKeepsCursorVisible(t *testing.T) {
	state := browse.New(fixture(40), 36)
	m := NewBrowserModel(state, "night")
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	require.Equal(t, 1, m.columns())

	for i := 0; i < 10; i++ {
		m = send(t, m, downKey)
	}
	assert.Equal(t, 10, m.cursor)
	assert.LessOrEqual(t, m.firstRow, 10)
	assert.Greater(t, m.firstRow+m.gridRows(), 10)
	assert.True(t, strings.Contains(m.View(), "Book Number 10"))
}
