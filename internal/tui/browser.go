package tui

import (
	"fmt"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// overlay identifies the dialog drawn over the grid, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlaySearch
	overlayTheme
)

// Vertical space reserved around the grid: header, status, button, divider, footer.
const chromeHeight = 10

// BrowserModel is the bubbletea model of the catalogue grid.
type BrowserModel struct {
	state  *browse.State
	styles Styles
	log    *logrus.Entry

	cursor   int // index into state.Visible()
	firstRow int
	width    int
	height   int

	overlay   overlay
	detail    browse.Detail
	search    searchForm
	themeForm themeForm

	activeCmd string
	err       error
	quitting  bool
}

// NewBrowserModel creates the grid over state, drawn with the named theme.
func NewBrowserModel(state *browse.State, theme string) BrowserModel {
	st := NewStyles(ThemeByName(theme))
	return BrowserModel{
		state:     state,
		styles:    st,
		log:       logrus.WithField("component", "tui"),
		search:    newSearchForm(state.Catalogue()),
		themeForm: newThemeForm(st),
		width:     80,
		height:    24,
	}
}

// Theme returns the theme in use.
func (m BrowserModel) Theme() Theme { return m.styles.Theme }

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.overlay {
		case overlayDetail:
			return m.updateDetail(msg)
		case overlaySearch:
			return m.updateSearch(msg)
		case overlayTheme:
			return m.updateTheme(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m BrowserModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(m.state.Visible())
	cols := m.columns()

	switch {
	case key.Matches(msg, browserKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, browserKeys.Left):
		m.moveCursor(-1, visible)
	case key.Matches(msg, browserKeys.Right):
		m.moveCursor(1, visible)
	case key.Matches(msg, browserKeys.Up):
		m.moveCursor(-cols, visible)
	case key.Matches(msg, browserKeys.Down):
		m.moveCursor(cols, visible)

	case key.Matches(msg, browserKeys.Detail):
		return m.openDetail()

	case key.Matches(msg, browserKeys.More):
		if !m.state.CanLoadMore() {
			return m, nil
		}
		before := len(m.state.Visible())
		if added := m.state.ShowMore(); len(added) > 0 {
			m.cursor = before
			m.scrollToCursor()
		}
		m.activeCmd = "m"
		return m, HighlightCmd()

	case key.Matches(msg, browserKeys.Search):
		m.search = m.search.reset()
		if f, ok := m.state.LastFilter(); ok {
			m.search = m.search.prefill(f)
		}
		m.overlay = overlaySearch
		m.activeCmd = "/"
		return m, HighlightCmd()

	case key.Matches(msg, browserKeys.Clear):
		if !m.state.Filtered() {
			return m, nil
		}
		m.state.Clear()
		m.cursor, m.firstRow = 0, 0
		m.activeCmd = "c"
		return m, HighlightCmd()

	case key.Matches(msg, browserKeys.Theme):
		m.themeForm = m.themeForm.open(m.styles.Theme)
		m.overlay = overlayTheme
		m.activeCmd = "t"
		return m, HighlightCmd()
	}
	return m, nil
}

func (m *BrowserModel) moveCursor(delta, visible int) {
	if visible == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= visible {
		return
	}
	m.cursor = next
	m.scrollToCursor()
}

func (m BrowserModel) openDetail() (tea.Model, tea.Cmd) {
	visible := m.state.Visible()
	if m.cursor >= len(visible) {
		return m, nil
	}
	d, err := m.state.Detail(visible[m.cursor].Index)
	if err != nil {
		m.err = fmt.Errorf("opening detail: %w", err)
		m.log.WithError(err).Error("detail lookup failed")
		return m, nil
	}
	m.detail = d
	m.overlay = overlayDetail
	return m, nil
}

func (m BrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.overlay = overlayNone
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		outcome formOutcome
		cmd     tea.Cmd
	)
	m.search, outcome, cmd = m.search.update(msg)

	switch outcome {
	case formCanceled:
		m.overlay = overlayNone
	case formSubmitted:
		m.state.Submit(m.search.filter())
		m.cursor, m.firstRow = 0, 0
		m.overlay = overlayNone
	}
	return m, cmd
}

func (m BrowserModel) updateTheme(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		outcome formOutcome
		cmd     tea.Cmd
	)
	m.themeForm, outcome, cmd = m.themeForm.update(msg)

	switch outcome {
	case formCanceled:
		m.overlay = overlayNone
	case formSubmitted:
		theme := m.themeForm.selected()
		m.styles = NewStyles(theme)
		m.themeForm = newThemeForm(m.styles)
		m.overlay = overlayNone
		m.log.WithField("theme", theme.Name).Info("theme changed")
	}
	return m, cmd
}

func (m BrowserModel) columns() int {
	return gridColumns(m.width - 4)
}

func (m BrowserModel) gridRows() int {
	rows := (m.height - chromeHeight) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollToCursor adjusts firstRow so the cursor's row is on screen.
func (m *BrowserModel) scrollToCursor() {
	row := m.cursor / m.columns()
	rows := m.gridRows()
	switch {
	case row < m.firstRow:
		m.firstRow = row
	case row >= m.firstRow+rows:
		m.firstRow = row - rows + 1
	}
}

// RunBrowser launches the interactive catalogue browser and returns the
// theme in use when it exits.
func RunBrowser(state *browse.State, theme string) (string, error) {
	m := NewBrowserModel(state, theme)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return theme, fmt.Errorf("running TUI: %w", err)
	}

	fm, ok := finalModel.(BrowserModel)
	if !ok {
		return theme, fmt.Errorf("unexpected model type")
	}
	return fm.Theme().Name, nil
}
