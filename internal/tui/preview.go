package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card geometry. Width and height include the border.
const (
	cardWidth    = 30
	cardHeight   = 5
	cardGap      = 1
	minCardWidth = 16
)

// ErrNilBook is returned when the preview helper is handed no record.
var ErrNilBook = errors.New("preview: book record is nil")

// RenderPreview renders the compact card for one book: title on up to two
// lines, then the author. width is the outer card width.
func RenderPreview(st Styles, b *catalog.Book, author string, width int, selected bool) (string, error) {
	if b == nil {
		return "", ErrNilBook
	}
	if width < minCardWidth {
		width = minCardWidth
	}

	style := st.Card
	if selected {
		style = st.CardSelected
	}
	inner := width - style.GetHorizontalFrameSize()

	first, second := splitTitle(b.Title, inner)
	titleStyle := st.Header
	if selected {
		titleStyle = st.Highlight
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(first),
		titleStyle.Render(second),
		st.CardAuthor.Render(ansi.Truncate(author, inner, "…")),
	)
	return style.Width(width - style.GetHorizontalBorderSize()).Render(body), nil
}

// splitTitle wraps a title onto at most two lines of width w, truncating
// the remainder with an ellipsis.
func splitTitle(title string, w int) (string, string) {
	if ansi.StringWidth(title) <= w {
		return title, ""
	}
	wrapped := ansi.Wordwrap(title, w, " ")
	lines := strings.Split(wrapped, "\n")
	if len(lines) == 1 {
		return ansi.Truncate(lines[0], w, "…"), ""
	}
	rest := lines[1]
	for _, l := range lines[2:] {
		rest += " " + l
	}
	return ansi.Truncate(lines[0], w, "…"), ansi.Truncate(rest, w, "…")
}

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width int) int {
	if width <= 0 {
		return 1
	}
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderGrid lays previews out in rows of cols cards.
func renderGrid(st Styles, c *catalog.Catalogue, matches []catalog.Match, cols, cursor, firstRow, rows int) (string, error) {
	if cols < 1 {
		cols = 1
	}
	gap := lipgloss.NewStyle().Width(cardGap).Render("")

	var lines []string
	for r := firstRow; r < firstRow+rows; r++ {
		start := r * cols
		if start >= len(matches) {
			break
		}
		end := min(start+cols, len(matches))

		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			b := matches[i].Book
			card, err := RenderPreview(st, &b, c.AuthorName(b), cardWidth, i == cursor)
			if err != nil {
				return "", fmt.Errorf("rendering preview %d: %w", i, err)
			}
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, card)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}
