// Package delegate provides a list.ItemDelegate built from a render function.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item. selected is true for the item under
// the list cursor.
type RenderFunc func(w io.Writer, item list.Item, selected bool)

// Base is a single-line delegate with no per-item update logic.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// Option adjusts a Base delegate.
type Option func(*Base)

// WithSpacing sets the blank lines between items.
func WithSpacing(n int) Option {
	return func(b *Base) { b.spacing = n }
}

// New creates a delegate with height 1 and no spacing unless overridden.
func New(renderFn RenderFunc, opts ...Option) Base {
	b := Base{height: 1, renderFn: renderFn}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return d.height }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return d.spacing }

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, item, index == m.Index())
	}
}
