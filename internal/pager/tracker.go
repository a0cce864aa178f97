// Package pager tracks how many items of a list are currently visible when
// the list is revealed one fixed-size page at a time.
package pager

import "fmt"

// DefaultPageSize is the number of previews rendered per page.
const DefaultPageSize = 36

// Tracker is a "load more" cursor over a list of known length. The cursor
// only grows and never passes the end of the list.
type Tracker struct {
	total    int
	pageSize int
	shown    int
}

// Info summarizes the tracker position.
type Info struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Shown      int `json:"shown"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// New returns a tracker with the first page already visible.
// A non-positive pageSize falls back to DefaultPageSize.
func New(total, pageSize int) *Tracker {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	return &Tracker{
		total:    total,
		pageSize: pageSize,
		shown:    min(pageSize, total),
	}
}

// Shown returns the number of visible items.
func (t *Tracker) Shown() int { return t.shown }

// Total returns the list length.
func (t *Tracker) Total() int { return t.total }

// PageSize returns the page increment.
func (t *Tracker) PageSize() int { return t.pageSize }

// Remaining returns how many items are still hidden.
func (t *Tracker) Remaining() int { return t.total - t.shown }

// HasMore reports whether Advance would reveal anything.
func (t *Tracker) HasMore() bool { return t.shown < t.total }

// Advance reveals the next page and returns the half-open range [from, to)
// of newly visible items. An exhausted tracker returns an empty range and
// leaves the cursor where it is.
func (t *Tracker) Advance() (from, to int) {
	from = t.shown
	t.shown = min(t.shown+t.pageSize, t.total)
	return from, t.shown
}

// Label is the remaining-count label shown next to "Show more".
func (t *Tracker) Label() string {
	return fmt.Sprintf("(%d)", t.Remaining())
}

// Info returns a page summary for the current position.
func (t *Tracker) Info() Info {
	pages := (t.total + t.pageSize - 1) / t.pageSize
	page := (t.shown + t.pageSize - 1) / t.pageSize
	return Info{
		Page:       page,
		PageSize:   t.pageSize,
		Shown:      t.shown,
		Total:      t.total,
		TotalPages: pages,
	}
}
