// Package browse holds the catalogue view state: which list is active (the
// full catalogue or a filtered subset), how much of it is rendered, and
// the last submitted search.
package browse

import (
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/pager"
	"github.com/sirupsen/logrus"
)

// NoResultsMessage is shown in place of the grid when a search matches nothing.
const NoResultsMessage = "No results found. Your filters might be too narrow."

// State is the view state of one browsing session. It is not safe for
// concurrent use; the UI event loop owns it.
type State struct {
	catalogue *catalog.Catalogue
	pageSize  int

	active  []catalog.Match
	tracker *pager.Tracker

	filter    catalog.Filter
	submitted bool

	log *logrus.Entry
}

// New starts a session over the full catalogue.
func New(c *catalog.Catalogue, pageSize int) *State {
	s := &State{
		catalogue: c,
		pageSize:  pageSize,
		log:       logrus.WithField("component", "browse"),
	}
	s.reset(catalog.All(c.Books))
	return s
}

func (s *State) reset(active []catalog.Match) {
	s.active = active
	s.tracker = pager.New(len(active), s.pageSize)
}

// Catalogue returns the dataset the session browses.
func (s *State) Catalogue() *catalog.Catalogue { return s.catalogue }

// Visible returns the rendered prefix of the active list.
func (s *State) Visible() []catalog.Match {
	return s.active[:s.tracker.Shown()]
}

// ShowMore renders the next page and returns only the newly visible items.
// It is a no-op once the active list is exhausted.
func (s *State) ShowMore() []catalog.Match {
	from, to := s.tracker.Advance()
	s.log.WithFields(logrus.Fields{"from": from, "to": to, "total": s.tracker.Total()}).Debug("show more")
	return s.active[from:to]
}

// CanLoadMore reports whether the "show more" control is enabled.
func (s *State) CanLoadMore() bool { return s.tracker.HasMore() }

// RemainingLabel is the count label next to "Show more", e.g. "(4)".
func (s *State) RemainingLabel() string { return s.tracker.Label() }

// Remaining returns the number of hidden items in the active list.
func (s *State) Remaining() int { return s.tracker.Remaining() }

// Page returns the pagination summary of the active list.
func (s *State) Page() pager.Info { return s.tracker.Info() }

// Total returns the length of the active list.
func (s *State) Total() int { return len(s.active) }

// Empty reports whether the no-results message should be displayed.
func (s *State) Empty() bool { return s.submitted && len(s.active) == 0 }

// Filtered reports whether a search has been submitted since the last Clear.
func (s *State) Filtered() bool { return s.submitted }

// Submit replaces the active list with the books matching f and resets
// pagination to the first page.
func (s *State) Submit(f catalog.Filter) {
	f = f.Normalize()
	s.filter = f
	s.submitted = true
	s.reset(f.Apply(s.catalogue.Books))
	s.log.WithFields(logrus.Fields{
		"genre":   f.Genre,
		"author":  f.Author,
		"title":   f.Title,
		"matches": len(s.active),
	}).Info("filter submitted")
}

// Clear reverts to the full catalogue and forgets the last search.
func (s *State) Clear() {
	s.filter = catalog.Filter{}
	s.submitted = false
	s.reset(catalog.All(s.catalogue.Books))
	s.log.Debug("filter cleared")
}

// LastFilter returns the last submitted search, used to pre-populate the
// search form when it is reopened.
func (s *State) LastFilter() (catalog.Filter, bool) {
	return s.filter, s.submitted
}
