package listing

import (
	"errors"
	"fmt"
	"time"
)

// State is the lifecycle of a list view.
type State int

const (
	StateLoading State = iota
	StateReady
	StateEmpty
	StateError
)

var stateNames = [...]string{"loading", "ready", "empty", "error"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText renders the state by name in JSON views.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// View is the rendered page of a list.
type View[T any] struct {
	Items       []T    `json:"items"`
	CurrentPage int    `json:"current_page"`
	PageSize    int    `json:"page_size"`
	TotalPages  int    `json:"total_pages"`
	TotalItems  int    `json:"total_items"`
	State       State  `json:"state"`
	Error       string `json:"error,omitempty"`
}

// Controller owns the snapshot, criteria, search term and page state of one
// list. It performs no I/O and is not safe for concurrent use; callers
// serialise access.
type Controller[T Record] struct {
	snapshot []T
	filtered []T
	criteria Criteria
	search   Search
	pager    *Pager
	state    State
	err      error
}

// NewController returns a controller waiting for its first snapshot.
func NewController[T Record](pageSize int) *Controller[T] {
	return &Controller[T]{
		search: NewSearch(""),
		pager:  NewPager(pageSize),
		state:  StateLoading,
	}
}

// Refresh marks the list as loading until Load or Fail is called.
func (c *Controller[T]) Refresh() {
	c.state = StateLoading
	c.err = nil
}

// Load installs a fresh snapshot and applies the recorded criteria to it.
// The current page is kept where it still exists.
func (c *Controller[T]) Load(items []T) {
	c.snapshot = append(make([]T, 0, len(items)), items...)
	c.err = nil
	c.state = StateReady
	c.recompute()
}

// Fail drops the snapshot and records the fetch error.
func (c *Controller[T]) Fail(err error) {
	c.snapshot = nil
	c.filtered = nil
	c.pager.SetTotal(0)
	c.state = StateError
	c.err = err
	if c.err == nil {
		c.err = errors.New("failed to load data")
	}
}

// Loaded reports whether a snapshot is available.
func (c *Controller[T]) Loaded() bool {
	return c.state == StateReady || c.state == StateEmpty
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State { return c.state }

// Err returns the last fetch error while in StateError.
func (c *Controller[T]) Err() error { return c.err }

// Criteria returns a copy of the active criteria.
func (c *Controller[T]) Criteria() Criteria { return c.criteria.Clone() }

// SearchTerm returns the active search term.
func (c *Controller[T]) SearchTerm() string { return c.search.Term() }

// SetFilterCriteria replaces every equality and date criterion.
func (c *Controller[T]) SetFilterCriteria(criteria Criteria) {
	c.criteria = criteria.Clone()
	c.changed()
}

// SetFilter sets or clears a single equality criterion.
func (c *Controller[T]) SetFilter(field Field, value string) {
	c.criteria = c.criteria.WithEqual(field, value)
	c.changed()
}

// SetSearchTerm replaces the free-text term.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.search = NewSearch(term)
	c.changed()
}

// SetDateRange filters on dim alone, dropping any other date dimension.
// With both bounds nil every date criterion is cleared.
func (c *Controller[T]) SetDateRange(dim DateDimension, from, to *time.Time) {
	c.criteria = c.criteria.WithOnlyRange(dim, DateRange{From: from, To: to})
	c.changed()
}

// ClearDateRange removes every date criterion.
func (c *Controller[T]) ClearDateRange() {
	c.criteria = c.criteria.WithOnlyRange("", DateRange{})
	c.changed()
}

// ResetFilters clears criteria and search term.
func (c *Controller[T]) ResetFilters() {
	c.criteria = Criteria{}
	c.search = NewSearch("")
	c.changed()
}

// SetPage jumps to page n, clamped into range.
func (c *Controller[T]) SetPage(n int) { c.pager.GoTo(n) }

// NextPage advances one page unless already on the last one.
func (c *Controller[T]) NextPage() { c.pager.Next() }

// PrevPage goes back one page unless already on the first one.
func (c *Controller[T]) PrevPage() { c.pager.Prev() }

// SetPageSize changes the window size; non-positive sizes are ignored.
func (c *Controller[T]) SetPageSize(n int) { c.pager.SetPageSize(n) }

// PageState returns the current page state.
func (c *Controller[T]) PageState() PageState { return c.pager.State() }

// View renders the current page.
func (c *Controller[T]) View() View[T] {
	ps := c.pager.State()
	v := View[T]{
		Items:       []T{},
		CurrentPage: ps.CurrentPage,
		PageSize:    ps.PageSize,
		TotalPages:  ps.TotalPages(),
		TotalItems:  ps.TotalItems,
		State:       c.state,
	}
	if c.Loaded() {
		v.Items = append(v.Items, Paginate(c.filtered, ps.CurrentPage, ps.PageSize)...)
	}
	if c.state == StateError && c.err != nil {
		v.Error = c.err.Error()
	}
	return v
}

// Filtered returns a copy of every record passing the criteria and search.
func (c *Controller[T]) Filtered() []T {
	return append([]T{}, c.filtered...)
}

// Snapshot returns a copy of the unfiltered records.
func (c *Controller[T]) Snapshot() []T {
	return append([]T{}, c.snapshot...)
}

// Tally counts snapshot records per value of field, ignoring criteria and
// search. Only the listed values are counted; every listed value is present
// in the result.
func (c *Controller[T]) Tally(field Field, values ...string) map[string]int {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v] = 0
	}
	for _, item := range c.snapshot {
		got, ok := item.FieldValue(field)
		if !ok {
			continue
		}
		if _, tracked := counts[got]; tracked {
			counts[got]++
		}
	}
	return counts
}

func (c *Controller[T]) changed() {
	c.pager.Reset()
	c.recompute()
}

func (c *Controller[T]) recompute() {
	if !c.Loaded() {
		return
	}
	c.filtered = Filter(c.snapshot, c.criteria, c.search)
	c.pager.SetTotal(len(c.filtered))
	if len(c.filtered) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StateReady
	}
}
