package listing

// PageState describes the window over a filtered list.
type PageState struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalItems  int `json:"total_items"`
}

// TotalPages of the state; never less than one.
func (s PageState) TotalPages() int {
	return TotalPages(s.TotalItems, s.PageSize)
}

// TotalPages returns ceil(count/size), with a floor of one page so an empty
// list still renders "page 1 of 1".
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 1
	}
	pages := count / size
	if count%size != 0 {
		pages++
	}
	return pages
}

// Paginate returns the slice of items shown on page. Pages outside
// [1, TotalPages] yield an empty slice. The result shares the backing array
// but has its capacity capped.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	if page > TotalPages(len(items), size) || len(items) == 0 {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end:end]
}

// Pager keeps a PageState clamped while totals and sizes change.
type Pager struct {
	state PageState
}

// NewPager starts on page 1. Non-positive sizes fall back to 10.
func NewPager(size int) *Pager {
	if size <= 0 {
		size = 10
	}
	return &Pager{state: PageState{CurrentPage: 1, PageSize: size}}
}

// State returns a copy of the current page state.
func (p *Pager) State() PageState { return p.state }

// Next advances one page; no-op on the last page.
func (p *Pager) Next() {
	if p.state.CurrentPage < p.state.TotalPages() {
		p.state.CurrentPage++
	}
}

// Prev goes back one page; no-op on page 1.
func (p *Pager) Prev() {
	if p.state.CurrentPage > 1 {
		p.state.CurrentPage--
	}
}

// GoTo jumps to page n, clamped into range.
func (p *Pager) GoTo(n int) {
	p.state.CurrentPage = n
	p.clamp()
}

// SetPageSize ignores non-positive sizes.
func (p *Pager) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	p.state.PageSize = n
	p.clamp()
}

// SetTotal records the number of filtered items.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.state.TotalItems = n
	p.clamp()
}

// Reset returns to page 1.
func (p *Pager) Reset() {
	p.state.CurrentPage = 1
}

func (p *Pager) clamp() {
	if last := p.state.TotalPages(); p.state.CurrentPage > last {
		p.state.CurrentPage = last
	}
	if p.state.CurrentPage < 1 {
		p.state.CurrentPage = 1
	}
}
