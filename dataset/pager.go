package dataset

// ============================================================================
// PAGER — Fixed-Size Raw-Row Pagination
// ============================================================================

// DefaultPageSize is the number of raw rows shown per confirmation in the
// interactive session.
const DefaultPageSize = 5

// Pager walks a view a fixed number of rows at a time.
type Pager struct {
	view View
	size int
	pos  int
}

// NewPager creates a pager over a view. Sizes < 1 fall back to
// DefaultPageSize.
func NewPager(view View, size int) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Pager{view: view, size: size}
}

// Next returns the next page as a sub-view. The final page may be short;
// after exhaustion the returned view is empty.
func (p *Pager) Next() View {
	page := p.view.Slice(p.pos, p.pos+p.size)
	p.pos += page.Len()
	return page
}

// HasMore reports whether another page remains.
func (p *Pager) HasMore() bool { return p.pos < p.view.Len() }

// Remaining returns how many rows have not been paged out yet.
func (p *Pager) Remaining() int { return p.view.Len() - p.pos }
