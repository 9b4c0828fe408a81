package pgmodel

// Pager is one page of entities along with the total number of matching rows.
type Pager[E any] struct {
	Entities []E

	// Count is the number of rows matching the query across every page.
	Count      int64
	Page       int
	MaxPerPage int
}

// LastPage returns the number of the last page. It is 1 when nothing matched.
func (p *Pager[E]) LastPage() int {
	if p.Count == 0 {
		return 1
	}
	return int((p.Count + int64(p.MaxPerPage) - 1) / int64(p.MaxPerPage))
}

func (p *Pager[E]) HasNextPage() bool {
	return p.Page < p.LastPage()
}

func (p *Pager[E]) HasPreviousPage() bool {
	return p.Page > 1
}

// ResultMin returns the 1-based position of the first entity of the page among all matching rows.
func (p *Pager[E]) ResultMin() int64 {
	first := int64(p.MaxPerPage)*int64(p.Page-1) + 1
	if first > p.Count {
		return p.Count
	}
	return first
}

// ResultMax returns the 1-based position of the last entity of the page among all matching rows.
func (p *Pager[E]) ResultMax() int64 {
	last := int64(p.MaxPerPage) * int64(p.Page)
	if last > p.Count {
		return p.Count
	}
	return last
}
