// Package grid implements the bento grid's incremental pagination: page
// slicing with replace-vs-append batches, a serialized load-more
// trigger, and once-per-item lazy load tracking.
package grid

import (
	"asset-browser/pkg/models"
)

// DefaultPageSize is the number of items rendered per batch.
const DefaultPageSize = 30

// Layout selects how a batch is presented.
type Layout int

const (
	// LayoutBento is the default tiled grid.
	LayoutBento Layout = iota
	// LayoutList is the linear list used for audio in the Music context.
	LayoutList
)

// Batch describes one rendered page. Replace means the grid content is
// rebuilt from scratch (page 1 for a new visible set); otherwise the
// items are appended to what is already shown. Appending keeps the cost
// of the Nth load-more proportional to one page, not N pages.
type Batch struct {
	Items     []models.Asset
	Page      int
	Replace   bool
	Layout    Layout
	Total     int
	Rendered  int // items shown once this batch is applied
	Remaining int // label for the load-more affordance
	HasMore   bool
}

// Paginator slices a visible set into batches and serializes load-more
// triggers so a second click cannot race ahead of the first.
type Paginator struct {
	pageSize int
	rendered int
	total    int
	loading  bool
}

// NewPaginator returns a paginator with the given page size, falling
// back to DefaultPageSize for zero or negative values.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

// PageSize returns the configured page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// Rendered returns the number of items shown so far.
func (p *Paginator) Rendered() int { return p.rendered }

// Page computes the batch for pageNumber over the visible set. Page 1
// replaces the grid; later pages append only their slice. The layout is
// LayoutList when the batch should render as a linear audio list.
func (p *Paginator) Page(visible []models.Asset, pageNumber int, layout Layout) Batch {
	if pageNumber < 1 {
		pageNumber = 1
	}
	total := len(visible)

	start := (pageNumber - 1) * p.pageSize
	if start > total {
		start = total
	}
	end := start + p.pageSize
	if end > total {
		end = total
	}

	batch := Batch{
		Items:    visible[start:end],
		Page:     pageNumber,
		Replace:  pageNumber == 1,
		Layout:   layout,
		Total:    total,
		Rendered: end,
		HasMore:  end < total,
	}
	batch.Remaining = total - end

	p.total = total
	p.rendered = end
	return batch
}

// Through computes a replace batch covering pages 1 through pageNumber.
// It is the rebuild counterpart of Page: when the grid is redrawn from
// scratch while the cursor sits past the first page, everything loaded
// so far has to come back, not just the last slice.
func (p *Paginator) Through(visible []models.Asset, pageNumber int, layout Layout) Batch {
	if pageNumber < 1 {
		pageNumber = 1
	}
	total := len(visible)

	end := pageNumber * p.pageSize
	if end > total {
		end = total
	}

	batch := Batch{
		Items:    visible[:end],
		Page:     pageNumber,
		Replace:  true,
		Layout:   layout,
		Total:    total,
		Rendered: end,
		HasMore:  end < total,
	}
	batch.Remaining = total - end

	p.total = total
	p.rendered = end
	return batch
}

// LoadMore guards the load-more trigger: it returns false while a
// previous trigger is still being applied or when nothing remains.
// Callers must pair a true return with Done once the batch is applied.
func (p *Paginator) LoadMore() bool {
	if p.loading || p.rendered >= p.total {
		return false
	}
	p.loading = true
	return true
}

// Done re-arms the load-more trigger after a batch has been applied.
func (p *Paginator) Done() {
	p.loading = false
}

// ListLayoutFor reports whether the visible set should render as a
// linear list: the active folder context is categorized as Music and
// the set contains audio entries. Audio outside the Music context keeps
// the default placeholder-tile treatment.
func ListLayoutFor(folderContext string, visible []models.Asset, category func(string) string) Layout {
	if folderContext == "" || category(folderContext) != "Music" {
		return LayoutBento
	}
	for _, asset := range visible {
		if asset.IsAudio() {
			return LayoutList
		}
	}
	return LayoutBento
}
