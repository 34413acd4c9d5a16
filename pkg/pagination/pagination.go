package pagination

import (
	"fmt"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

const (
	// DefaultPage is the first page
	DefaultPage = 1
	// DefaultLimit is used when a request carries no limit
	DefaultLimit = 20
	// MaxLimit is the largest page a caller may request
	MaxLimit = 100
)

// Params is a 1-indexed page request.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// New returns params with zero values replaced by defaults.
func New(page, limit int) Params {
	p := Params{Page: page, Limit: limit}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Validate rejects pages below 1 and limits outside [1, maxLimit].
func (p Params) Validate(maxLimit int) error {
	if maxLimit <= 0 || maxLimit > MaxLimit {
		maxLimit = MaxLimit
	}
	if p.Page < 1 {
		return errors.BadRequest("page: must be at least 1")
	}
	if p.Limit < 1 || p.Limit > maxLimit {
		return errors.BadRequest(fmt.Sprintf("limit: must be between 1 and %d", maxLimit))
	}
	return nil
}

// Offset returns the number of items skipped before this page.
func (p Params) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes a page in a list response.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewMeta computes page metadata from the filtered total.
func NewMeta(p Params, total int) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}

// Page slices items down to the requested page.
func Page[T any](items []T, p Params) []T {
	start := p.Offset()
	if start >= len(items) || p.Limit < 1 {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
