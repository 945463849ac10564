// Package listing filters, sorts, paginates and summarizes in-memory lists
// fetched from the backend. Every list view of the console goes through it.
package listing

import (
	"sort"
	"strings"
	"time"
)

const (
	DefaultLimit = 10
	MaxLimit     = 500

	SortByDate = "date"
	StatusAll  = "all"
)

// Record is what the engine needs to know about a list item.
type Record interface {
	// Field returns the textual value of a named field, "" when unknown.
	Field(name string) string
	StatusValue() string
	DateValue() (time.Time, bool)
}

// Query is the filter state of a list view.
type Query struct {
	Search   string
	Fields   []string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Filter returns the records matching q, in input order.
func Filter[T Record](items []T, q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.TrimSpace(q.Status)
	if strings.EqualFold(status, StatusAll) {
		status = ""
	}
	from := dayStart(q.DateFrom)
	to := dayStart(q.DateTo)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesText(item, q.Fields, needle) {
			continue
		}
		if status != "" && !strings.EqualFold(item.StatusValue(), status) {
			continue
		}
		if from != nil || to != nil {
			d, ok := item.DateValue()
			if !ok {
				continue
			}
			day := truncateDay(d)
			if from != nil && day.Before(*from) {
				continue
			}
			if to != nil && day.After(*to) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func matchesText[T Record](item T, fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(item.Field(f)), needle) {
			return true
		}
	}
	return false
}

// Sort orders a copy of items by date when q asks for it. Records without a
// date go last. Without SortBy the backend order is kept.
func Sort[T Record](items []T, q Query) []T {
	out := make([]T, len(items))
	copy(out, items)
	if q.SortBy != SortByDate {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, okI := out[i].DateValue()
		dj, okJ := out[j].DateValue()
		if !okI || !okJ {
			return okI && !okJ
		}
		if q.SortDesc {
			return di.After(dj)
		}
		return di.Before(dj)
	})
	return out
}

// Paginate slices items into 1-based pages.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	res := Page[T]{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		Items:      []T{},
	}

	// Checked before multiplying: page comes from the query string.
	if page > res.TotalPages {
		return res
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	res.Items = items[start:end]
	return res
}

// Apply runs Filter, Sort and Paginate.
func Apply[T Record](items []T, q Query) Page[T] {
	return Paginate(Sort(Filter(items, q), q), q.Page, q.Limit)
}

func dayStart(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := truncateDay(*t)
	return &d
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
