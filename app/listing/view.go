package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps anything but "desc" to ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Query is the full set of view parameters.
type Query struct {
	Search    string
	SortField string
	Direction Direction
	Page      int
	PageSize  int
}

// Page is one page of a derived view.
type Page[T any] struct {
	Data      []T `json:"data"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	TotalPage int `json:"totalPage"`
	TotalData int `json:"totalData"`
}

// Locale drives string collation for sorting.
var Locale = language.Indonesian

// Filter keeps records where any search projection contains the lower-cased query.
func Filter[T any](records []T, schema Schema[T], query string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || matches(schema, r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches[T any](schema Schema[T], r T, q string) bool {
	if schema.Search == nil {
		return false
	}
	for _, p := range schema.Search(r) {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy. An empty or unknown field keeps the input order.
func Sort[T any](records []T, schema Schema[T], field string, dir Direction) []T {
	out := slices.Clone(records)
	f, ok := schema.Fields[field]
	if field == "" || !ok {
		return out
	}

	var cmp func(a, b T) int
	switch {
	case f.Number != nil:
		cmp = func(a, b T) int {
			x, y := f.Number(a), f.Number(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case f.Text != nil:
		// collators keep internal buffers, one per call
		cl := collate.New(Locale)
		cmp = func(a, b T) int {
			return cl.CompareString(f.Text(a), f.Text(b))
		}
	default:
		return out
	}

	if dir == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

// PageCount is ceil(total / size).
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate slices [(page-1)*size, page*size) clipped to the list.
func Paginate[T any](records []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(records) {
		return []T{}
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return slices.Clone(records[start:end])
}

// Apply runs filter, sort and paginate in that order.
func Apply[T any](records []T, schema Schema[T], q Query) Page[T] {
	size := q.PageSize
	if size <= 0 {
		size = schema.pageSize()
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	sorted := Sort(Filter(records, schema, q.Search), schema, q.SortField, q.Direction)
	return Page[T]{
		Data:      Paginate(sorted, page, size),
		Page:      page,
		PageSize:  size,
		TotalPage: PageCount(len(sorted), size),
		TotalData: len(sorted),
	}
}
