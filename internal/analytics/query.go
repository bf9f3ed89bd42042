package analytics

import (
	"strings"

	"payflow/internal/models"
)

const (
	// FilterAll disables the categorical filter.
	FilterAll = "all"
	// DefaultPageSize is used when a non-positive page size is requested.
	DefaultPageSize = 10
)

// Field reads a string attribute from a record. Absent values read as "".
type Field[T any] func(T) string

// QuerySpec names the fields a record type is searched and filtered on.
type QuerySpec[T any] struct {
	SearchFields []Field[T]
	FilterField  Field[T]
}

// QueryParams is the caller-owned table state. Callers reset Page to 1
// whenever SearchTerm or FilterValue change.
type QueryParams struct {
	SearchTerm  string `json:"search"`
	FilterValue string `json:"filter"`
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
}

// Page is one slice of a filtered collection plus pagination metadata.
type Page[T any] struct {
	Rows       []T `json:"rows"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// PaymentQuery searches customer name, customer email and payment id, and
// filters on status.
var PaymentQuery = QuerySpec[models.Payment]{
	SearchFields: []Field[models.Payment]{
		func(p models.Payment) string {
			if p.Customer == nil {
				return ""
			}
			return p.Customer.Name
		},
		func(p models.Payment) string {
			if p.Customer == nil {
				return ""
			}
			return p.Customer.Email
		},
		func(p models.Payment) string { return p.ID },
	},
	FilterField: func(p models.Payment) string { return string(p.Status) },
}

// CustomerQuery searches customer name and email. Customers have no
// categorical filter.
var CustomerQuery = QuerySpec[models.Customer]{
	SearchFields: []Field[models.Customer]{
		func(c models.Customer) string { return c.Name },
		func(c models.Customer) string { return c.Email },
	},
}

// APIKeyQuery searches key names and filters on mode.
var APIKeyQuery = QuerySpec[models.APIKey]{
	SearchFields: []Field[models.APIKey]{
		func(k models.APIKey) string { return k.Name },
	},
	FilterField: func(k models.APIKey) string { return k.Mode },
}

// Query applies the filter, then the search term, then pagination.
func Query[T any](records []T, spec QuerySpec[T], params QueryParams) Page[T] {
	filtered := Filter(records, spec, params.SearchTerm, params.FilterValue)
	return Paginate(filtered, params.Page, params.PageSize)
}

// Filter returns the records matching both the categorical filter and the
// search term, in input order.
func Filter[T any](records []T, spec QuerySpec[T], searchTerm, filterValue string) []T {
	needle := strings.ToLower(searchTerm)
	filterOn := spec.FilterField != nil && filterValue != "" && filterValue != FilterAll

	out := make([]T, 0, len(records))
	for _, r := range records {
		if filterOn && spec.FilterField(r) != filterValue {
			continue
		}
		if needle != "" && !matchesAny(r, spec.SearchFields, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesAny[T any](record T, fields []Field[T], needle string) bool {
	for _, field := range fields {
		if field == nil {
			continue
		}
		value := field(record)
		if value != "" && strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// Paginate slices records into the requested page. The page is clamped to
// [1, totalPages] and there is always at least one page.
func Paginate[T any](records []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := TotalPages(total, pageSize)

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	rows := make([]T, 0, end-start)
	rows = append(rows, records[start:end]...)

	return Page[T]{
		Rows:       rows,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// TotalPages is ceil(totalItems / pageSize) with a minimum of one page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}
