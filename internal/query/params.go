// Package query turns raw, untrusted listing parameters into a bounded
// listing specification. Normalization never fails.
package query

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultPageSize = 20
	MinPageSize     = 5
	MaxPageSize     = 100

	// MinSearchLength is the shortest trimmed query that produces a search
	// predicate. Shorter queries list as if no query was given.
	MinSearchLength = 2

	allCategories = "all"
)

// Params are listing parameters exactly as they arrive from a client.
type Params struct {
	Q               string
	CategoryID      string
	Page            string
	PageSize        string
	IncludeArchived string
}

// Spec is a normalized listing request. OwnerID never comes from Params.
type Spec struct {
	OwnerID         string
	ExcludeDeleted  bool
	IncludeArchived bool
	CategoryID      string
	Search          string
	Page            int
	PageSize        int
	Limit           uint64
	Offset          uint64
}

func (s Spec) HasSearch() bool {
	return s.Search != ""
}

func (s Spec) HasCategory() bool {
	return s.CategoryID != ""
}

func Normalize(ownerID string, p Params) Spec {
	page := ParsePage(p.Page)
	size := ParsePageSize(p.PageSize)

	return Spec{
		OwnerID:         ownerID,
		ExcludeDeleted:  true,
		IncludeArchived: ParseFlag(p.IncludeArchived),
		CategoryID:      ParseCategory(p.CategoryID),
		Search:          ParseSearch(p.Q),
		Page:            page,
		PageSize:        size,
		Limit:           uint64(size),
		Offset:          offset(page, size),
	}
}

func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func ParsePageSize(raw string) int {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultPageSize
	}

	return min(max(size, MinPageSize), MaxPageSize)
}

func ParseSearch(raw string) string {
	q := strings.TrimSpace(raw)
	if utf8.RuneCountInString(q) < MinSearchLength {
		return ""
	}

	return q
}

func ParseCategory(raw string) string {
	id := strings.TrimSpace(raw)
	if strings.EqualFold(id, allCategories) {
		return ""
	}

	return id
}

func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// PageCount is max(ceil(total/pageSize), 1).
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}

	return (total + pageSize - 1) / pageSize
}

func offset(page, size int) uint64 {
	p := uint64(page - 1)
	s := uint64(size)

	if p > math.MaxInt64/s {
		return math.MaxInt64
	}

	return p * s
}
