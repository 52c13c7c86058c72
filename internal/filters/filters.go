package filters

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/storefront/pkg/catalog"
)

const (
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
	DefaultPage      = 1
	DefaultPerPage   = 20
	MaxPerPage       = 100
	MaxRating        = 5
)

// Query string keys.
const (
	KeySearch       = "search"
	KeyCategory     = "category"
	KeyBrand        = "brand"
	KeyDepartmentID = "department_id"
	KeyMinPrice     = "min_price"
	KeyMaxPrice     = "max_price"
	KeyMinRating    = "min_rating"
	KeySortBy       = "sort_by"
	KeySortOrder    = "sort_order"
	KeyPage         = "page"
	KeyPerPage      = "per_page"
)

var keys = []string{
	KeySearch, KeyCategory, KeyBrand, KeyDepartmentID, KeyMinPrice, KeyMaxPrice,
	KeyMinRating, KeySortBy, KeySortOrder, KeyPage, KeyPerPage,
}

// State is the full set of listing criteria. Optional numeric criteria are
// nil when unset.
type State struct {
	Search       string   `json:"search,omitempty"`
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	DepartmentID *int64   `json:"department_id,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	MinRating    *float64 `json:"min_rating,omitempty"`
	SortBy       string   `json:"sort_by"`
	SortOrder    string   `json:"sort_order"`
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
}

// Patch is a set of raw query-string edits. An empty value clears the key.
type Patch map[string]string

func Clear() State {
	return FromQuery(nil)
}

// FromQuery coerces raw query values into a State. Unknown keys are ignored
// and malformed values are treated as absent.
func FromQuery(q url.Values) State {
	s := State{
		Search:    strings.TrimSpace(q.Get(KeySearch)),
		Category:  strings.TrimSpace(q.Get(KeyCategory)),
		Brand:     strings.TrimSpace(q.Get(KeyBrand)),
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Page:      DefaultPage,
		PerPage:   DefaultPerPage,
	}

	if v, err := strconv.ParseInt(q.Get(KeyDepartmentID), 10, 64); err == nil && v > 0 {
		s.DepartmentID = &v
	}

	s.MinPrice = parseFloat(q.Get(KeyMinPrice), 0, -1)
	s.MaxPrice = parseFloat(q.Get(KeyMaxPrice), 0, -1)
	s.MinRating = parseFloat(q.Get(KeyMinRating), 0, MaxRating)

	if v := strings.TrimSpace(q.Get(KeySortBy)); v != "" {
		s.SortBy = v
	}

	switch v := strings.ToLower(strings.TrimSpace(q.Get(KeySortOrder))); v {
	case "asc", "desc":
		s.SortOrder = v
	}

	if v, err := strconv.Atoi(q.Get(KeyPage)); err == nil && v >= 1 {
		s.Page = v
	}

	if v, err := strconv.Atoi(q.Get(KeyPerPage)); err == nil {
		s.PerPage = min(max(v, 1), MaxPerPage)
	}

	return s
}

// parseFloat returns nil for empty, malformed or out-of-range input. A
// negative upper bound means unbounded.
func parseFloat(raw string, lo, hi float64) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < lo || (hi >= 0 && v > hi) {
		return nil
	}

	// -0 would otherwise encode as "-0".
	if v == 0 {
		v = 0
	}

	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ToQuery serializes s for the address bar. Empty keys are omitted, page is
// omitted when 1 and per_page whenever it equals the default.
func (s State) ToQuery() url.Values {
	q := url.Values{}

	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}

	set(KeySearch, s.Search)
	set(KeyCategory, s.Category)
	set(KeyBrand, s.Brand)

	if s.DepartmentID != nil {
		set(KeyDepartmentID, strconv.FormatInt(*s.DepartmentID, 10))
	}

	if s.MinPrice != nil {
		set(KeyMinPrice, formatFloat(*s.MinPrice))
	}

	if s.MaxPrice != nil {
		set(KeyMaxPrice, formatFloat(*s.MaxPrice))
	}

	if s.MinRating != nil {
		set(KeyMinRating, formatFloat(*s.MinRating))
	}

	set(KeySortBy, s.SortBy)
	set(KeySortOrder, s.SortOrder)

	if s.Page != DefaultPage {
		set(KeyPage, strconv.Itoa(s.Page))
	}

	if s.PerPage != DefaultPerPage {
		set(KeyPerPage, strconv.Itoa(s.PerPage))
	}

	return q
}

// Encode is the canonical query string for s.
func (s State) Encode() string {
	return s.ToQuery().Encode()
}

// Update merges patch into current. Unless the patch sets page explicitly the
// result is back on page 1.
func Update(current State, patch Patch) State {
	raw := current.ToQuery()

	for key, value := range patch {
		if !slices.Contains(keys, key) {
			continue
		}

		if strings.TrimSpace(value) == "" {
			raw.Del(key)
			continue
		}

		raw.Set(key, value)
	}

	if _, ok := patch[KeyPage]; !ok {
		raw.Del(KeyPage)
	}

	return FromQuery(raw)
}

// RemoveChip clears the criterion behind a chip.
func RemoveChip(current State, key string) State {
	return Update(current, Patch{key: ""})
}

// PatchFromQuery picks the known keys out of raw query values.
func PatchFromQuery(q url.Values) Patch {
	p := Patch{}

	for _, key := range keys {
		if values, ok := q[key]; ok {
			value := ""
			if len(values) > 0 {
				value = values[0]
			}
			p[key] = value
		}
	}

	return p
}

// HasActive reports whether any criterion other than sorting and paging is
// set.
func HasActive(s State) bool {
	return s.Search != "" || s.Category != "" || s.Brand != "" || s.DepartmentID != nil ||
		s.MinPrice != nil || s.MaxPrice != nil || s.MinRating != nil
}

// Params builds the outgoing request parameters. A reversed price range is
// swapped so the catalog API does not reject it.
func (s State) Params() catalog.Params {
	p := catalog.Params{
		KeySearch:    s.Search,
		KeyCategory:  s.Category,
		KeyBrand:     s.Brand,
		KeySortBy:    s.SortBy,
		KeySortOrder: s.SortOrder,
		KeyPage:      s.Page,
		KeyPerPage:   s.PerPage,
	}

	if s.DepartmentID != nil {
		p[KeyDepartmentID] = *s.DepartmentID
	}

	minPrice, maxPrice := s.MinPrice, s.MaxPrice
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	if minPrice != nil {
		p[KeyMinPrice] = *minPrice
	}

	if maxPrice != nil {
		p[KeyMaxPrice] = *maxPrice
	}

	if s.MinRating != nil {
		p[KeyMinRating] = *s.MinRating
	}

	return p
}

// WithoutDepartment returns the parameters for a department-scoped listing,
// where the department comes from the path instead.
func (s State) WithoutDepartment() catalog.Params {
	p := s.Params()
	delete(p, KeyDepartmentID)

	return p
}
