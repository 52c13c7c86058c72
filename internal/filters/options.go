package filters

import (
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type Chip struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ActiveFilters lists a chip for every criterion set in s, sorting and paging
// excluded. Department ids resolve to names through departments when
// possible.
func ActiveFilters(s State, departments []models.Department) []Chip {
	var chips []Chip

	add := func(key, label, value string) {
		chips = append(chips, Chip{Key: key, Label: label, Value: value})
	}

	if s.Search != "" {
		add(KeySearch, `Search: "`+s.Search+`"`, s.Search)
	}

	if s.Category != "" {
		add(KeyCategory, "Category: "+s.Category, s.Category)
	}

	if s.Brand != "" {
		add(KeyBrand, "Brand: "+s.Brand, s.Brand)
	}

	if s.DepartmentID != nil {
		id := strconv.FormatInt(*s.DepartmentID, 10)
		name := id

		for _, d := range departments {
			if d.ID == *s.DepartmentID {
				name = d.Name
				break
			}
		}

		add(KeyDepartmentID, "Department: "+name, id)
	}

	if s.MinPrice != nil {
		v := formatFloat(*s.MinPrice)
		add(KeyMinPrice, "Min Price: $"+v, v)
	}

	if s.MaxPrice != nil {
		v := formatFloat(*s.MaxPrice)
		add(KeyMaxPrice, "Max Price: $"+v, v)
	}

	if s.MinRating != nil {
		v := formatFloat(*s.MinRating)
		add(KeyMinRating, "Min Rating: "+v+"★", v)
	}

	return chips
}

type SortOption struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Label     string `json:"label"`
}

// Value is the combined select value, e.g. "sale_price-asc".
func (o SortOption) Value() string {
	return o.SortBy + "-" + o.SortOrder
}

var SortOptions = []SortOption{
	{"created_at", "desc", "Newest First"},
	{"created_at", "asc", "Oldest First"},
	{"sale_price", "asc", "Price: Low to High"},
	{"sale_price", "desc", "Price: High to Low"},
	{"rating", "desc", "Highest Rated"},
	{"product_name", "asc", "Name: A to Z"},
	{"product_name", "desc", "Name: Z to A"},
}

type RatingOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var RatingOptions = []RatingOption{
	{"", "Any Rating"},
	{"4", "4★ & above"},
	{"3", "3★ & above"},
	{"2", "2★ & above"},
	{"1", "1★ & above"},
}

var PageSizeOptions = []int{12, 20, 40, 60}

// SelectedSort returns the preset matching s, if any.
func SelectedSort(s State) (SortOption, bool) {
	for _, o := range SortOptions {
		if o.SortBy == s.SortBy && o.SortOrder == s.SortOrder {
			return o, true
		}
	}

	return SortOption{}, false
}
