package views

import (
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/filters"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

const (
	NavSidebar  = "sidebar"
	NavDropdown = "dropdown"
)

type ChipView struct {
	filters.Chip

	RemoveQuery string `json:"remove_query"`
}

type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Query    string `json:"query"`
}

type DepartmentEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount string `json:"product_count"`
	Selected     bool   `json:"selected"`
	Query        string `json:"query"`
}

// DepartmentNav is rendered as a sidebar on wide layouts and as a dropdown
// on compact ones.
type DepartmentNav struct {
	Mode        string            `json:"mode"`
	Departments []DepartmentEntry `json:"departments"`
}

type PageLinks struct {
	models.Pagination

	PrevQuery string `json:"prev_query,omitempty"`
	NextQuery string `json:"next_query,omitempty"`
}

type ListingPage struct {
	Title            string        `json:"title"`
	ResultsCount     string        `json:"results_count"`
	Query            string        `json:"query"`
	State            filters.State `json:"state"`
	Products         []ProductCard `json:"products"`
	Chips            []ChipView    `json:"chips"`
	HasActiveFilters bool          `json:"has_active_filters"`
	ClearQuery       string        `json:"clear_query"`
	SortOptions      []Choice      `json:"sort_options"`
	PageSizeOptions  []Choice      `json:"page_size_options"`
	RatingOptions    []Choice      `json:"rating_options"`
	Categories       []string      `json:"categories"`
	Brands           []string      `json:"brands"`
	Departments      DepartmentNav `json:"departments"`
	Pagination       PageLinks     `json:"pagination"`
	Compact          bool          `json:"compact"`
}

type ListingInput struct {
	State       filters.State
	Products    *models.ProductList
	Departments []models.Department
	Categories  []string
	Brands      []string
	Membership  Membership
	Compact     bool
}

func NewListingPage(in ListingInput) ListingPage {
	s := in.State

	page := ListingPage{
		Title:            ListingTitle(s, in.Departments),
		Query:            s.Encode(),
		State:            s,
		Chips:            chipViews(s, in.Departments),
		HasActiveFilters: filters.HasActive(s),
		ClearQuery:       filters.Clear().Encode(),
		SortOptions:      sortChoices(s),
		PageSizeOptions:  pageSizeChoices(s),
		RatingOptions:    ratingChoices(s),
		Categories:       in.Categories,
		Brands:           in.Brands,
		Departments:      departmentNav(s, in.Departments, in.Compact),
		Compact:          in.Compact,
		Products:         []ProductCard{},
	}

	if in.Products != nil {
		page.Products = NewProductCards(in.Products.Products, in.Membership)
		page.Pagination = pageLinks(s, models.NewPagination(
			in.Products.Page, in.Products.PerPage, in.Products.Total, in.Products.TotalPages,
		))
		page.ResultsCount = ResultsCount(page.Pagination.Pagination)
	}

	return page
}

// ListingTitle names the result set by its most specific criterion.
func ListingTitle(s filters.State, departments []models.Department) string {
	switch {
	case s.Search != "":
		return `Search results for "` + s.Search + `"`
	case s.DepartmentID != nil:
		for _, d := range departments {
			if d.ID == *s.DepartmentID {
				return d.Name + " Products"
			}
		}

		return "Products"
	case s.Category != "":
		return s.Category + " Products"
	default:
		return "All Products"
	}
}

// ResultsCount renders "Showing 21-40 of 1,234 products".
func ResultsCount(p models.Pagination) string {
	if p.Total == 0 {
		return "No products found"
	}

	return "Showing " + strconv.Itoa(p.Start) + "-" + strconv.Itoa(p.End) +
		" of " + FormatCount(p.Total) + " products"
}

func chipViews(s filters.State, departments []models.Department) []ChipView {
	chips := filters.ActiveFilters(s, departments)

	views := make([]ChipView, 0, len(chips))
	for _, c := range chips {
		views = append(views, ChipView{
			Chip:        c,
			RemoveQuery: filters.RemoveChip(s, c.Key).Encode(),
		})
	}

	return views
}

func sortChoices(s filters.State) []Choice {
	choices := make([]Choice, 0, len(filters.SortOptions))
	for _, o := range filters.SortOptions {
		next := filters.Update(s, filters.Patch{
			filters.KeySortBy:    o.SortBy,
			filters.KeySortOrder: o.SortOrder,
		})

		choices = append(choices, Choice{
			Value:    o.Value(),
			Label:    o.Label,
			Selected: o.SortBy == s.SortBy && o.SortOrder == s.SortOrder,
			Query:    next.Encode(),
		})
	}

	return choices
}

func pageSizeChoices(s filters.State) []Choice {
	choices := make([]Choice, 0, len(filters.PageSizeOptions))
	for _, n := range filters.PageSizeOptions {
		v := strconv.Itoa(n)
		choices = append(choices, Choice{
			Value:    v,
			Label:    v + " per page",
			Selected: n == s.PerPage,
			Query:    filters.Update(s, filters.Patch{filters.KeyPerPage: v}).Encode(),
		})
	}

	return choices
}

func ratingChoices(s filters.State) []Choice {
	current := ""
	if s.MinRating != nil {
		current = strconv.FormatFloat(*s.MinRating, 'f', -1, 64)
	}

	choices := make([]Choice, 0, len(filters.RatingOptions))
	for _, o := range filters.RatingOptions {
		choices = append(choices, Choice{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == current,
			Query:    filters.Update(s, filters.Patch{filters.KeyMinRating: o.Value}).Encode(),
		})
	}

	return choices
}

// departmentNav links every department as a toggle: choosing the selected
// one clears the department filter.
func departmentNav(s filters.State, departments []models.Department, compact bool) DepartmentNav {
	nav := DepartmentNav{Mode: NavSidebar, Departments: make([]DepartmentEntry, 0, len(departments))}
	if compact {
		nav.Mode = NavDropdown
	}

	for _, d := range departments {
		selected := s.DepartmentID != nil && *s.DepartmentID == d.ID

		value := strconv.FormatInt(d.ID, 10)
		if selected {
			value = ""
		}

		nav.Departments = append(nav.Departments, DepartmentEntry{
			ID:           d.ID,
			Name:         d.Name,
			ProductCount: FormatCount(d.ProductCount) + " items",
			Selected:     selected,
			Query:        filters.Update(s, filters.Patch{filters.KeyDepartmentID: value}).Encode(),
		})
	}

	return nav
}

func pageLinks(s filters.State, p models.Pagination) PageLinks {
	links := PageLinks{Pagination: p}

	if p.HasPrev {
		links.PrevQuery = filters.Update(s, filters.Patch{filters.KeyPage: strconv.Itoa(p.Page - 1)}).Encode()
	}

	if p.HasNext {
		links.NextQuery = filters.Update(s, filters.Patch{filters.KeyPage: strconv.Itoa(p.Page + 1)}).Encode()
	}

	return links
}
