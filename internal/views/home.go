package views

import (
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type StatTile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DepartmentTile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount string `json:"product_count"`
	URL          string `json:"url"`
}

type HomePage struct {
	Stats       []StatTile       `json:"stats"`
	Featured    []ProductCard    `json:"featured"`
	Latest      []ProductCard    `json:"latest"`
	Departments []DepartmentTile `json:"departments"`
}

type HomeInput struct {
	ProductStats    *models.ProductStats
	DepartmentStats *models.DepartmentStats
	Featured        []models.Product
	Latest          []models.Product
	Departments     []models.Department
	Membership      Membership
}

func NewHomePage(in HomeInput) HomePage {
	home := HomePage{
		Stats:       StatTiles(in.ProductStats, in.DepartmentStats),
		Featured:    NewProductCards(in.Featured, in.Membership),
		Latest:      NewProductCards(in.Latest, in.Membership),
		Departments: make([]DepartmentTile, 0, len(in.Departments)),
	}

	for _, d := range in.Departments {
		home.Departments = append(home.Departments, DepartmentTile{
			ID:           d.ID,
			Name:         d.Name,
			ProductCount: FormatCount(d.ProductCount) + " products",
			URL:          "/products?department_id=" + strconv.FormatInt(d.ID, 10),
		})
	}

	return home
}

// StatTiles summarises the catalog. Missing stats render as zeros.
func StatTiles(products *models.ProductStats, departments *models.DepartmentStats) []StatTile {
	var ps models.ProductStats
	if products != nil {
		ps = *products
	}

	var ds models.DepartmentStats
	if departments != nil {
		ds = *departments
	}

	return []StatTile{
		{Label: "Products Available", Value: FormatCompact(float64(ps.TotalProducts))},
		{Label: "Departments", Value: strconv.Itoa(ds.TotalDepartments)},
		{Label: "Average Rating", Value: strconv.FormatFloat(ps.AverageRating, 'f', 1, 64)},
		{Label: "Top Price Range", Value: "$" + FormatCompact(ps.PriceRange.Max)},
	}
}
