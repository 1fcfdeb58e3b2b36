// Package entity contains the core business objects of the catalog.
package entity

import (
	"slices"
	"strings"
)

// Country is an immutable value object identified by its code.
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (c Country) String() string {
	return c.Name + " (" + c.Code + ")"
}

// SortCountries orders countries by code, the display order.
func SortCountries(countries []*Country) {
	slices.SortFunc(countries, func(a, b *Country) int {
		return strings.Compare(a.Code, b.Code)
	})
}
