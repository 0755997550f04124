package domain

import "strings"

// UnknownCityName is shown for events whose city does not resolve.
const UnknownCityName = "?"

type City struct {
	ID       string `json:"id"`
	PostCode string `json:"post_code,omitempty"`
	Name     string `json:"name"`
}

// HasPostCode is false for the catch-all city.
func (c City) HasPostCode() bool { return c.PostCode != "" }

// ValidPostCode reports whether s is exactly five ASCII digits.
func ValidPostCode(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeCity trims the id, name and postcode of c.
func NormalizeCity(c City) City {
	return City{
		ID:       strings.TrimSpace(c.ID),
		PostCode: strings.TrimSpace(c.PostCode),
		Name:     strings.TrimSpace(c.Name),
	}
}
