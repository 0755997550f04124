package dto

import (
	"github.com/shopspring/decimal"

	"github.com/baechuer/visit-service/internal/stats"
)

// CountResp is a zero-filled breakdown with percentage shares.
type CountResp[K comparable] struct {
	From   string                `json:"from,omitempty"`
	To     string                `json:"to,omitempty"`
	Total  int                   `json:"total"`
	Counts map[K]int             `json:"counts"`
	Shares map[K]decimal.Decimal `json:"shares"`
	Labels map[K]string          `json:"labels,omitempty"`
}

type PerDayResp struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Total int              `json:"total"`
	Days  []stats.DayCount `json:"days"`
}

type TopCityResp struct {
	CityID string          `json:"city_id"`
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Share  decimal.Decimal `json:"share"`
}

type TopCitiesResp struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Limit  int           `json:"limit"`
	Cities []TopCityResp `json:"cities"`
}

type DashboardResp struct {
	From      string            `json:"from"`
	To        string            `json:"to"`
	Total     int               `json:"total"`
	PerDay    []stats.DayCount  `json:"per_day"`
	Kind      CountResp[string] `json:"kind"`
	Gender    CountResp[string] `json:"gender"`
	Age       CountResp[string] `json:"age"`
	PostCode  CountResp[string] `json:"post_code"`
	TopCities []TopCityResp     `json:"top_cities"`
}
