package dto

import "time"

// EventResp is an event as the dashboard displays it.
type EventResp struct {
	ID string `json:"id"`

	Kind        string `json:"kind"`
	KindLabel   string `json:"kind_label"`
	Gender      string `json:"gender"`
	GenderLabel string `json:"gender_label"`
	Age         string `json:"age"`
	AgeLabel    string `json:"age_label"`

	CityID   string `json:"city_id"`
	CityName string `json:"city_name"`
	PostCode string `json:"post_code,omitempty"`

	Date        time.Time `json:"date"`
	DisplayDate string    `json:"display_date"`
}

type PageResp[T any] struct {
	Items  []T `json:"items"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

type RangeResp[T any] struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Items []T    `json:"items"`
}

// CreateEventReq adds one event. A missing date means now.
type CreateEventReq struct {
	Kind   string     `json:"kind" validate:"required,visit_kind"`
	Gender string     `json:"gender" validate:"required,visit_gender"`
	Age    string     `json:"age" validate:"required,visit_age"`
	City   string     `json:"city" validate:"required"`
	Date   *time.Time `json:"date,omitempty"`
}

type EventReq struct {
	ID     string     `json:"id,omitempty"`
	Kind   string     `json:"kind" validate:"required,visit_kind"`
	Gender string     `json:"gender" validate:"required,visit_gender"`
	Age    string     `json:"age" validate:"required,visit_age"`
	City   string     `json:"city" validate:"required"`
	Date   *time.Time `json:"date" validate:"required"`
}

type ReplaceEventsReq struct {
	Events []EventReq `json:"events" validate:"max=200000,dive"`
}
