package api

import (
	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/dateservice"
	"github.com/starford/miti/internal/view"
)

// ShiftRequest is the request body for moving a date.
type ShiftRequest struct {
	Value int    `json:"value" example:"-3" validate:"required"`
	Unit  string `json:"unit" example:"month" validate:"required"`
	Lang  string `json:"lang,omitempty" example:"np"`
}

// FormatResponse is the rendered text of a date.
type FormatResponse struct {
	Date   string `json:"date" example:"2080-01-15" validate:"required"`
	Layout string `json:"layout" example:"MMMM D, YYYY" validate:"required"`
	Text   string `json:"text" example:"Baisakh 15, 2080" validate:"required"`
}

// DateDetail is the full date response type (aliased from the domain layer).
type DateDetail = dateservice.DateDetail

// RangeResponse is the supported range as YYYY-MM-DD strings.
type RangeResponse struct {
	StartBS string `json:"start_bs" example:"2000-01-01" validate:"required"`
	EndBS   string `json:"end_bs" example:"2090-12-30" validate:"required"`
	StartAD string `json:"start_ad" example:"1943-04-14" validate:"required"`
	EndAD   string `json:"end_ad" example:"2034-04-13" validate:"required"`
}

func newRangeResponse(r calendar.Range) RangeResponse {
	return RangeResponse{
		StartBS: r.StartBS.String(),
		EndBS:   r.EndBS.String(),
		StartAD: r.StartAD.String(),
		EndAD:   r.EndAD.String(),
	}
}

// MonthResponse is a rendered calendar page (aliased from the view layer).
type MonthResponse = view.Month
