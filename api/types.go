// Package api defines the request and response types exposed by the HTTP
// surface. Monetary amounts are serialized as decimal strings in major
// currency units; the engine itself works in integer minor units.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTicketRequest struct {
	PremiereID  int64             `json:"premiereId" validate:"required,min=1"`
	SeatID      int64             `json:"seatId" validate:"required,min=1"`
	Concessions []ConcessionOrder `json:"concessions" validate:"omitempty,max=20,dive"`
}

type ConcessionOrder struct {
	ItemID   int64 `json:"itemId" validate:"required,min=1"`
	Quantity int32 `json:"quantity" validate:"required,min=1,max=50"`
}

type GetTicketsOfUserParams struct {
	Page     *int       `validate:"omitempty,min=1"`
	PageSize *int       `validate:"omitempty,min=1,max=100"`
	Term     *string    `validate:"omitempty,max=100"`
	From     *time.Time `validate:"omitempty"`
	To       *time.Time `validate:"omitempty"`
}

type TicketResponse struct {
	Id           int64                  `json:"id"`
	Reference    uuid.UUID              `json:"reference"`
	PremiereId   int64                  `json:"premiereId"`
	PremiereDate time.Time              `json:"premiereDate"`
	FilmTitle    string                 `json:"filmTitle"`
	CinemaName   string                 `json:"cinemaName"`
	RoomName     string                 `json:"roomName"`
	SeatId       int64                  `json:"seatId"`
	SeatName     string                 `json:"seatName"`
	Status       string                 `json:"status"`
	TotalPrice   decimal.Decimal        `json:"totalPrice"`
	Concessions  []TicketConcessionLine `json:"concessions"`
	CreatedAt    time.Time              `json:"createdAt"`
	CancelledAt  *time.Time             `json:"cancelledAt,omitempty"`
}

type TicketConcessionLine struct {
	ItemId    int64           `json:"itemId"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type TicketSummary struct {
	Id           int64           `json:"id"`
	Reference    uuid.UUID       `json:"reference"`
	FilmTitle    string          `json:"filmTitle"`
	CinemaName   string          `json:"cinemaName"`
	RoomName     string          `json:"roomName"`
	SeatName     string          `json:"seatName"`
	PremiereDate time.Time       `json:"premiereDate"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type UserTicketsResponse struct {
	Tickets  []TicketSummary `json:"tickets"`
	Metadata Metadata        `json:"metadata"`
}

type PremiereOverview struct {
	Id         int64     `json:"id"`
	StartsAt   time.Time `json:"startsAt"`
	FilmTitle  string    `json:"filmTitle"`
	CinemaName string    `json:"cinemaName"`
	RoomName   string    `json:"roomName"`
}

type ConcessionItem struct {
	Id                int64           `json:"id"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	RemainingQuantity int32           `json:"remainingQuantity"`
}

type ConcessionListResponse struct {
	CinemaId    int64            `json:"cinemaId"`
	Concessions []ConcessionItem `json:"concessions"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
