package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusPaid      TicketStatus = "paid"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// TicketOrder is a validated purchase request handed to the reservation engine.
type TicketOrder struct {
	PremiereID  int64
	SeatID      int64
	AccountID   int64
	Concessions []ConcessionOrder
}

type ConcessionOrder struct {
	ItemID   int64
	Quantity int32
}

type Ticket struct {
	ID          int64
	Reference   uuid.UUID
	PremiereID  int64
	SeatID      int64
	AccountID   int64
	TotalPrice  int64 // minor currency units
	Status      TicketStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
	Lines       []ConcessionLine
}

// ConcessionLine is a purchased quantity of one concession item. UnitPrice is
// the price captured at purchase time, not a live catalog reference.
type ConcessionLine struct {
	ItemID    int64
	ItemName  string
	Quantity  int32
	UnitPrice int64
}

// TicketDetail is the caller-facing projection of a ticket, including the
// display names resolved from the reference catalog.
type TicketDetail struct {
	Ticket
	FilmTitle        string
	CinemaName       string
	RoomName         string
	SeatName         string
	PremiereStartsAt time.Time
}

type TicketSummary struct {
	TicketID         int64
	Reference        uuid.UUID
	FilmTitle        string
	CinemaName       string
	RoomName         string
	SeatName         string
	PremiereStartsAt time.Time
	TotalPrice       int64
	Status           TicketStatus
	CreatedAt        time.Time
}

// TicketFilters narrows the ticket listing by premiere date range and a
// free-text term matched against film, cinema and room names.
type TicketFilters struct {
	Pagination
	From *time.Time
	To   *time.Time
}

type TicketRepository interface {
	Create(ctx context.Context, order TicketOrder) (*TicketDetail, error)
	Cancel(ctx context.Context, ticketID, accountID int64) (*TicketDetail, error)
	GetByIdAndAccountId(ctx context.Context, ticketID, accountID int64) (*TicketDetail, error)
	GetSummariesByAccountId(ctx context.Context, accountID int64, filters TicketFilters) ([]TicketSummary, *Metadata, error)
}
