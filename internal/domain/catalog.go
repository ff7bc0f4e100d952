package domain

import (
	"context"
	"time"
)

// The reference catalog is owned by other services; this engine only reads it,
// except for ConcessionItem.RemainingQuantity which is decremented inside the
// reservation transaction.

type PremiereOverview struct {
	PremiereID   int64
	EngagementID int64
	StartsAt     time.Time
	FilmTitle    string
	CinemaName   string
	RoomName     string
}

type ConcessionItem struct {
	ID                int64
	CinemaID          int64
	Name              string
	UnitPrice         int64 // minor currency units
	RemainingQuantity int32
}

type Account struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

type CatalogRepository interface {
	GetPremiereOverview(ctx context.Context, premiereID int64) (*PremiereOverview, error)
	GetConcessionItemsByCinema(ctx context.Context, cinemaID int64) ([]ConcessionItem, error)
}

type AccountRepository interface {
	GetById(ctx context.Context, id int64) (*Account, error)
}
