package repository

import (
	"context"
	"errors"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) GetPremiereOverview(ctx context.Context, premiereID int64) (*domain.PremiereOverview, error) {
	query := `
		SELECT
			p.id,
			p.engagement_id,
			p.starts_at,
			f.title,
			c.name,
			r.name
		FROM premieres p
		JOIN engagements e ON p.engagement_id = e.id
		JOIN films f ON e.film_id = f.id
		JOIN rooms r ON e.room_id = r.id
		JOIN cinemas c ON r.cinema_id = c.id
		WHERE p.id = $1
	`

	var overview domain.PremiereOverview

	err := p.db.QueryRow(ctx, query, premiereID).Scan(
		&overview.PremiereID,
		&overview.EngagementID,
		&overview.StartsAt,
		&overview.FilmTitle,
		&overview.CinemaName,
		&overview.RoomName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &overview, nil
}

func (p *PostgresCatalogRepository) GetConcessionItemsByCinema(ctx context.Context, cinemaID int64) ([]domain.ConcessionItem, error) {
	query := `
		SELECT id, cinema_id, name, unit_price, remaining_quantity
		FROM concession_items
		WHERE cinema_id = $1
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query, cinemaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.ConcessionItem, 0)

	for rows.Next() {
		var item domain.ConcessionItem

		err = rows.Scan(
			&item.ID,
			&item.CinemaID,
			&item.Name,
			&item.UnitPrice,
			&item.RemainingQuantity,
		)

		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
