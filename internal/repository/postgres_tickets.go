package repository

import (
	"context"
	"errors"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxPurchaseAttempts = 3

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

// Create reserves the seat and the requested concession quantities and writes
// the ticket aggregate, all inside one transaction. Seat uniqueness is
// enforced by the partial unique index on active (premiere_id, seat_id) pairs;
// the losing concurrent insert surfaces as ErrSeatUnavailable. Stock is taken
// with conditional decrements, so the check and the write are a single atomic
// statement. Transient lock/serialization failures are retried a bounded
// number of times before being reported as ErrPurchaseContention.
func (p *PostgresTicketRepository) Create(ctx context.Context, order domain.TicketOrder) (*domain.TicketDetail, error) {
	var ticketID int64
	var err error

	for attempt := 0; attempt < maxPurchaseAttempts; attempt++ {
		ticketID, err = p.reserve(ctx, order)
		if err == nil || !isTransient(err) {
			break
		}
	}

	if err != nil {
		if isTransient(err) {
			return nil, domain.ErrPurchaseContention
		}
		return nil, err
	}

	// The display projection is presentational only, so it runs outside the
	// write transaction.
	return p.getDetail(ctx, ticketID)
}

func (p *PostgresTicketRepository) reserve(ctx context.Context, order domain.TicketOrder) (int64, error) {
	var ticketID int64

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Bound lock waits so contended purchases fail fast and retry
		// instead of queuing behind each other indefinitely.
		_, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '3s'")
		if err != nil {
			return err
		}

		seatPrice, err := seatUnitPrice(ctx, tx, order.PremiereID, order.SeatID)
		if err != nil {
			return err
		}

		lines, err := buildConcessionLines(ctx, tx, order.Concessions)
		if err != nil {
			return err
		}

		totalPrice := domain.TotalPrice(seatPrice, lines)

		query := `
			INSERT INTO tickets (reference, premiere_id, seat_id, account_id, total_price, status)
			VALUES ($1, $2, $3, $4, $5, 'paid')
			RETURNING id
		`

		err = tx.QueryRow(
			ctx,
			query,
			uuid.New(),
			order.PremiereID,
			order.SeatID,
			order.AccountID,
			totalPrice).Scan(&ticketID)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrSeatUnavailable
			}

			return err
		}

		if len(lines) > 0 {
			rows := make([][]any, 0, len(lines))
			for _, line := range lines {
				rows = append(rows, []any{
					ticketID,
					line.ItemID,
					line.Quantity,
					line.UnitPrice,
				})
			}

			_, err = tx.CopyFrom(
				ctx,
				pgx.Identifier{"ticket_concession_lines"},
				[]string{"ticket_id", "concession_item_id", "quantity", "unit_price_at_purchase"},
				pgx.CopyFromRows(rows),
			)
			if err != nil {
				return err
			}
		}

		for _, line := range lines {
			// Check and decrement in one statement; zero affected rows means
			// the remaining stock cannot cover this line.
			tag, err := tx.Exec(ctx, `
				UPDATE concession_items
				SET remaining_quantity = remaining_quantity - $2
				WHERE id = $1 AND remaining_quantity >= $2`,
				line.ItemID, line.Quantity)

			if err != nil {
				return err
			}

			if tag.RowsAffected() == 0 {
				return domain.ConcessionOutOfStockError{ItemID: line.ItemID}
			}
		}

		return nil
	})

	return ticketID, err
}

func seatUnitPrice(ctx context.Context, tx pgx.Tx, premiereID, seatID int64) (int64, error) {
	var engagementID int64

	err := tx.QueryRow(ctx,
		`SELECT engagement_id FROM premieres WHERE id = $1`,
		premiereID).Scan(&engagementID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRecordNotFound
		}

		return 0, err
	}

	var price int64

	err = tx.QueryRow(ctx,
		`SELECT price FROM engagement_seat_prices WHERE engagement_id = $1 AND seat_id = $2`,
		engagementID, seatID).Scan(&price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrSeatPricingMissing
		}

		return 0, err
	}

	return price, nil
}

// buildConcessionLines resolves current unit prices for the requested items.
// Duplicate item ids in the request are merged into one line so the line
// table's (ticket_id, item_id) key holds.
func buildConcessionLines(ctx context.Context, tx pgx.Tx, orders []domain.ConcessionOrder) ([]domain.ConcessionLine, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	quantities := make(map[int64]int32, len(orders))
	itemIDs := make([]int64, 0, len(orders))

	for _, order := range orders {
		if _, ok := quantities[order.ItemID]; !ok {
			itemIDs = append(itemIDs, order.ItemID)
		}
		quantities[order.ItemID] += order.Quantity
	}

	rows, err := tx.Query(ctx,
		`SELECT id, name, unit_price FROM concession_items WHERE id = ANY($1)`,
		itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64]domain.ConcessionItem, len(itemIDs))

	for rows.Next() {
		var item domain.ConcessionItem

		err = rows.Scan(&item.ID, &item.Name, &item.UnitPrice)
		if err != nil {
			return nil, err
		}

		items[item.ID] = item
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(items) != len(itemIDs) {
		return nil, domain.ErrRecordNotFound
	}

	lines := make([]domain.ConcessionLine, 0, len(itemIDs))

	for _, id := range itemIDs {
		item := items[id]

		lines = append(lines, domain.ConcessionLine{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  quantities[id],
			UnitPrice: item.UnitPrice,
		})
	}

	return lines, nil
}

// Cancel marks the ticket cancelled. Concession stock is deliberately not
// restored. The freed (premiere, seat) pair becomes sellable again because
// the uniqueness index ignores cancelled tickets.
func (p *PostgresTicketRepository) Cancel(ctx context.Context, ticketID, accountID int64) (*domain.TicketDetail, error) {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var ownerID int64
		var status domain.TicketStatus

		err := tx.QueryRow(ctx,
			`SELECT account_id, status FROM tickets WHERE id = $1`,
			ticketID).Scan(&ownerID, &status)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if ownerID != accountID {
			return domain.ErrForbidden
		}

		if status == domain.TicketStatusCancelled {
			return domain.ErrEditConflict
		}

		tag, err := tx.Exec(ctx, `
			UPDATE tickets
			SET status = 'cancelled', cancelled_at = NOW()
			WHERE id = $1 AND status <> 'cancelled'`,
			ticketID)

		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrEditConflict
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return p.getDetail(ctx, ticketID)
}

func (p *PostgresTicketRepository) GetByIdAndAccountId(ctx context.Context, ticketID, accountID int64) (*domain.TicketDetail, error) {
	detail, err := p.getDetail(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	// Do not reveal the existence of other accounts' tickets.
	if detail.AccountID != accountID {
		return nil, domain.ErrRecordNotFound
	}

	return detail, nil
}

func (p *PostgresTicketRepository) getDetail(ctx context.Context, ticketID int64) (*domain.TicketDetail, error) {
	query := `
		SELECT
			t.id,
			t.reference,
			t.premiere_id,
			t.seat_id,
			t.account_id,
			t.total_price,
			t.status,
			t.created_at,
			t.cancelled_at,
			f.title,
			c.name,
			r.name,
			s.name,
			p.starts_at
		FROM tickets t
		JOIN premieres p ON t.premiere_id = p.id
		JOIN engagements e ON p.engagement_id = e.id
		JOIN films f ON e.film_id = f.id
		JOIN rooms r ON e.room_id = r.id
		JOIN cinemas c ON r.cinema_id = c.id
		JOIN seats s ON t.seat_id = s.id
		WHERE t.id = $1
	`

	var detail domain.TicketDetail

	err := p.db.QueryRow(ctx, query, ticketID).Scan(
		&detail.ID,
		&detail.Reference,
		&detail.PremiereID,
		&detail.SeatID,
		&detail.AccountID,
		&detail.TotalPrice,
		&detail.Status,
		&detail.CreatedAt,
		&detail.CancelledAt,
		&detail.FilmTitle,
		&detail.CinemaName,
		&detail.RoomName,
		&detail.SeatName,
		&detail.PremiereStartsAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	lines, err := p.retrieveConcessionLines(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	detail.Lines = lines

	return &detail, nil
}

func (p *PostgresTicketRepository) retrieveConcessionLines(ctx context.Context, ticketID int64) ([]domain.ConcessionLine, error) {
	query := `
		SELECT l.concession_item_id, ci.name, l.quantity, l.unit_price_at_purchase
		FROM ticket_concession_lines l
		JOIN concession_items ci ON l.concession_item_id = ci.id
		WHERE l.ticket_id = $1
		ORDER BY l.concession_item_id
	`

	rows, err := p.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.ConcessionLine, 0)

	for rows.Next() {
		var line domain.ConcessionLine

		err = rows.Scan(
			&line.ItemID,
			&line.ItemName,
			&line.Quantity,
			&line.UnitPrice,
		)

		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (p *PostgresTicketRepository) GetSummariesByAccountId(
	ctx context.Context,
	accountID int64,
	filters domain.TicketFilters) ([]domain.TicketSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			t.id,
			t.reference,
			f.title,
			c.name,
			r.name,
			s.name,
			p.starts_at,
			t.total_price,
			t.status,
			t.created_at
		FROM tickets t
		JOIN premieres p ON t.premiere_id = p.id
		JOIN engagements e ON p.engagement_id = e.id
		JOIN films f ON e.film_id = f.id
		JOIN rooms r ON e.room_id = r.id
		JOIN cinemas c ON r.cinema_id = c.id
		JOIN seats s ON t.seat_id = s.id
		WHERE t.account_id = $1
			AND (to_tsvector('english', f.title || ' ' || c.name || ' ' || r.name)
					@@ plainto_tsquery('english', $2)
				OR $2 = '')
			AND ($3::timestamptz IS NULL OR p.starts_at >= $3)
			AND ($4::timestamptz IS NULL OR p.starts_at <= $4)
		ORDER BY t.created_at DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := p.db.Query(
		ctx,
		query,
		accountID,
		filters.Term,
		filters.From,
		filters.To,
		filters.Limit(),
		filters.Offset(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]domain.TicketSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var summary domain.TicketSummary

		err := rows.Scan(
			&totalRecords,
			&summary.TicketID,
			&summary.Reference,
			&summary.FilmTitle,
			&summary.CinemaName,
			&summary.RoomName,
			&summary.SeatName,
			&summary.PremiereStartsAt,
			&summary.TotalPrice,
			&summary.Status,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return summaries, metadata, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// isTransient reports whether the error is contention the caller may retry:
// serialization failures, deadlocks, or a lock_timeout expiry.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return true
	}

	return false
}
