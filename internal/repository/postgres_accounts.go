package repository

import (
	"context"
	"errors"

	"github.com/filmtix/ticketing/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Accounts are owned by the identity service; this repository only reads the
// contact fields needed for purchase notifications.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

func (p *PostgresAccountRepository) GetById(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT id, first_name, last_name, email FROM accounts WHERE id = $1`

	var account domain.Account

	err := p.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &account, nil
}
