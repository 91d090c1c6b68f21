package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mwansa/consoleplug/internal/cash"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, direction, amount, reason, date, time_of_day, created_at
`

func scanTransaction(s scanner) (*cash.Transaction, error) {
	var tx cash.Transaction

	var directionStr string

	var reason sql.NullString

	if err := s.Scan(
		&tx.ID, &directionStr, &tx.Amount, &reason, &tx.Date, &tx.TimeOfDay,
		&tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Direction = cash.Direction(directionStr)
	tx.Reason = reason.String

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *cash.Transaction) error {
	query := `
		INSERT INTO cash_transactions (direction, amount, reason, date, time_of_day, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Direction,
		tx.Amount,
		tx.Reason,
		tx.Date,
		tx.TimeOfDay,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating cash transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, filter cash.ListFilter) ([]*cash.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM cash_transactions
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Direction != nil {
		query += fmt.Sprintf(" AND direction = $%d", argIdx)

		args = append(args, *filter.Direction)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cash transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*cash.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cash transaction: %w", err)
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash transaction rows: %w", err)
	}

	return transactions, nil
}

// GetReserved returns the single reserved-cash amount, zero when never set.
func (s *Store) GetReserved(ctx context.Context) (int64, error) {
	query := `SELECT amount FROM reserved_cash WHERE id = TRUE`

	var amount int64

	err := s.db.QueryRowContext(ctx, query).Scan(&amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}

		return 0, fmt.Errorf("getting reserved cash: %w", err)
	}

	return amount, nil
}

func (s *Store) SetReserved(ctx context.Context, amount int64) error {
	query := `
		INSERT INTO reserved_cash (id, amount, updated_at)
		VALUES (TRUE, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, amount)
	if err != nil {
		return fmt.Errorf("setting reserved cash: %w", err)
	}

	return nil
}
