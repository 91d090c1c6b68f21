package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwansa/consoleplug/internal/sale"
	"github.com/mwansa/consoleplug/internal/stock"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectSaleColumns = `
	id, stock_id, product_name, category, platform, serial_number, quantity,
	buying_price, selling_price, total_amount, profit, payment_method, date,
	time_of_day, notes, created_at, updated_at, deleted_at
`

func scanSale(s scanner) (*sale.Sale, error) {
	var sold sale.Sale

	var paymentStr string

	var serialNumber, notes sql.NullString

	if err := s.Scan(
		&sold.ID, &sold.StockID, &sold.ProductName, &sold.Category, &sold.Platform,
		&serialNumber, &sold.Quantity, &sold.BuyingPrice, &sold.SellingPrice,
		&sold.TotalAmount, &sold.Profit, &paymentStr, &sold.Date, &sold.TimeOfDay,
		&notes, &sold.CreatedAt, &sold.UpdatedAt, &sold.DeletedAt,
	); err != nil {
		return nil, err
	}

	sold.Payment = sale.PaymentMethod(paymentStr)
	sold.SerialNumber = serialNumber.String
	sold.Notes = notes.String

	return &sold, nil
}

func (s *Store) GetSale(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales
		WHERE id = $1 AND deleted_at IS NULL`

	sold, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	return sold, nil
}

func (s *Store) ListSales(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + `
		FROM sales
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.StockID != nil {
		query += fmt.Sprintf(" AND stock_id = $%d", argIdx)

		args = append(args, *filter.StockID)
		argIdx++
	}

	if filter.Payment != nil {
		query += fmt.Sprintf(" AND payment_method = $%d", argIdx)

		args = append(args, *filter.Payment)
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
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		sold, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sold)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, nil
}

type recordTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRecord(ctx context.Context) (sale.RecordTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning record tx: %w", err)
	}

	return &recordTx{tx: tx}, nil
}

func (t *recordTx) Commit() error   { return t.tx.Commit() }
func (t *recordTx) Rollback() error { return t.tx.Rollback() }

// LockItem loads the stock row with a row lock so concurrent sales of the
// same item serialize on the quantity check.
func (t *recordTx) LockItem(ctx context.Context, stockID uuid.UUID) (*stock.Item, error) {
	query := `
		SELECT id, category, subcategory, platform, model, product_name,
			serial_number, condition, quantity, buying_price, selling_price,
			date_added, low_stock_threshold
		FROM stock_items
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	var item stock.Item

	var categoryStr, conditionStr string

	var subcategory, serialNumber sql.NullString

	err := t.tx.QueryRowContext(ctx, query, stockID).Scan(
		&item.ID, &categoryStr, &subcategory, &item.Platform, &item.Model,
		&item.ProductName, &serialNumber, &conditionStr, &item.Quantity,
		&item.BuyingPrice, &item.SellingPrice, &item.DateAdded,
		&item.LowStockThreshold,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, stock.ErrNotFound
		}

		return nil, fmt.Errorf("locking stock item: %w", err)
	}

	item.Category = stock.Category(categoryStr)
	item.Condition = stock.Condition(conditionStr)
	item.Subcategory = subcategory.String
	item.SerialNumber = serialNumber.String

	return &item, nil
}

func (t *recordTx) InsertSale(ctx context.Context, sold *sale.Sale) error {
	query := `
		INSERT INTO sales (
			stock_id, product_name, category, platform, serial_number, quantity,
			buying_price, selling_price, total_amount, profit, payment_method,
			date, time_of_day, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		sold.StockID,
		sold.ProductName,
		sold.Category,
		sold.Platform,
		sold.SerialNumber,
		sold.Quantity,
		sold.BuyingPrice,
		sold.SellingPrice,
		sold.TotalAmount,
		sold.Profit,
		sold.Payment,
		sold.Date,
		sold.TimeOfDay,
		sold.Notes,
	).Scan(&sold.ID, &sold.CreatedAt, &sold.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting sale: %w", err)
	}

	return nil
}

func (t *recordTx) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sales
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := t.tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking sale deleted: %w", err)
	}

	return nil
}

func (t *recordTx) AdjustStock(ctx context.Context, stockID uuid.UUID, delta int) error {
	query := `
		UPDATE stock_items
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL AND quantity + $1 >= 0
	`

	res, err := t.tx.ExecContext(ctx, query, delta, stockID)
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}

	if affected == 0 {
		return stock.ErrInsufficientStock
	}

	return nil
}
