package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

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

const selectItemColumns = `
	id, category, subcategory, platform, model, product_name, serial_number,
	condition, quantity, buying_price, selling_price, date_added, supplier,
	notes, low_stock_threshold, created_at, updated_at, deleted_at
`

// scanItem reads a stock row in selectItemColumns order.
func scanItem(s scanner) (*stock.Item, error) {
	var item stock.Item

	var categoryStr, conditionStr string

	var subcategory, serialNumber, supplier, notes sql.NullString

	if err := s.Scan(
		&item.ID, &categoryStr, &subcategory, &item.Platform, &item.Model,
		&item.ProductName, &serialNumber, &conditionStr, &item.Quantity,
		&item.BuyingPrice, &item.SellingPrice, &item.DateAdded, &supplier,
		&notes, &item.LowStockThreshold,
		&item.CreatedAt, &item.UpdatedAt, &item.DeletedAt,
	); err != nil {
		return nil, err
	}

	item.Category = stock.Category(categoryStr)
	item.Condition = stock.Condition(conditionStr)
	item.Subcategory = subcategory.String
	item.SerialNumber = serialNumber.String
	item.Supplier = supplier.String
	item.Notes = notes.String

	return &item, nil
}

const insertItemQuery = `
	INSERT INTO stock_items (
		category, subcategory, platform, model, product_name, serial_number,
		condition, quantity, buying_price, selling_price, date_added,
		supplier, notes, low_stock_threshold, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

// insertItemArgs matches the insertItemQuery placeholders.
func insertItemArgs(item *stock.Item) []any {
	return []any{
		item.Category,
		item.Subcategory,
		item.Platform,
		item.Model,
		item.ProductName,
		item.SerialNumber,
		item.Condition,
		item.Quantity,
		item.BuyingPrice,
		item.SellingPrice,
		item.DateAdded,
		item.Supplier,
		item.Notes,
		item.LowStockThreshold,
	}
}

func (s *Store) CreateItem(ctx context.Context, item *stock.Item) error {
	err := s.db.QueryRowContext(ctx, insertItemQuery, insertItemArgs(item)...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating stock item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*stock.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM stock_items
		WHERE id = $1 AND deleted_at IS NULL`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, stock.ErrNotFound
		}

		return nil, fmt.Errorf("getting stock item: %w", err)
	}

	return item, nil
}

func (s *Store) ListItems(ctx context.Context, filter stock.ListFilter) ([]*stock.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM stock_items
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.Platform != nil {
		query += fmt.Sprintf(" AND platform = $%d", argIdx)

		args = append(args, *filter.Platform)
		argIdx++
	}

	if filter.LowStockOnly {
		query += " AND quantity <= low_stock_threshold"
	}

	if filter.AddedAfter != nil {
		query += fmt.Sprintf(" AND date_added >= $%d", argIdx)

		args = append(args, *filter.AddedAfter)
		argIdx++
	}

	if filter.AddedBefore != nil {
		query += fmt.Sprintf(" AND date_added <= $%d", argIdx)

		args = append(args, *filter.AddedBefore)
		argIdx++
	}

	query += " ORDER BY date_added DESC, product_name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stock items: %w", err)
	}
	defer rows.Close()

	var items []*stock.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stock item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock rows: %w", err)
	}

	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, item *stock.Item) error {
	query := `
		UPDATE stock_items
		SET category = $1, subcategory = $2, platform = $3, model = $4,
			product_name = $5, serial_number = $6, condition = $7, quantity = $8,
			buying_price = $9, selling_price = $10, date_added = $11,
			supplier = $12, notes = $13, low_stock_threshold = $14, updated_at = NOW()
		WHERE id = $15 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		item.Category,
		item.Subcategory,
		item.Platform,
		item.Model,
		item.ProductName,
		item.SerialNumber,
		item.Condition,
		item.Quantity,
		item.BuyingPrice,
		item.SellingPrice,
		item.DateAdded,
		item.Supplier,
		item.Notes,
		item.LowStockThreshold,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating stock item: %w", err)
	}

	return nil
}

// AdjustQuantity applies delta to the item's quantity. The guard in the WHERE
// clause keeps the quantity from going below zero without a separate read.
func (s *Store) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*stock.Item, error) {
	query := `
		UPDATE stock_items
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL AND quantity + $1 >= 0
		RETURNING ` + selectItemColumns

	item, err := scanItem(s.db.QueryRowContext(ctx, query, delta, id))
	if err != nil {
		if err == sql.ErrNoRows {
			// Either the item is gone or the adjustment would go negative.
			if _, getErr := s.GetItem(ctx, id); getErr != nil {
				return nil, getErr
			}

			return nil, stock.ErrInsufficientStock
		}

		return nil, fmt.Errorf("adjusting stock quantity: %w", err)
	}

	return item, nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE stock_items
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting stock item: %w", err)
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (stock.ImportTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	return &importTx{tx: tx}, nil
}

func (t *importTx) Commit() error { return t.tx.Commit() }

func (t *importTx) Rollback() error { return t.tx.Rollback() }

func (t *importTx) InsertItem(ctx context.Context, item *stock.Item) error {
	err := t.tx.QueryRowContext(ctx, insertItemQuery, insertItemArgs(item)...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting stock item: %w", err)
	}

	return nil
}
