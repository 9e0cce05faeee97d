package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wallet/internal/core"
	"wallet/internal/store"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable implementation of the store ports.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

var _ store.Ledger = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, queries: New(db)}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements store.TransactionWriter. The row id becomes the
// transaction ID; AUTOINCREMENT guarantees ids are never reused after a
// delete.
func (r *SQLiteRepository) Append(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	row, err := r.queries.CreateTransaction(ctx, CreateTransactionParams{
		Title:       tx.Title,
		AmountCents: tx.Amount.Cents,
		Category:    string(tx.Category),
		Date:        tx.Date.String(),
		Description: tx.Description,
		Type:        string(tx.Type),
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", row.ID,
		"title", row.Title,
		"amount_cents", row.AmountCents,
		"category", row.Category,
		"type", row.Type)

	return rowToTransaction(row)
}

// Remove implements store.TransactionRemover. Deleting a missing id is a
// no-op, reported through the bool.
func (r *SQLiteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	if removed {
		slog.InfoContext(ctx, "Transaction deleted", "id", id)
	}
	return removed, nil
}

// ListAll implements store.TransactionLister, returning rows in id order so
// insertion order survives persistence.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := rowToTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.ID, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// GetTransaction fetches a single transaction for the sync worker.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return rowToTransaction(row)
}

// PendingSync lists transactions not yet exported, oldest first.
func (r *SQLiteRepository) PendingSync(ctx context.Context, limit int) ([]PendingRow, error) {
	rows, err := r.queries.ListPendingSync(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list pending sync: %w", err)
	}
	return rows, nil
}

// MarkSynced records a successful export.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if err := r.queries.MarkSynced(ctx, id); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	slog.InfoContext(ctx, "Transaction marked as synced", "id", id)
	return nil
}

// MarkSyncError records a failed export; the pending scan will not retry it.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if err := r.queries.MarkSyncError(ctx, id); err != nil {
		return fmt.Errorf("mark sync error: %w", err)
	}
	slog.WarnContext(ctx, "Transaction marked with sync error", "id", id)
	return nil
}

func rowToTransaction(row Row) (core.Transaction, error) {
	date, err := core.ParseDate(row.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", row.Date, err)
	}
	return core.Transaction{
		ID:          row.ID,
		Title:       row.Title,
		Amount:      core.Money{Cents: row.AmountCents},
		Category:    core.Category(row.Category),
		Date:        date,
		Description: row.Description,
		Type:        core.TransactionType(row.Type),
	}, nil
}
