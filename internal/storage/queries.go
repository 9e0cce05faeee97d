package storage

import (
	"context"
	"database/sql"
	"time"
)

// Queries wraps the SQL statements for the transactions table. Methods scan
// into Row, the raw storage shape; the repository converts to core types.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Row is a transactions table row.
type Row struct {
	ID          int64
	Title       string
	AmountCents int64
	Category    string
	Date        string
	Description string
	Type        string
	SyncStatus  string
	CreatedAt   time.Time
}

// PendingRow is the minimal shape the sync worker needs to queue a row.
type PendingRow struct {
	ID        int64
	CreatedAt time.Time
}

type CreateTransactionParams struct {
	Title       string
	AmountCents int64
	Category    string
	Date        string
	Description string
	Type        string
}

const createTransaction = `
INSERT INTO transactions (title, amount_cents, category, tx_date, description, tx_type)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, title, amount_cents, category, tx_date, description, tx_type, sync_status, created_at
`

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Row, error) {
	var r Row
	err := q.db.QueryRowContext(ctx, createTransaction,
		arg.Title, arg.AmountCents, arg.Category, arg.Date, arg.Description, arg.Type,
	).Scan(&r.ID, &r.Title, &r.AmountCents, &r.Category, &r.Date, &r.Description, &r.Type, &r.SyncStatus, &r.CreatedAt)
	return r, err
}

const getTransaction = `
SELECT id, title, amount_cents, category, tx_date, description, tx_type, sync_status, created_at
FROM transactions
WHERE id = ?
`

func (q *Queries) GetTransaction(ctx context.Context, id int64) (Row, error) {
	var r Row
	err := q.db.QueryRowContext(ctx, getTransaction, id).
		Scan(&r.ID, &r.Title, &r.AmountCents, &r.Category, &r.Date, &r.Description, &r.Type, &r.SyncStatus, &r.CreatedAt)
	return r, err
}

const listTransactions = `
SELECT id, title, amount_cents, category, tx_date, description, tx_type, sync_status, created_at
FROM transactions
ORDER BY id
`

// ListTransactions returns every row in insertion (id) order.
func (q *Queries) ListTransactions(ctx context.Context) ([]Row, error) {
	rows, err := q.db.QueryContext(ctx, listTransactions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Title, &r.AmountCents, &r.Category, &r.Date, &r.Description, &r.Type, &r.SyncStatus, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const deleteTransaction = `
DELETE FROM transactions
WHERE id = ?
`

// DeleteTransaction hard-deletes a row and reports whether one existed.
func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, deleteTransaction, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const listPendingSync = `
SELECT id, created_at
FROM transactions
WHERE sync_status = 'pending'
ORDER BY id
LIMIT ?
`

func (q *Queries) ListPendingSync(ctx context.Context, limit int64) ([]PendingRow, error) {
	rows, err := q.db.QueryContext(ctx, listPendingSync, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingRow
	for rows.Next() {
		var r PendingRow
		if err := rows.Scan(&r.ID, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const setSyncStatus = `
UPDATE transactions
SET sync_status = ?
WHERE id = ?
`

func (q *Queries) MarkSynced(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, setSyncStatus, "synced", id)
	return err
}

func (q *Queries) MarkSyncError(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, setSyncStatus, "error", id)
	return err
}
