// Package adapters bridges the service layer onto the storage ports the HTTP
// handlers consume.
package adapters

import (
	"context"

	"wallet/internal/core"
	"wallet/internal/services"
	"wallet/internal/store"
)

// SQLiteAdapter exposes TransactionService as a store.Ledger so the HTTP
// handlers stay backend-agnostic. Writes go through the service, which also
// publishes export events.
type SQLiteAdapter struct {
	service *services.TransactionService
}

var _ store.Ledger = (*SQLiteAdapter)(nil)

func NewSQLiteAdapter(service *services.TransactionService) *SQLiteAdapter {
	return &SQLiteAdapter{service: service}
}

func (a *SQLiteAdapter) Append(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	return a.service.Append(ctx, tx)
}

func (a *SQLiteAdapter) Remove(ctx context.Context, id int64) (bool, error) {
	return a.service.Remove(ctx, id)
}

func (a *SQLiteAdapter) ListAll(ctx context.Context) ([]core.Transaction, error) {
	return a.service.ListAll(ctx)
}
