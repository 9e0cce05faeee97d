// Package services orchestrates ledger writes across SQLite and the export
// event bus.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wallet/internal/amqp"
	"wallet/internal/core"
	"wallet/internal/storage"
)

// TransactionService persists ledger mutations and emits export events.
// The SQLite write is the source of truth; a failed publish never fails the
// request, it only delays the spreadsheet copy until the pending scan.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{storage: storage, amqpClient: amqpClient}
}

// Append stores a validated transaction and publishes a sync event.
func (s *TransactionService) Append(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	stored, err := s.storage.Append(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publish(ctx, amqp.NewSyncEvent(stored.ID)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync event",
			"id", stored.ID, "error", err)
	}
	return stored, nil
}

// Remove hard-deletes a transaction. The delete event carries the row data
// because nothing remains to look up afterwards. Removing a missing id stays
// a quiet no-op.
func (s *TransactionService) Remove(ctx context.Context, id int64) (bool, error) {
	tx, err := s.storage.GetTransaction(ctx, id)
	known := err == nil

	removed, err := s.storage.Remove(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	if !removed {
		return false, nil
	}

	if known {
		event := amqp.NewDeleteEvent(tx.ID, tx.Title, tx.Amount.Cents,
			string(tx.Category), tx.Date.String(), string(tx.Type))
		if err := s.publish(ctx, event); err != nil {
			slog.ErrorContext(ctx, "Failed to publish delete event",
				"id", id, "error", err)
		}
	}
	return true, nil
}

// ListAll exposes the underlying lister so the adapter can satisfy the full
// store contract through one object.
func (s *TransactionService) ListAll(ctx context.Context) ([]core.Transaction, error) {
	return s.storage.ListAll(ctx)
}

func (s *TransactionService) publish(ctx context.Context, e amqp.Event) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not configured, skipping event", "kind", e.Kind)
		return nil
	}
	return s.amqpClient.Publish(ctx, e)
}

// Close releases storage and AMQP resources.
func (s *TransactionService) Close() error {
	var errs []error
	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}
	return errors.Join(errs...)
}
