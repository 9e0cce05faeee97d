// Package worker mirrors committed ledger mutations into the spreadsheet
// export. It is driven by AMQP events, with a periodic pending scan as the
// backup path for lost messages.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"wallet/internal/amqp"
	"wallet/internal/sheets"
	"wallet/internal/storage"
)

type SyncWorker struct {
	storage   *storage.SQLiteRepository
	exporter  sheets.Exporter
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, exporter sheets.Exporter, batchSize int) *SyncWorker {
	return &SyncWorker{storage: storage, exporter: exporter, batchSize: batchSize}
}

// HandleEvent processes one ledger event from the queue.
func (w *SyncWorker) HandleEvent(ctx context.Context, e amqp.Event) error {
	switch e.Kind {
	case amqp.KindSync:
		return w.exportTransaction(ctx, e.ID)
	case amqp.KindDelete:
		if err := w.exporter.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("delete exported row %d: %w", e.ID, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
}

func (w *SyncWorker) exportTransaction(ctx context.Context, id int64) error {
	tx, err := w.storage.GetTransaction(ctx, id)
	if err != nil {
		// The row may have been deleted before the event arrived; a delete
		// event for it is on its way.
		slog.WarnContext(ctx, "Transaction no longer in storage, skipping export",
			"id", id, "error", err)
		return nil
	}

	if err := w.exporter.Append(ctx, tx); err != nil {
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", id, "error", markErr)
		}
		return fmt.Errorf("export transaction %d: %w", id, err)
	}

	if err := w.storage.MarkSynced(ctx, id); err != nil {
		return fmt.Errorf("mark transaction %d synced: %w", id, err)
	}
	return nil
}

// ProcessPending exports transactions the event path missed, oldest first,
// up to the configured batch size.
func (w *SyncWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.storage.PendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending transactions: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending transactions", "count", len(pending))

	for _, p := range pending {
		if err := w.exportTransaction(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to export pending transaction",
				"id", p.ID, "error", err)
		}
	}
	return nil
}
