// Package sheets defines the outbound port for the spreadsheet copy of the
// ledger that the sync worker maintains.
package sheets

import (
	"context"

	"wallet/internal/core"
)

type (
	// Exporter mirrors ledger mutations into an external spreadsheet.
	// Append and Delete are keyed by the store-assigned transaction ID so
	// the worker can reconcile rows after the fact.
	Exporter interface {
		Append(ctx context.Context, tx core.Transaction) error
		Delete(ctx context.Context, id int64) error
	}
)
