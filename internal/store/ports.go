// Package store defines the ports the ledger is read and mutated through.
// Implementations live in store/memory (in-process) and storage (SQLite).
package store

import (
	"context"

	"wallet/internal/core"
)

type (
	// TransactionWriter appends a validated transaction and returns the
	// stored record with its assigned ID.
	TransactionWriter interface {
		Append(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	}

	// TransactionRemover deletes by ID. Removing a missing ID is a no-op,
	// reported through the bool, never an error.
	TransactionRemover interface {
		Remove(ctx context.Context, id int64) (bool, error)
	}

	// TransactionLister returns every live transaction in insertion order.
	// The aggregation and distribution views rely on that order being
	// preserved end-to-end.
	TransactionLister interface {
		ListAll(ctx context.Context) ([]core.Transaction, error)
	}

	// Ledger bundles the full store contract.
	Ledger interface {
		TransactionWriter
		TransactionRemover
		TransactionLister
	}
)
