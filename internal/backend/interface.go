// Package backend selects and constructs the ledger storage implementation.
package backend

import (
	"context"

	"wallet/internal/store"
)

// CleanupFunc releases the resources a backend holds.
type CleanupFunc func() error

// Result pairs a constructed ledger with its cleanup function.
type Result struct {
	Ledger  store.Ledger
	Cleanup CleanupFunc
}

// Factory creates ledgers based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
