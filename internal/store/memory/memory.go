// Package memory implements the store ports with an in-process slice. It is
// the default backend and the reference implementation the HTTP tests run
// against.
package memory

import (
	"context"
	"sync"

	"wallet/internal/core"
	"wallet/internal/store"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

var _ store.Ledger = (*Store)(nil)

func New() *Store {
	return &Store{nextID: 1}
}

// Append stores the transaction and assigns the next ID. Mutations are
// serialized by the mutex, which also gives readers an atomic snapshot.
func (s *Store) Append(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.items = append(s.items, tx)
	return tx, nil
}

// Remove deletes by ID, preserving the order of the remaining items.
// A missing ID is an idempotent no-op.
func (s *Store) Remove(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.items {
		if tx.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListAll returns a copy of the live transactions in insertion order.
func (s *Store) ListAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Len reports the number of live transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
