package storage

import (
	"context"
	"path/filepath"
	"testing"

	"wallet/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "wallet.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sample(title string, cents int64) core.Transaction {
	return core.Transaction{
		Title:       title,
		Amount:      core.Money{Cents: cents},
		Category:    core.CategoryFood,
		Date:        core.NewDate(2024, 6, 15),
		Description: "test",
		Type:        core.Expense,
	}
}

func TestAppendAndListRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Append(ctx, sample("Lunch", 1250))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if stored.Date.String() != "2024-06-15" {
		t.Fatalf("date = %s", stored.Date)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0] != stored {
		t.Fatalf("round trip mismatch: %+v vs %+v", all, stored)
	}
}

func TestListAllOrderedByInsertion(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, title := range []string{"a", "b", "c"} {
		if _, err := repo.Append(ctx, sample(title, 100)); err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}
	all, _ := repo.ListAll(ctx)
	if all[0].Title != "a" || all[1].Title != "b" || all[2].Title != "c" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	stored, _ := repo.Append(ctx, sample("a", 100))

	removed, err := repo.Remove(ctx, stored.ID)
	if err != nil || !removed {
		t.Fatalf("first remove: removed=%v err=%v", removed, err)
	}
	removed, err = repo.Remove(ctx, stored.ID)
	if err != nil {
		t.Fatalf("second remove errored: %v", err)
	}
	if removed {
		t.Fatal("second remove reported a removal")
	}
}

func TestPendingSyncLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a, _ := repo.Append(ctx, sample("a", 100))
	b, _ := repo.Append(ctx, sample("b", 200))

	pending, err := repo.PendingSync(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != a.ID || pending[1].ID != b.ID {
		t.Fatalf("unexpected pending rows: %+v", pending)
	}

	if err := repo.MarkSynced(ctx, a.ID); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	if err := repo.MarkSyncError(ctx, b.ID); err != nil {
		t.Fatalf("mark error: %v", err)
	}
	pending, _ = repo.PendingSync(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("expected no pending rows, got %+v", pending)
	}
}
