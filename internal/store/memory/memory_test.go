package memory

import (
	"context"
	"testing"

	"wallet/internal/core"
)

func tx(title string) core.Transaction {
	return core.Transaction{
		Title:    title,
		Amount:   core.Money{Cents: 100},
		Category: core.CategoryFood,
		Date:     core.NewDate(2024, 6, 1),
		Type:     core.Expense,
	}
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	a, err := s.Append(ctx, tx("a"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	b, _ := s.Append(ctx, tx("b"))

	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Fatalf("ids must be unique and non-zero: %d, %d", a.ID, b.ID)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.Append(ctx, tx(title)); err != nil {
			t.Fatalf("append %s: %v", title, err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if all[i].Title != w {
			t.Fatalf("position %d = %s, want %s", i, all[i].Title, w)
		}
	}
}

func TestListAllReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.Append(ctx, tx("a"))

	all, _ := s.ListAll(ctx)
	all[0].Title = "mutated"

	again, _ := s.ListAll(ctx)
	if again[0].Title != "a" {
		t.Fatal("callers must not be able to mutate the store through ListAll")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	stored, _ := s.Append(ctx, tx("a"))

	removed, err := s.Remove(ctx, stored.ID)
	if err != nil || !removed {
		t.Fatalf("first remove: removed=%v err=%v", removed, err)
	}

	// Removing the same (now missing) ID twice more: no error either time.
	for i := 0; i < 2; i++ {
		removed, err = s.Remove(ctx, stored.ID)
		if err != nil {
			t.Fatalf("remove %d returned error: %v", i, err)
		}
		if removed {
			t.Fatalf("remove %d reported a removal for a missing id", i)
		}
	}
}

func TestRemoveKeepsOrderOfRemaining(t *testing.T) {
	s := New()
	ctx := context.Background()
	var ids []int64
	for _, title := range []string{"a", "b", "c"} {
		stored, _ := s.Append(ctx, tx(title))
		ids = append(ids, stored.ID)
	}
	s.Remove(ctx, ids[1])

	all, _ := s.ListAll(ctx)
	if len(all) != 2 || all[0].Title != "a" || all[1].Title != "c" {
		t.Fatalf("unexpected order after remove: %+v", all)
	}
}

func TestIDsNotReusedAfterRemove(t *testing.T) {
	s := New()
	ctx := context.Background()
	first, _ := s.Append(ctx, tx("a"))
	s.Remove(ctx, first.ID)
	second, _ := s.Append(ctx, tx("b"))
	if second.ID == first.ID {
		t.Fatalf("id %d was reused", first.ID)
	}
}
