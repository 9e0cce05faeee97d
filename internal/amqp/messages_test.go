package amqp

import "testing"

func TestEventRoundTrip(t *testing.T) {
	e := NewDeleteEvent(42, "Lunch", 1250, "Food", "2024-06-01", "EXPENSE")
	body, err := e.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := UnmarshalEvent(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != KindDelete || back.ID != 42 || back.AmountCents != 1250 || back.Date != "2024-06-01" {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	if _, err := UnmarshalEvent([]byte(`{"kind":"upsert","id":1}`)); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if _, err := UnmarshalEvent([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}
