package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	KindSync   = "sync"
	KindDelete = "delete"
)

// Event is the wire envelope for ledger change notifications. Sync events
// carry only the transaction ID; the worker reads the full record from
// storage. Delete events must carry the row data because the API hard-deletes
// before the worker runs.
type Event struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// Populated for delete events only.
	Title       string `json:"title,omitempty"`
	AmountCents int64  `json:"amount_cents,omitempty"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date,omitempty"`
	Type        string `json:"type,omitempty"`
}

func NewSyncEvent(id int64) Event {
	return Event{Kind: KindSync, ID: id, Timestamp: time.Now()}
}

func NewDeleteEvent(id int64, title string, amountCents int64, category, date, txType string) Event {
	return Event{
		Kind:        KindDelete,
		ID:          id,
		Timestamp:   time.Now(),
		Title:       title,
		AmountCents: amountCents,
		Category:    category,
		Date:        date,
		Type:        txType,
	}
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	if e.Kind != KindSync && e.Kind != KindDelete {
		return Event{}, fmt.Errorf("unknown event kind %q", e.Kind)
	}
	return e, nil
}
