// Package events publishes ledger events after their batch has committed.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Event types. They double as AMQP routing keys.
const (
	TypeSettlementRecorded = "settlement.recorded"
	TypeTransactionPosted  = "transaction.posted"
	TypeTransactionDeleted = "transaction.deleted"
)

// AllTypes lists every event type the ledger emits.
var AllTypes = []string{TypeSettlementRecorded, TypeTransactionPosted, TypeTransactionDeleted}

// Event is the envelope sent on the wire.
type Event struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SettlementRecorded is emitted once a settlement batch commits.
type SettlementRecorded struct {
	SettlementID    string   `json:"settlement_id"`
	HouseholdID     string   `json:"household_id"`
	PayerID         string   `json:"payer_id"`
	ReceiverID      string   `json:"receiver_id"`
	Amount          string   `json:"amount"`
	CoveredSplitIDs []string `json:"covered_split_ids"`
}

// TransactionPosted is emitted once a transaction (and its split, if any) commits.
type TransactionPosted struct {
	TransactionID string `json:"transaction_id"`
	MemberID      string `json:"member_id"`
	AccountID     string `json:"account_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	SplitID       string `json:"split_id,omitempty"`
}

// TransactionDeleted is emitted once a transaction is removed.
type TransactionDeleted struct {
	TransactionID string `json:"transaction_id"`
	MemberID      string `json:"member_id"`
}

// New wraps payload in an envelope of the given type.
func New(eventType string, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Timestamp: time.Now().UTC(), Payload: body}, nil
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	// Err, when set, is returned from every Publish call.
	Err error
}

// Publish records the event.
func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, event)
	return nil
}

// Close is a no-op.
func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(eventType string) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
