package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// HistoryRepo is the single key-value slot holding the serialized quiz
// history collection. The in-memory collection is the source of truth;
// the slot is rewritten whole after every mutation.
type HistoryRepo interface {
	// Load returns the stored payload. ok is false when the slot is empty.
	Load(ctx context.Context) (payload string, ok bool, err error)

	// Save overwrites the slot with the given payload.
	Save(ctx context.Context, payload string) error

	// Clear deletes the slot.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
// RequestID is a correlation ID assigned by the caller, one per API call.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM diagnostics events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events in reverse chronological order.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
