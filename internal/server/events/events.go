// Package events emits the structured audit records required for every state
// transition: identifiers, amounts, and a timestamp. Off-process tooling
// (timeout reminders, reconciliation) consumes these records from the log
// stream.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matchvault/matchvault/internal/logging"
)

type Type string

const (
	TypeMatchCreated      Type = "match_created"
	TypeRevealRequested   Type = "reveal_requested"
	TypeCallbackResolved  Type = "callback_resolved"
	TypeTimeoutClaimed    Type = "timeout_claimed"
	TypeRefundWithdrawn   Type = "refund_withdrawn"
	TypeMatchForceRefund  Type = "match_force_refunded"
	TypePausedSet         Type = "paused_set"
	TypePlatformWithdrawn Type = "platform_withdrawn"
)

// Event is one audit record. Fields that do not apply to a given type are
// left at their zero values.
type Event struct {
	ID        string
	Type      Type
	MatchID   string
	RequestID int64
	Principal string
	Amount    int64
	At        time.Time
}

// New builds an event with a fresh identifier and the given timestamp.
func New(t Type, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: t, At: at}
}

// Recorder receives audit records. Implementations must not fail the calling
// transition; recording is best-effort by design.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// SlogRecorder writes events to the structured log.
type SlogRecorder struct {
	logger logging.Logger
}

func NewSlogRecorder(logger logging.Logger) *SlogRecorder {
	return &SlogRecorder{logger: logger.With("module", "events")}
}

func (r *SlogRecorder) Record(ctx context.Context, e Event) {
	r.logger.Info(ctx, string(e.Type),
		"event_id", e.ID,
		"match_id", e.MatchID,
		"request_id", e.RequestID,
		"principal", e.Principal,
		"amount", e.Amount,
		"at", e.At,
	)
}
