// Package matches implements the match store: records pairing two principals
// with an opaque encrypted score handle, a status, a deadline, and the fee
// collected at creation.
package matches

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Status is the lifecycle state of a match.
//
// Legal transitions:
//
//	Pending → Processing → Completed
//	Pending|Processing → TimedOut   (timeout claim)
//	any non-Completed  → Refunded   (owner escape hatch)
//
// Completed, TimedOut, and Refunded are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusTimedOut   Status = "timed_out"
	StatusRefunded   Status = "refunded"
)

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusTimedOut || s == StatusRefunded
}

// Match is a paired compatibility request between two principals. Requester
// is the principal that paid the fee; refunds always go to the requester no
// matter which participant triggers the timeout path.
type Match struct {
	ID              string
	Requester       string
	Partner         string
	ScoreHandle     string
	Revealed        bool
	RevealedScore   int64
	FeePaid         int64
	Status          Status
	CreatedAt       time.Time
	TimeoutDeadline time.Time
}

// HasParticipant reports whether p is one of the two match principals.
func (m *Match) HasParticipant(p string) bool {
	return p == m.Requester || p == m.Partner
}

// DeriveID computes the order-independent match identifier for a pair of
// principals: blake2b-256 over the lexicographically sorted pair, so that
// DeriveID(a, b) == DeriveID(b, a).
func DeriveID(a, b string) string {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	h, _ := blake2b.New256(nil)
	h.Write([]byte(lo))
	h.Write([]byte{0})
	h.Write([]byte(hi))
	return hex.EncodeToString(h.Sum(nil))
}
