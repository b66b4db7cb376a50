// Package reveals tracks outstanding decryption requests: the records linking
// an oracle-assigned request identifier back to a match. Identifiers are
// allocated from a monotonic counter and never reused.
package reveals

import "time"

// Status is the lifecycle state of a decryption request. The only transition
// is Processing → Completed, performed by the oracle callback. A request
// whose match times out keeps its last status; the match status is
// authoritative for refund eligibility.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// Request is the tracked record of a reveal delegated to the oracle.
// FeePaid is copied from the match at creation so refund arithmetic stays
// independent of later match mutation. KeyGeneration tags the oracle key
// material in effect when the ciphertext was handed out; proofs produced
// under any other generation are stale.
type Request struct {
	ID              int64
	Requester       string
	MatchID         string
	FeePaid         int64
	KeyGeneration   uint64
	Status          Status
	CreatedAt       time.Time
	TimeoutDeadline time.Time
}
