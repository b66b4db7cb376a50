// Package oracle defines the external capability boundary: the scoring
// computation, the asynchronous decryption service, and the proof verifier.
// The core stores and forwards opaque handles; it never inspects them.
package oracle

import (
	"context"

	"github.com/matchvault/matchvault/internal/server/profiles"
)

// Scorer computes an encrypted compatibility score from two profiles and
// returns the handle of the resulting ciphertext. The output is always a
// handle of the same semantic width; internally the computation may use
// non-deterministic blinding.
type Scorer interface {
	Compute(ctx context.Context, a, b *profiles.Profile) (string, error)
}

// Submission describes a decryption job handed to the oracle.
type Submission struct {
	RequestID     int64  `json:"request_id"`
	ScoreHandle   string `json:"score_handle"`
	KeyGeneration uint64 `json:"key_generation"`
	CallbackURL   string `json:"callback_url"`
}

// Submitter forwards a submission to the oracle. Fire-and-forget from the
// caller's perspective: there is no synchronous result and no timing
// assumption; the oracle answers (or not) through the callback endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// Verifier checks a decryption proof. Must be invoked before any state
// mutation in the callback path.
type Verifier interface {
	Verify(requestID int64, value int64, generation uint64, proof []byte) bool
}
