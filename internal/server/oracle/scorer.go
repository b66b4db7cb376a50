package oracle

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/matchvault/matchvault/internal/cryptox"
	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/server/profiles"
)

// LocalScorer is the development scoring capability. It derives a plaintext
// score from the two profiles' attribute handles, seals it under a symmetric
// key shared with the oracle simulator, stores the ciphertext in the blob
// store, and returns the object key as the score handle. The sealed blob has
// a fixed plaintext width (8 bytes), so every handle points at a ciphertext
// of the same semantic shape.
type LocalScorer struct {
	blobs blobstore.Store
	key   []byte
}

func NewLocalScorer(blobs blobstore.Store, key []byte) *LocalScorer {
	return &LocalScorer{blobs: blobs, key: key}
}

func (s *LocalScorer) Compute(ctx context.Context, a, b *profiles.Profile) (string, error) {

	score := deriveScore(a, b)

	plaintext := make([]byte, 8)
	binary.BigEndian.PutUint64(plaintext, uint64(score))

	sealed, err := cryptox.Seal(plaintext, s.key)
	if err != nil {
		return "", fmt.Errorf("error sealing score: %w", err)
	}

	d := time.Now()
	handle := fmt.Sprintf("scores/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())

	if err := s.blobs.Put(ctx, handle, sealed); err != nil {
		return "", fmt.Errorf("error storing score blob: %w", err)
	}

	return handle, nil
}

// deriveScore maps the unordered handle pair onto 0..100. Symmetric in the
// two profiles, like the identifier derivation.
func deriveScore(a, b *profiles.Profile) int64 {
	lo := a.CategoryHandle + a.SubAHandle + a.SubBHandle
	hi := b.CategoryHandle + b.SubAHandle + b.SubBHandle
	if lo > hi {
		lo, hi = hi, lo
	}
	h, _ := blake2b.New256(nil)
	h.Write([]byte(lo))
	h.Write([]byte{0})
	h.Write([]byte(hi))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) % 101)
}
