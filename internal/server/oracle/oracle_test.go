package oracle

import (
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matchvault/matchvault/internal/cryptox"
	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Verifier(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	v := NewEd25519Verifier(map[uint64]ed25519.PublicKey{1: pub})

	proof := ed25519.Sign(priv, ProofPayload(42, 87, 1))

	assert.True(t, v.Verify(42, 87, 1, proof))

	// tampered value
	assert.False(t, v.Verify(42, 88, 1, proof))
	// wrong request
	assert.False(t, v.Verify(43, 87, 1, proof))
	// unknown generation is stale
	assert.False(t, v.Verify(42, 87, 2, proof))
	// malformed proof
	assert.False(t, v.Verify(42, 87, 1, []byte("short")))
}

func TestHTTPSubmitter_PostsSubmission(t *testing.T) {
	var got Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPSubmitter(srv.URL)
	err := s.Submit(context.Background(), Submission{
		RequestID:     7,
		ScoreHandle:   "scores/x",
		KeyGeneration: 3,
		CallbackURL:   "http://cb",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.RequestID)
	assert.Equal(t, "scores/x", got.ScoreHandle)
	assert.Equal(t, uint64(3), got.KeyGeneration)
}

func TestHTTPSubmitter_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPSubmitter(srv.URL)
	err := s.Submit(context.Background(), Submission{RequestID: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPSubmitter_DoesNotRetryRejection(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewHTTPSubmitter(srv.URL)
	err := s.Submit(context.Background(), Submission{RequestID: 1})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLocalScorer_SymmetricAndSealed(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	key := cryptox.DeriveKey([]byte("dev"), []byte("salt"))
	scorer := NewLocalScorer(blobs, key)

	a := &profiles.Profile{Principal: "a", CategoryHandle: "h1", SubAHandle: "h2", SubBHandle: "h3"}
	b := &profiles.Profile{Principal: "b", CategoryHandle: "h4", SubAHandle: "h5", SubBHandle: "h6"}

	h1, err := scorer.Compute(ctx, a, b)
	require.NoError(t, err)
	h2, err := scorer.Compute(ctx, b, a)
	require.NoError(t, err)

	open := func(handle string) int64 {
		sealed, err := blobs.Get(ctx, handle)
		require.NoError(t, err)
		plain, err := cryptox.Open(sealed, key)
		require.NoError(t, err)
		require.Len(t, plain, 8)
		return int64(binary.BigEndian.Uint64(plain))
	}

	s1, s2 := open(h1), open(h2)
	assert.Equal(t, s1, s2, "score must not depend on argument order")
	assert.GreaterOrEqual(t, s1, int64(0))
	assert.LessOrEqual(t, s1, int64(100))

	// blinding: same inputs, distinct handles and ciphertexts
	assert.NotEqual(t, h1, h2)
}
