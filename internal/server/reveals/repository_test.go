package reveals

import (
	"context"
	"testing"
	"time"

	"github.com/matchvault/matchvault/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := repo.Create(ctx, &Request{
			Requester: "a",
			MatchID:   "m1",
			Status:    StatusProcessing,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestInMemoryRepository_ReverseIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	id, err := repo.Create(ctx, &Request{Requester: "a", MatchID: "match-42", Status: StatusProcessing})
	require.NoError(t, err)

	matchID, err := repo.MatchIDFor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "match-42", matchID)

	_, err = repo.MatchIDFor(ctx, id+100)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestInMemoryRepository_Complete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	id, err := repo.Create(ctx, &Request{Requester: "a", MatchID: "m", Status: StatusProcessing})
	require.NoError(t, err)

	require.NoError(t, repo.Complete(ctx, id))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestInMemoryRepository_SnapshotRestore_KeepsCounter(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	id1, err := repo.Create(ctx, &Request{MatchID: "m1", Status: StatusProcessing})
	require.NoError(t, err)

	snap := repo.Snapshot()

	_, err = repo.Create(ctx, &Request{MatchID: "m2", Status: StatusProcessing})
	require.NoError(t, err)

	repo.RestoreFrom(snap)

	// the rolled-back id is free to be reallocated; the committed one is not
	id3, err := repo.Create(ctx, &Request{MatchID: "m3", Status: StatusProcessing})
	require.NoError(t, err)
	assert.Greater(t, id3, id1)
}
