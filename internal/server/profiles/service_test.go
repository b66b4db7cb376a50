package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Submit_StoresBlobsAndHandles(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	svc := NewService(NewInMemoryRepository(), blobs, nil)

	p, err := svc.Submit(ctx, "alice", []byte("ct-cat"), []byte("ct-a"), []byte("ct-b"))
	require.NoError(t, err)

	require.NotEmpty(t, p.CategoryHandle)
	require.NotEmpty(t, p.SubAHandle)
	require.NotEmpty(t, p.SubBHandle)
	assert.NotEqual(t, p.CategoryHandle, p.SubAHandle)

	data, err := blobs.Get(ctx, p.CategoryHandle)
	require.NoError(t, err)
	assert.Equal(t, []byte("ct-cat"), data)
}

func TestService_Submit_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc := NewService(NewInMemoryRepository(), blobstore.NewMemoryStore(), func() time.Time { return current })

	first, err := svc.Submit(ctx, "alice", []byte("1"), []byte("2"), []byte("3"))
	require.NoError(t, err)

	current = base.Add(time.Hour)
	_, err = svc.Submit(ctx, "alice", []byte("4"), []byte("5"), []byte("6"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.Equal(t, base.Add(time.Hour), got.UpdatedAt)
	assert.NotEqual(t, first.CategoryHandle, got.CategoryHandle)
}

func TestService_Get_Missing(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), blobstore.NewMemoryStore(), nil)

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}
