package principals

import (
	"context"
	"testing"
	"time"

	"github.com/matchvault/matchvault/internal/server/config"
	"github.com/matchvault/matchvault/internal/server/refreshtokens"
	"github.com/matchvault/matchvault/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	return NewService(NewInMemoryRepository(), refreshtokens.NewInMemoryRepository(), cfg)
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	salt := []byte("salt")
	verifier := []byte("verifier")

	p, err := svc.Register(ctx, "0xA11CE", salt, verifier)
	require.NoError(t, err)
	assert.Equal(t, "0xA11CE", p.Address)

	pair, err := svc.Login(ctx, "0xA11CE", verifier)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, "p1", []byte("s"), []byte("v"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, "p1", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, shared.ErrorAlreadyExists)
}

func TestService_Register_EmptyAddress(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, shared.ErrorValidation)
}

func TestService_Login_WrongVerifier(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, "p1", []byte("s"), []byte("v"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, "p1", []byte("wrong"))
	assert.ErrorIs(t, err, shared.ErrorUnauthorized)
}

func TestService_Login_UnknownPrincipal(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "ghost", []byte("v"))
	assert.ErrorIs(t, err, shared.ErrorUnauthorized)
}

func TestService_GetSalt_UnknownGetsRandom(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	salt1, err := svc.GetSalt(ctx, "ghost")
	require.NoError(t, err)
	assert.Len(t, salt1, 32)
}

func TestService_GetSalt_KnownReturnsRegistered(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, "p1", []byte("known-salt"), []byte("v"))
	require.NoError(t, err)

	salt, err := svc.GetSalt(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("known-salt"), salt)
}
