package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/matchvault/matchvault/internal/logging"
	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/server/config"
	"github.com/matchvault/matchvault/internal/server/engine"
	"github.com/matchvault/matchvault/internal/server/events"
	"github.com/matchvault/matchvault/internal/server/oracle"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/storage"
)

const testSecret = "test-secret"
const testOwner = "owner"

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type stubScorer struct{}

func (stubScorer) Compute(ctx context.Context, a, b *profiles.Profile) (string, error) {
	return "scores/stub", nil
}

type nopSubmitter struct{}

func (nopSubmitter) Submit(ctx context.Context, sub oracle.Submission) error { return nil }

type stubTransferer struct{}

func (stubTransferer) Transfer(ctx context.Context, principal string, amount int64) error {
	return nil
}

type testServer struct {
	srv     *GRPCServer
	manager *storage.InMemoryManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	manager := storage.NewInMemoryManager()
	blobs := blobstore.NewMemoryStore()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret
	cfg.OwnerPrincipal = testOwner

	principalSvc := principals.NewService(
		manager.Store().Principals(), manager.Store().RefreshTokens(), cfg)
	profileSvc := profiles.NewService(manager.Store().Profiles(), blobs, nil)

	eng := engine.NewEngine(
		manager,
		stubScorer{},
		nopSubmitter{},
		oracle.NewEd25519Verifier(nil),
		stubTransferer{},
		events.NewMemoryRecorder(),
		nopLogger{},
		nil,
		engine.Params{
			MinFee:           cfg.MinFee,
			PlatformShareBps: cfg.PlatformShareBps,
			MatchTimeout:     cfg.MatchTimeout,
			RevealTimeout:    cfg.RevealTimeout,
			KeyGeneration:    1,
			CallbackURL:      cfg.CallbackBaseURL,
			Owner:            testOwner,
		},
	)

	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, principalSvc, profileSvc, eng, testSecret)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	return &testServer{srv: srv, manager: manager}
}

// seedProfile writes a profile directly so handler tests do not depend on
// the profile submission path.
func (ts *testServer) seedProfile(t *testing.T, principal string) {
	t.Helper()
	err := ts.manager.Store().Profiles().Upsert(context.Background(), &profiles.Profile{
		Principal:      principal,
		CategoryHandle: "profiles/" + principal + "/cat",
		SubAHandle:     "profiles/" + principal + "/a",
		SubBHandle:     "profiles/" + principal + "/b",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("seed profile error: %v", err)
	}
}

// authCtx mimics a context as the interceptor would leave it after a valid
// token.
func authCtx(principal string) context.Context {
	return context.WithValue(context.Background(), principalKey, principal)
}
