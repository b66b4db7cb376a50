// Package server initializes and runs the MatchVault application: storage
// backend, blob store, oracle capabilities, the transition engine, and the
// two listening surfaces (participant gRPC, oracle callback HTTP). It also
// owns signal handling for graceful shutdown.
package server

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/matchvault/matchvault/internal/cryptox"
	"github.com/matchvault/matchvault/internal/logging"
	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/server/callback"
	"github.com/matchvault/matchvault/internal/server/config"
	"github.com/matchvault/matchvault/internal/server/engine"
	"github.com/matchvault/matchvault/internal/server/events"
	"github.com/matchvault/matchvault/internal/server/oracle"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/storage"
	"github.com/matchvault/matchvault/internal/server/transfer"

	gs "github.com/matchvault/matchvault/internal/server/grpc"
)

// scoreKeySalt pins the derivation of the development scoring key so the
// server and the oracle simulator agree on it. See cmd/oracle.
const scoreKeySalt = "matchvault.score.v1"

type App struct {
	config           *config.Config
	logger           logging.Logger
	manager          storage.Manager
	principalService *principals.Service
	profileService   *profiles.Service
	engine           *engine.Engine
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := newManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	if err := manager.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("verifier init error: %w", err)
	}

	ps := principals.NewService(manager.Store().Principals(), manager.Store().RefreshTokens(), cfg)
	prs := profiles.NewService(manager.Store().Profiles(), blobs, nil)

	scoreKey := cryptox.DeriveKey([]byte(cfg.SecretKey), []byte(scoreKeySalt))

	eng := engine.NewEngine(
		manager,
		oracle.NewLocalScorer(blobs, scoreKey),
		oracle.NewHTTPSubmitter(cfg.OracleEndpoint),
		verifier,
		transfer.NewLogTransferer(logger),
		events.NewSlogRecorder(logger),
		logger,
		nil,
		engine.Params{
			MinFee:           cfg.MinFee,
			PlatformShareBps: cfg.PlatformShareBps,
			MatchTimeout:     cfg.MatchTimeout,
			RevealTimeout:    cfg.RevealTimeout,
			KeyGeneration:    cfg.OracleKeyGeneration,
			CallbackURL:      cfg.CallbackBaseURL,
			Owner:            cfg.OwnerPrincipal,
		},
	)

	return &App{
		config:           cfg,
		logger:           logger,
		manager:          manager,
		principalService: ps,
		profileService:   prs,
		engine:           eng,
	}, nil
}

func newManager(cfg *config.Config) (storage.Manager, error) {
	if cfg.DatabaseDSN == "" {
		return storage.NewInMemoryManager(), nil
	}
	return storage.NewPostgresManager(cfg.DatabaseDSN)
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	if cfg.S3BaseEndpoint == "" {
		return blobstore.NewMemoryStore(), nil
	}
	return blobstore.NewS3Store(ctx, cfg)
}

func newVerifier(cfg *config.Config) (*oracle.Ed25519Verifier, error) {
	keys := make(map[uint64]ed25519.PublicKey)
	if cfg.OracleKeyHex != "" {
		raw, err := hex.DecodeString(cfg.OracleKeyHex)
		if err != nil {
			return nil, fmt.Errorf("bad oracle key hex: %w", err)
		}
		if len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("oracle key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
		}
		keys[cfg.OracleKeyGeneration] = ed25519.PublicKey(raw)
	}
	return oracle.NewEd25519Verifier(keys), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.principalService, app.profileService, app.engine, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startCallbackServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := callback.NewServer(app.config.EndpointAddrHTTP, app.engine, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startCallbackServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.engine.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
