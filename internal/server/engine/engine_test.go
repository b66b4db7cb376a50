package engine

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchvault/matchvault/internal/logging"
	"github.com/matchvault/matchvault/internal/server/events"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/server/oracle"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/storage"
	"github.com/matchvault/matchvault/internal/shared"
)

type fakeScorer struct{}

func (fakeScorer) Compute(ctx context.Context, a, b *profiles.Profile) (string, error) {
	return "scores/fixed", nil
}

type fakeSubmitter struct {
	mu   sync.Mutex
	subs []oracle.Submission
	done chan struct{}
}

func newFakeSubmitter() *fakeSubmitter {
	return &fakeSubmitter{done: make(chan struct{}, 16)}
}

func (s *fakeSubmitter) Submit(ctx context.Context, sub oracle.Submission) error {
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *fakeSubmitter) waitOne(t *testing.T) oracle.Submission {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("oracle submission never happened")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs[len(s.subs)-1]
}

type fakeTransferer struct {
	mu        sync.Mutex
	fail      bool
	transfers map[string]int64
}

func newFakeTransferer() *fakeTransferer {
	return &fakeTransferer{transfers: make(map[string]int64)}
}

func (f *fakeTransferer) Transfer(ctx context.Context, principal string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("settlement backend unavailable")
	}
	f.transfers[principal] += amount
	return nil
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type testEnv struct {
	engine     *Engine
	manager    *storage.InMemoryManager
	submitter  *fakeSubmitter
	transferer *fakeTransferer
	recorder   *events.MemoryRecorder
	clock      *fakeClock
	oracleKey  ed25519.PrivateKey
}

const (
	testMinFee   = int64(1000)
	testShareBps = int64(1000) // 10%
	testOwner    = "owner"
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	env := &testEnv{
		manager:    storage.NewInMemoryManager(),
		submitter:  newFakeSubmitter(),
		transferer: newFakeTransferer(),
		recorder:   events.NewMemoryRecorder(),
		clock:      &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		oracleKey:  priv,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	verifier := oracle.NewEd25519Verifier(map[uint64]ed25519.PublicKey{1: pub})

	env.engine = NewEngine(
		env.manager,
		fakeScorer{},
		env.submitter,
		verifier,
		env.transferer,
		env.recorder,
		logger,
		env.clock.Now,
		Params{
			MinFee:           testMinFee,
			PlatformShareBps: testShareBps,
			MatchTimeout:     24 * time.Hour,
			RevealTimeout:    time.Hour,
			KeyGeneration:    1,
			CallbackURL:      "http://callback.test",
			Owner:            testOwner,
		},
	)

	for _, p := range []string{"alice", "bob", "carol"} {
		err := env.manager.Store().Profiles().Upsert(context.Background(), &profiles.Profile{
			Principal:      p,
			CategoryHandle: "profiles/" + p + "/cat",
			SubAHandle:     "profiles/" + p + "/a",
			SubBHandle:     "profiles/" + p + "/b",
			CreatedAt:      env.clock.Now(),
			UpdatedAt:      env.clock.Now(),
		})
		require.NoError(t, err)
	}

	return env
}

func (env *testEnv) proof(requestID, value int64) []byte {
	return ed25519.Sign(env.oracleKey, oracle.ProofPayload(requestID, value, 1))
}

func (env *testEnv) balance(t *testing.T, principal string) int64 {
	t.Helper()
	b, err := env.manager.Store().Ledger().Balance(context.Background(), principal)
	require.NoError(t, err)
	return b
}

func TestSubmitMatch_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		requester string
		partner   string
		fee       int64
		want      error
	}{
		{"empty partner", "alice", "", testMinFee, shared.ErrorInvalidPartner},
		{"self match", "alice", "alice", testMinFee, shared.ErrorInvalidPartner},
		{"fee below minimum", "alice", "bob", testMinFee - 1, shared.ErrorInsufficientFee},
		{"partner without profile", "alice", "mallory", testMinFee, shared.ErrorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.engine.SubmitMatch(ctx, tt.requester, tt.partner, tt.fee)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmitMatch_CreatesPendingMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	assert.Equal(t, matches.DeriveID("bob", "alice"), id, "identifier must be order-independent")

	m, err := env.engine.GetMatch(ctx, id, "bob")
	require.NoError(t, err)
	assert.Equal(t, matches.StatusPending, m.Status)
	assert.Equal(t, "alice", m.Requester)
	assert.Equal(t, testMinFee, m.FeePaid)
	assert.False(t, m.Revealed)
	assert.Equal(t, env.clock.Now().Add(24*time.Hour), m.TimeoutDeadline)

	share, err := env.manager.Store().Ledger().PlatformBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, testMinFee*testShareBps/10000, share)

	global, err := env.manager.Store().Ledger().GlobalMatchCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), global)

	require.Len(t, env.recorder.ByType(events.TypeMatchCreated), 1)
}

func TestSubmitMatch_DuplicatePairRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	// Same pair in either order maps to the same identifier.
	_, err = env.engine.SubmitMatch(ctx, "bob", "alice", testMinFee)
	assert.ErrorIs(t, err, shared.ErrorAlreadyExists)
}

func TestSubmitMatch_OverpaymentCreditedImmediately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fee := testMinFee + 750
	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", fee)
	require.NoError(t, err)

	assert.Equal(t, int64(750), env.balance(t, "alice"))

	// The excess is not part of the match fee, so a later refund cannot
	// exceed what was collected.
	m, err := env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, testMinFee, m.FeePaid)
}

func TestRequestReveal_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), reqID)

	m, err := env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, matches.StatusProcessing, m.Status)

	sub := env.submitter.waitOne(t)
	assert.Equal(t, reqID, sub.RequestID)
	assert.Equal(t, "scores/fixed", sub.ScoreHandle)
	assert.Equal(t, uint64(1), sub.KeyGeneration)
	assert.Equal(t, "http://callback.test/v1/oracle/callback", sub.CallbackURL)
}

func TestRequestReveal_Gating(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	_, err = env.engine.RequestReveal(ctx, "no-such-match", "alice")
	assert.ErrorIs(t, err, shared.ErrorNotFound)

	_, err = env.engine.RequestReveal(ctx, id, "carol")
	assert.ErrorIs(t, err, shared.ErrorNotAuthorized)

	_, err = env.engine.RequestReveal(ctx, id, "bob")
	require.NoError(t, err)
	env.submitter.waitOne(t)

	// Match is now Processing; no way back to Pending.
	_, err = env.engine.RequestReveal(ctx, id, "alice")
	assert.ErrorIs(t, err, shared.ErrorInvalidState)
}

func TestRequestReveal_ExpiredMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	env.clock.Advance(24 * time.Hour)

	_, err = env.engine.RequestReveal(ctx, id, "alice")
	assert.ErrorIs(t, err, shared.ErrorExpired)
}

func TestResolve_CompletesMatchOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)

	const score = int64(87)
	require.NoError(t, env.engine.Resolve(ctx, reqID, score, env.proof(reqID, score)))

	m, err := env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, matches.StatusCompleted, m.Status)
	assert.True(t, m.Revealed)
	assert.Equal(t, score, m.RevealedScore)

	// Replayed callback with the same valid payload: one-shot at the
	// status level, nothing changes a second time.
	err = env.engine.Resolve(ctx, reqID, score, env.proof(reqID, score))
	assert.ErrorIs(t, err, shared.ErrorInvalidState)

	m, err = env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, score, m.RevealedScore)
	require.Len(t, env.recorder.ByType(events.TypeCallbackResolved), 1)
}

func TestResolve_RejectsBadProof(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)

	// Proof signed for a different value.
	err = env.engine.Resolve(ctx, reqID, 87, env.proof(reqID, 42))
	assert.ErrorIs(t, err, shared.ErrorProofInvalid)

	// Garbage proof.
	err = env.engine.Resolve(ctx, reqID, 87, []byte("not a signature"))
	assert.ErrorIs(t, err, shared.ErrorProofInvalid)

	// Unknown request.
	err = env.engine.Resolve(ctx, 999, 87, env.proof(999, 87))
	assert.ErrorIs(t, err, shared.ErrorNotFound)

	// No mutation happened.
	m, err := env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, matches.StatusProcessing, m.Status)
	assert.False(t, m.Revealed)
}

func TestClaimTimeout_RefundsOriginalRequester(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	_, err = env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)

	err = env.engine.ClaimTimeout(ctx, id, "bob")
	assert.ErrorIs(t, err, shared.ErrorTooEarly)

	env.clock.Advance(24 * time.Hour)

	// The partner claims; the refund still goes to the requester.
	require.NoError(t, env.engine.ClaimTimeout(ctx, id, "bob"))

	refund := testMinFee - testMinFee*testShareBps/10000
	assert.Equal(t, refund, env.balance(t, "alice"))
	assert.Equal(t, int64(0), env.balance(t, "bob"))

	m, err := env.engine.GetMatch(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, matches.StatusTimedOut, m.Status)

	total, err := env.manager.Store().Ledger().TotalRefunds(ctx)
	require.NoError(t, err)
	assert.Equal(t, refund, total)

	// Second claim by either principal fails and credits nothing.
	err = env.engine.ClaimTimeout(ctx, id, "alice")
	assert.ErrorIs(t, err, shared.ErrorInvalidState)
	assert.Equal(t, refund, env.balance(t, "alice"))
}

func TestClaimTimeout_RevealedMatchRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)
	require.NoError(t, env.engine.Resolve(ctx, reqID, 55, env.proof(reqID, 55)))

	env.clock.Advance(24 * time.Hour)

	err = env.engine.ClaimTimeout(ctx, id, "alice")
	assert.ErrorIs(t, err, shared.ErrorAlreadyRevealed)
	assert.Equal(t, int64(0), env.balance(t, "alice"))
}

func TestWithdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.Withdraw(ctx, "alice")
	assert.ErrorIs(t, err, shared.ErrorNothingToWithdraw)

	_, err = env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee+500)
	require.NoError(t, err)
	require.Equal(t, int64(500), env.balance(t, "alice"))

	amount, err := env.engine.Withdraw(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)
	assert.Equal(t, int64(0), env.balance(t, "alice"))
	assert.Equal(t, int64(500), env.transferer.transfers["alice"])

	_, err = env.engine.Withdraw(ctx, "alice")
	assert.ErrorIs(t, err, shared.ErrorNothingToWithdraw)
}

func TestWithdraw_TransferFailureRestoresBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee+500)
	require.NoError(t, err)

	env.transferer.fail = true
	_, err = env.engine.Withdraw(ctx, "alice")
	assert.ErrorIs(t, err, shared.ErrorTransferFailed)

	// The zeroing rolled back; the balance stays claimable.
	assert.Equal(t, int64(500), env.balance(t, "alice"))

	env.transferer.fail = false
	amount, err := env.engine.Withdraw(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)
}

func TestPauseGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee+500)
	require.NoError(t, err)

	err = env.engine.SetPaused(ctx, "alice", true)
	assert.ErrorIs(t, err, shared.ErrorNotAuthorized)

	require.NoError(t, env.engine.SetPaused(ctx, testOwner, true))

	_, err = env.engine.SubmitMatch(ctx, "alice", "carol", testMinFee)
	assert.ErrorIs(t, err, shared.ErrorPaused)

	// Withdraw stays available while paused so funds are never locked.
	amount, err := env.engine.Withdraw(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)

	require.NoError(t, env.engine.SetPaused(ctx, testOwner, false))
	_, err = env.engine.SubmitMatch(ctx, "alice", "carol", testMinFee)
	require.NoError(t, err)
}

func TestForceRefund(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	err = env.engine.ForceRefund(ctx, id, "alice")
	assert.ErrorIs(t, err, shared.ErrorNotAuthorized)

	// Works while paused: pause-then-unwind.
	require.NoError(t, env.engine.SetPaused(ctx, testOwner, true))
	require.NoError(t, env.engine.ForceRefund(ctx, id, testOwner))

	refund := testMinFee - testMinFee*testShareBps/10000
	assert.Equal(t, refund, env.balance(t, "alice"))

	m, err := env.engine.GetMatch(ctx, id, testOwner)
	require.NoError(t, err)
	assert.Equal(t, matches.StatusRefunded, m.Status)

	// Terminal matches cannot be refunded again.
	err = env.engine.ForceRefund(ctx, id, testOwner)
	assert.ErrorIs(t, err, shared.ErrorInvalidState)
	assert.Equal(t, refund, env.balance(t, "alice"))
}

func TestForceRefund_CompletedMatchRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)
	require.NoError(t, env.engine.Resolve(ctx, reqID, 91, env.proof(reqID, 91)))

	err = env.engine.ForceRefund(ctx, id, testOwner)
	assert.ErrorIs(t, err, shared.ErrorInvalidState)
}

func TestForceRefund_LateCallbackRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)
	reqID, err := env.engine.RequestReveal(ctx, id, "alice")
	require.NoError(t, err)
	env.submitter.waitOne(t)

	require.NoError(t, env.engine.ForceRefund(ctx, id, testOwner))

	// The request record is left as-is; the oracle answering afterwards is
	// turned away by the match-status check.
	err = env.engine.Resolve(ctx, reqID, 91, env.proof(reqID, 91))
	assert.ErrorIs(t, err, shared.ErrorInvalidState)
}

func TestWithdrawPlatformFees(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.WithdrawPlatformFees(ctx, "alice")
	assert.ErrorIs(t, err, shared.ErrorNotAuthorized)

	_, err = env.engine.WithdrawPlatformFees(ctx, testOwner)
	assert.ErrorIs(t, err, shared.ErrorNothingToWithdraw)

	_, err = env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	share := testMinFee * testShareBps / 10000
	amount, err := env.engine.WithdrawPlatformFees(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, share, amount)
	assert.Equal(t, share, env.transferer.transfers[testOwner])

	left, err := env.manager.Store().Ledger().PlatformBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)
}

func TestGetMatch_Authorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.engine.SubmitMatch(ctx, "alice", "bob", testMinFee)
	require.NoError(t, err)

	_, err = env.engine.GetMatch(ctx, id, "carol")
	assert.ErrorIs(t, err, shared.ErrorNotAuthorized)

	_, err = env.engine.GetMatch(ctx, id, testOwner)
	require.NoError(t, err)
}
