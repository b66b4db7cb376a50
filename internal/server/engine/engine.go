// Package engine implements the transition rules tying the match store, the
// decryption request tracker, and the refund ledger together. Every mutating
// entry point runs to completion under a single mutex and applies its effects
// inside one storage transaction, so no partial application is ever visible
// to another entry point. External calls follow checks, then effects, then
// interactions: the oracle submission happens after commit outside the lock,
// and fund transfers run as the last statement inside the withdrawal
// transaction so a failed transfer rolls the zeroing back.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/matchvault/matchvault/internal/logging"
	"github.com/matchvault/matchvault/internal/server/events"
	"github.com/matchvault/matchvault/internal/server/fees"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/server/oracle"
	"github.com/matchvault/matchvault/internal/server/reveals"
	"github.com/matchvault/matchvault/internal/server/storage"
	"github.com/matchvault/matchvault/internal/server/transfer"
	"github.com/matchvault/matchvault/internal/shared"
	"golang.org/x/sync/errgroup"
)

// Params carries the policy knobs the engine applies to every transition.
type Params struct {
	MinFee           int64
	PlatformShareBps int64
	MatchTimeout     time.Duration
	RevealTimeout    time.Duration
	KeyGeneration    uint64
	CallbackURL      string
	Owner            string
}

// Engine serializes all state-mutating entry points behind one mutex.
type Engine struct {
	manager    storage.Manager
	scorer     oracle.Scorer
	submitter  oracle.Submitter
	verifier   oracle.Verifier
	transferer transfer.Transferer
	recorder   events.Recorder
	logger     logging.Logger
	now        func() time.Time
	params     Params

	// sem is a one-slot semaphore rather than a sync.Mutex so that
	// acquisition respects context cancellation.
	sem chan struct{}

	submissions errgroup.Group
}

func NewEngine(
	manager storage.Manager,
	scorer oracle.Scorer,
	submitter oracle.Submitter,
	verifier oracle.Verifier,
	transferer transfer.Transferer,
	recorder events.Recorder,
	logger logging.Logger,
	now func() time.Time,
	params Params,
) *Engine {
	if now == nil {
		now = time.Now
	}
	e := &Engine{
		manager:    manager,
		scorer:     scorer,
		submitter:  submitter,
		verifier:   verifier,
		transferer: transferer,
		recorder:   recorder,
		logger:     logger.With("module", "engine"),
		now:        now,
		params:     params,
		sem:        make(chan struct{}, 1),
	}
	e.submissions.SetLimit(8)
	return e
}

func (e *Engine) lock(ctx context.Context) error {
	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) unlock() {
	<-e.sem
}

// Wait blocks until all in-flight oracle submissions have finished. Called
// on shutdown.
func (e *Engine) Wait() error {
	return e.submissions.Wait()
}

func (e *Engine) paused(ctx context.Context) error {
	paused, err := e.manager.Store().Ledger().Paused(ctx)
	if err != nil {
		return fmt.Errorf("error reading pause flag: %w", err)
	}
	if paused {
		return shared.ErrorPaused
	}
	return nil
}

// SubmitMatch creates a match between requester and partner. The fee
// retained for the match is capped at MinFee; anything above it is an
// overpayment credited straight to the requester's claimable balance, so the
// total ever refundable for the submission never exceeds what was collected.
func (e *Engine) SubmitMatch(ctx context.Context, requester, partner string, feePaid int64) (string, error) {

	if err := e.lock(ctx); err != nil {
		return "", err
	}
	defer e.unlock()

	if err := e.paused(ctx); err != nil {
		return "", err
	}

	if partner == "" || partner == requester {
		return "", shared.ErrorInvalidPartner
	}
	if feePaid < e.params.MinFee {
		return "", shared.ErrorInsufficientFee
	}

	store := e.manager.Store()

	profileA, err := store.Profiles().Get(ctx, requester)
	if err != nil {
		return "", fmt.Errorf("requester profile: %w", err)
	}
	profileB, err := store.Profiles().Get(ctx, partner)
	if err != nil {
		return "", fmt.Errorf("partner profile: %w", err)
	}

	id := matches.DeriveID(requester, partner)
	if _, err := store.Matches().Get(ctx, id); err == nil {
		return "", shared.ErrorAlreadyExists
	}

	handle, err := e.scorer.Compute(ctx, profileA, profileB)
	if err != nil {
		return "", fmt.Errorf("error computing score: %w", err)
	}

	now := e.now()
	overpay := fees.Overpayment(feePaid, e.params.MinFee)
	matchFee := feePaid - overpay
	share := fees.PlatformShare(matchFee, e.params.PlatformShareBps)

	m := &matches.Match{
		ID:              id,
		Requester:       requester,
		Partner:         partner,
		ScoreHandle:     handle,
		FeePaid:         matchFee,
		Status:          matches.StatusPending,
		CreatedAt:       now,
		TimeoutDeadline: now.Add(e.params.MatchTimeout),
	}

	err = e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		if err := s.Matches().Create(ctx, m); err != nil {
			return err
		}
		if err := s.Ledger().IncrementMatchCounters(ctx, requester, partner); err != nil {
			return err
		}
		if err := s.Ledger().AddPlatformFees(ctx, share); err != nil {
			return err
		}
		if overpay > 0 {
			if err := s.Ledger().Credit(ctx, requester, overpay); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	ev := events.New(events.TypeMatchCreated, now)
	ev.MatchID = id
	ev.Principal = requester
	ev.Amount = feePaid
	e.recorder.Record(ctx, ev)

	return id, nil
}

// RequestReveal delegates the match's score decryption to the oracle. The
// request record and the match status flip commit together; the oracle
// submission itself is fired after commit, outside the lock, and its failure
// only means the request eventually falls to the timeout path.
func (e *Engine) RequestReveal(ctx context.Context, matchID, caller string) (int64, error) {

	if err := e.lock(ctx); err != nil {
		return 0, err
	}
	defer e.unlock()

	if err := e.paused(ctx); err != nil {
		return 0, err
	}

	m, err := e.manager.Store().Matches().Get(ctx, matchID)
	if err != nil {
		return 0, err
	}
	if !m.HasParticipant(caller) {
		return 0, shared.ErrorNotAuthorized
	}
	if m.Revealed {
		return 0, shared.ErrorAlreadyRevealed
	}
	if m.Status != matches.StatusPending {
		return 0, shared.ErrorInvalidState
	}
	now := e.now()
	if !now.Before(m.TimeoutDeadline) {
		return 0, shared.ErrorExpired
	}

	req := &reveals.Request{
		Requester:       caller,
		MatchID:         matchID,
		FeePaid:         m.FeePaid,
		KeyGeneration:   e.params.KeyGeneration,
		Status:          reveals.StatusProcessing,
		CreatedAt:       now,
		TimeoutDeadline: now.Add(e.params.RevealTimeout),
	}

	var requestID int64
	err = e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		id, err := s.Reveals().Create(ctx, req)
		if err != nil {
			return err
		}
		requestID = id
		return s.Matches().SetProcessing(ctx, matchID)
	})
	if err != nil {
		return 0, err
	}

	ev := events.New(events.TypeRevealRequested, now)
	ev.MatchID = matchID
	ev.RequestID = requestID
	ev.Principal = caller
	e.recorder.Record(ctx, ev)

	sub := oracle.Submission{
		RequestID:     requestID,
		ScoreHandle:   m.ScoreHandle,
		KeyGeneration: e.params.KeyGeneration,
		CallbackURL:   e.params.CallbackURL + "/v1/oracle/callback",
	}
	e.submissions.Go(func() error {
		sctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := e.submitter.Submit(sctx, sub); err != nil {
			e.logger.Error(sctx, "oracle submission failed",
				"request_id", sub.RequestID, "error", err.Error())
		}
		return nil
	})

	return requestID, nil
}

// Resolve is invoked by the oracle callback. The proof is verified before
// anything is read for mutation; a forged or stale proof changes nothing.
// One-shot at the status level: once either the request or the match has
// left Processing, a repeated callback fails with ErrorInvalidState.
func (e *Engine) Resolve(ctx context.Context, requestID int64, value int64, proof []byte) error {

	if err := e.lock(ctx); err != nil {
		return err
	}
	defer e.unlock()

	if err := e.paused(ctx); err != nil {
		return err
	}

	store := e.manager.Store()

	req, err := store.Reveals().Get(ctx, requestID)
	if err != nil {
		return err
	}

	if !e.verifier.Verify(requestID, value, req.KeyGeneration, proof) {
		return shared.ErrorProofInvalid
	}

	if req.Status != reveals.StatusProcessing {
		return shared.ErrorInvalidState
	}

	matchID, err := store.Reveals().MatchIDFor(ctx, requestID)
	if err != nil {
		return err
	}
	m, err := store.Matches().Get(ctx, matchID)
	if err != nil {
		return err
	}
	if m.Status != matches.StatusProcessing {
		return shared.ErrorInvalidState
	}

	err = e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		if err := s.Matches().Complete(ctx, matchID, value); err != nil {
			return err
		}
		return s.Reveals().Complete(ctx, requestID)
	})
	if err != nil {
		return err
	}

	ev := events.New(events.TypeCallbackResolved, e.now())
	ev.MatchID = matchID
	ev.RequestID = requestID
	ev.Amount = value
	e.recorder.Record(ctx, ev)

	return nil
}

// ClaimTimeout unwinds a match the oracle never resolved. Either participant
// may claim once the deadline has passed; the refund always goes to the
// original requester. The linked decryption request record is deliberately
// left untouched: the match's terminal status is authoritative and a late
// callback is rejected by the match-status check in Resolve.
func (e *Engine) ClaimTimeout(ctx context.Context, matchID, caller string) error {

	if err := e.lock(ctx); err != nil {
		return err
	}
	defer e.unlock()

	if err := e.paused(ctx); err != nil {
		return err
	}

	m, err := e.manager.Store().Matches().Get(ctx, matchID)
	if err != nil {
		return err
	}
	if !m.HasParticipant(caller) {
		return shared.ErrorNotAuthorized
	}
	if m.Revealed {
		return shared.ErrorAlreadyRevealed
	}
	now := e.now()
	if now.Before(m.TimeoutDeadline) {
		return shared.ErrorTooEarly
	}
	if m.Status != matches.StatusPending && m.Status != matches.StatusProcessing {
		return shared.ErrorInvalidState
	}

	refund := fees.Refund(m.FeePaid, e.params.PlatformShareBps)

	err = e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		if err := s.Matches().MarkTimedOut(ctx, matchID); err != nil {
			return err
		}
		if err := s.Ledger().Credit(ctx, m.Requester, refund); err != nil {
			return err
		}
		return s.Ledger().AddRefunds(ctx, refund)
	})
	if err != nil {
		return err
	}

	ev := events.New(events.TypeTimeoutClaimed, now)
	ev.MatchID = matchID
	ev.Principal = caller
	ev.Amount = refund
	e.recorder.Record(ctx, ev)

	return nil
}

// Withdraw pays out the caller's claimable balance. The balance is zeroed
// before the transfer runs and the transfer is the last statement of the
// transaction, so a transfer failure restores the balance and a reentrant
// call observes zero. Withdraw stays available while the service is paused.
func (e *Engine) Withdraw(ctx context.Context, caller string) (int64, error) {

	if err := e.lock(ctx); err != nil {
		return 0, err
	}
	defer e.unlock()

	var amount int64
	err := e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		prior, err := s.Ledger().Zero(ctx, caller)
		if err != nil {
			return err
		}
		if prior == 0 {
			return shared.ErrorNothingToWithdraw
		}
		amount = prior
		if err := e.transferer.Transfer(ctx, caller, prior); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrorTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	ev := events.New(events.TypeRefundWithdrawn, e.now())
	ev.Principal = caller
	ev.Amount = amount
	e.recorder.Record(ctx, ev)

	return amount, nil
}

// ForceRefund is the owner escape hatch: any non-terminal match is forced
// straight to Refunded with the requester's refund credited, bypassing the
// timeout gate. Never applicable once the match is terminal, which also
// prevents double-crediting on top of a timeout claim. Available while
// paused, since pause-then-unwind is the incident-response sequence.
func (e *Engine) ForceRefund(ctx context.Context, matchID, caller string) error {

	if err := e.lock(ctx); err != nil {
		return err
	}
	defer e.unlock()

	if caller != e.params.Owner {
		return shared.ErrorNotAuthorized
	}

	m, err := e.manager.Store().Matches().Get(ctx, matchID)
	if err != nil {
		return err
	}
	if m.Status.Terminal() {
		return shared.ErrorInvalidState
	}

	refund := fees.Refund(m.FeePaid, e.params.PlatformShareBps)

	err = e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		if err := s.Matches().MarkRefunded(ctx, matchID); err != nil {
			return err
		}
		if err := s.Ledger().Credit(ctx, m.Requester, refund); err != nil {
			return err
		}
		return s.Ledger().AddRefunds(ctx, refund)
	})
	if err != nil {
		return err
	}

	ev := events.New(events.TypeMatchForceRefund, e.now())
	ev.MatchID = matchID
	ev.Principal = m.Requester
	ev.Amount = refund
	e.recorder.Record(ctx, ev)

	return nil
}

// SetPaused toggles the guard flag read by the participant entry points.
func (e *Engine) SetPaused(ctx context.Context, caller string, paused bool) error {

	if err := e.lock(ctx); err != nil {
		return err
	}
	defer e.unlock()

	if caller != e.params.Owner {
		return shared.ErrorNotAuthorized
	}

	err := e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		return s.Ledger().SetPaused(ctx, paused)
	})
	if err != nil {
		return err
	}

	ev := events.New(events.TypePausedSet, e.now())
	ev.Principal = caller
	if paused {
		ev.Amount = 1
	}
	e.recorder.Record(ctx, ev)

	return nil
}

// WithdrawPlatformFees pays the accumulated platform share out to the owner
// with the same zero-then-transfer ordering as Withdraw.
func (e *Engine) WithdrawPlatformFees(ctx context.Context, caller string) (int64, error) {

	if err := e.lock(ctx); err != nil {
		return 0, err
	}
	defer e.unlock()

	if caller != e.params.Owner {
		return 0, shared.ErrorNotAuthorized
	}

	var amount int64
	err := e.manager.Transact(ctx, func(ctx context.Context, s storage.Store) error {
		prior, err := s.Ledger().ZeroPlatformFees(ctx)
		if err != nil {
			return err
		}
		if prior == 0 {
			return shared.ErrorNothingToWithdraw
		}
		amount = prior
		if err := e.transferer.Transfer(ctx, caller, prior); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrorTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	ev := events.New(events.TypePlatformWithdrawn, e.now())
	ev.Principal = caller
	ev.Amount = amount
	e.recorder.Record(ctx, ev)

	return amount, nil
}

// GetMatch returns a match to one of its participants or the owner.
func (e *Engine) GetMatch(ctx context.Context, matchID, caller string) (*matches.Match, error) {
	m, err := e.manager.Store().Matches().Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasParticipant(caller) && caller != e.params.Owner {
		return nil, shared.ErrorNotAuthorized
	}
	return m, nil
}

// Balance returns the caller's claimable refund balance.
func (e *Engine) Balance(ctx context.Context, caller string) (int64, error) {
	return e.manager.Store().Ledger().Balance(ctx, caller)
}
