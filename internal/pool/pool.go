// Package pool exposes the operations of a two-token constant-product pool.
//
// Every mutation runs under one mutex against a working copy of the reserves
// and a ledger transaction. The touched records are written to storage in a
// single batch and only then become visible; an error at any step leaves the
// pool unchanged. Events are published after the lock is released.
package pool

import (
	"bytes"
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
	"github.com/fleshka4/simplepool/internal/ledger"
	"github.com/fleshka4/simplepool/internal/liquidity"
	"github.com/fleshka4/simplepool/internal/pricing"
	"github.com/fleshka4/simplepool/internal/reserve"
	"github.com/fleshka4/simplepool/internal/storage"
	"github.com/fleshka4/simplepool/internal/withdrawal"
)

// Params are fixed when the pool is created.
type Params struct {
	Owner       common.Address
	Tokens      [2]common.Address
	ExchangeFee uint64
}

// Pool is the singleton pool state.
type Pool struct {
	mu          sync.Mutex
	params      Params
	reserves    *reserve.Store
	ledger      *ledger.Ledger
	withdrawals *withdrawal.Registry
	store       storage.Store
	feed        event.Feed
	logger      *zap.Logger
}

// New creates a pool in an empty store. It fails with ErrAlreadyInitialized if
// the store already holds a pool.
func New(ctx context.Context, params Params, store storage.Store, logger *zap.Logger) (*Pool, error) {
	if params.ExchangeFee >= dexmath.FeeDivisor {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "exchange fee %d must be below %d", params.ExchangeFee, dexmath.FeeDivisor)
	}
	rs, err := reserve.New(params.Tokens)
	if err != nil {
		return nil, err
	}

	_, err = store.Get(ctx, poolKey)
	switch {
	case err == nil:
		return nil, apperrors.ErrAlreadyInitialized
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, errors.Wrap(err, "store.Get")
	}

	p := newPool(params, rs, ledger.New(), store, logger)
	if err := p.commit(ctx, p.ledger.Begin(), rs); err != nil {
		return nil, err
	}
	p.logger.Info("pool created",
		zap.Stringer("token_0", params.Tokens[0]),
		zap.Stringer("token_1", params.Tokens[1]),
		zap.Uint64("exchange_fee", params.ExchangeFee),
	)
	return p, nil
}

// Open loads a pool from the store. It fails with ErrNotFound if the store
// holds no pool.
func Open(ctx context.Context, store storage.Store, logger *zap.Logger) (*Pool, error) {
	data, err := store.Get(ctx, poolKey)
	if err != nil {
		return nil, errors.Wrap(err, "store.Get")
	}
	v, err := decodePool(data)
	if err != nil {
		return nil, err
	}
	params, snap, err := currentPool(v)
	if err != nil {
		return nil, err
	}
	rs, err := reserve.FromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	lg := ledger.New()
	err = store.Iterate(ctx, accountPrefix, func(key, value []byte) error {
		id := common.HexToAddress(string(bytes.TrimPrefix(key, accountPrefix)))
		acc, err := ledger.DecodeAccount(value)
		if err != nil {
			return errors.Wrapf(err, "account %s", id.Hex())
		}
		lg.Load(id, acc)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store.Iterate")
	}

	p := newPool(params, rs, lg, store, logger)
	if err := p.Audit(); err != nil {
		return nil, err
	}
	p.logger.Info("pool opened", zap.Int("accounts", lg.Len()))
	return p, nil
}

func newPool(params Params, rs *reserve.Store, lg *ledger.Ledger, store storage.Store, logger *zap.Logger) *Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		params:      params,
		reserves:    rs,
		ledger:      lg,
		withdrawals: withdrawal.NewRegistry(),
		store:       store,
		logger:      logger.With(zap.String("component", "pool")),
	}
}

// commit persists the touched accounts and, when rs is not nil, the pool
// record, then publishes both.
func (p *Pool) commit(ctx context.Context, tx *ledger.Txn, rs *reserve.Store) error {
	return p.commitBatch(ctx, storage.NewBatch(), tx, rs)
}

// commitBatch is commit on top of records the caller already put in b.
func (p *Pool) commitBatch(ctx context.Context, b *storage.Batch, tx *ledger.Txn, rs *reserve.Store) error {
	if rs != nil {
		data, err := encodePool(poolVersion1{params: p.params, snapshot: rs.Snapshot()})
		if err != nil {
			return err
		}
		b.Put(poolKey, data)
	}
	for id, v := range tx.Touched() {
		data, err := ledger.EncodeAccount(v)
		if err != nil {
			return err
		}
		b.Put(accountKey(id), data)
	}

	if err := p.store.Apply(ctx, b); err != nil {
		return errors.Wrap(err, "store.Apply")
	}
	tx.Commit()
	if rs != nil {
		p.reserves = rs
	}
	return nil
}

func (p *Pool) publish(events ...Event) {
	for _, e := range events {
		p.feed.Send(e)
	}
}

// fail logs integrity failures, which point at a defect rather than a bad request.
func (p *Pool) fail(op string, err error) error {
	if errors.Is(err, apperrors.ErrInvariant) || errors.Is(err, apperrors.ErrOverflow) ||
		errors.Is(err, apperrors.ErrUnderflow) || errors.Is(err, apperrors.ErrUnknownVersion) {
		p.logger.Error("integrity failure", zap.String("op", op), zap.Error(err))
	}
	return err
}

// Subscribe delivers every committed event to ch. The subscriber must keep
// receiving; a blocked channel stalls event delivery.
func (p *Pool) Subscribe(ch chan<- Event) event.Subscription {
	return p.feed.Subscribe(ch)
}

// Register creates an empty account for id.
func (p *Pool) Register(ctx context.Context, id common.Address) error {
	p.mu.Lock()
	err := p.register(ctx, id)
	p.mu.Unlock()
	if err != nil {
		return p.fail("register", err)
	}

	p.logger.Debug("account registered", zap.Stringer("account", id))
	p.publish(Event{Kind: EventRegistered, Account: id})
	return nil
}

func (p *Pool) register(ctx context.Context, id common.Address) error {
	if id == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account id cannot be empty")
	}
	tx := p.ledger.Begin()
	if err := tx.Register(id); err != nil {
		return err
	}
	return p.commit(ctx, tx, nil)
}

// OnTransfer credits a token transfer made to the pool to the sender's
// balance. ref identifies the transfer on the token ledger; a ref is credited
// at most once. A zero amount is accepted and changes nothing. The returned
// refund amount is always zero.
func (p *Pool) OnTransfer(ctx context.Context, ref string, token, sender common.Address, amount *uint256.Int, msg string) (*uint256.Int, error) {
	p.mu.Lock()
	credited, err := p.onTransfer(ctx, ref, token, sender, amount)
	p.mu.Unlock()
	if err != nil {
		return nil, p.fail("on_transfer", err)
	}
	if !credited {
		return dexmath.Zero(), nil
	}

	p.logger.Debug("deposit",
		zap.String("ref", ref),
		zap.Stringer("account", sender),
		zap.Stringer("token", token),
		zap.String("amount", amount.Dec()),
		zap.String("msg", msg),
	)
	p.publish(Event{Kind: EventDeposited, Account: sender, TokenIn: token, AmountIn: amount.Clone()})
	return dexmath.Zero(), nil
}

func (p *Pool) onTransfer(ctx context.Context, ref string, token, sender common.Address, amount *uint256.Int) (bool, error) {
	if ref == "" {
		return false, errors.Wrap(apperrors.ErrInvalidArgument, "transfer reference cannot be empty")
	}
	if !p.reserves.Has(token) {
		return false, errors.Wrapf(apperrors.ErrTokenNotInPool, "token %s", token.Hex())
	}
	if !p.ledger.IsRegistered(sender) {
		return false, errors.Wrapf(apperrors.ErrAccountNotFound, "account %s", sender.Hex())
	}
	if amount == nil || amount.IsZero() {
		return false, nil
	}

	key := transferKey(ref)
	_, err := p.store.Get(ctx, key)
	switch {
	case err == nil:
		return false, errors.Wrapf(apperrors.ErrTransferCredited, "transfer %s", ref)
	case !errors.Is(err, apperrors.ErrNotFound):
		return false, errors.Wrap(err, "store.Get")
	}

	tx := p.ledger.Begin()
	if err := tx.Deposit(sender, token, amount); err != nil {
		return false, err
	}
	b := storage.NewBatch()
	b.Put(key, []byte(amount.Dec()))
	if err := p.commitBatch(ctx, b, tx, nil); err != nil {
		return false, err
	}
	return true, nil
}

// Swap exchanges amountIn of tokenIn from the account's balance for tokenOut at
// the quoted price. It fails with ErrMinAmount if the output is below minAmountOut.
func (p *Pool) Swap(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int,
	tokenOut common.Address, minAmountOut *uint256.Int,
) (*uint256.Int, error) {
	p.mu.Lock()
	out, err := p.swap(ctx, account, tokenIn, amountIn, tokenOut, minAmountOut)
	p.mu.Unlock()
	if err != nil {
		return nil, p.fail("swap", err)
	}

	p.logger.Debug("swap",
		zap.Stringer("account", account),
		zap.Stringer("token_in", tokenIn),
		zap.String("amount_in", amountIn.Dec()),
		zap.Stringer("token_out", tokenOut),
		zap.String("amount_out", out.Dec()),
	)
	p.publish(Event{
		Kind: EventSwapped, Account: account,
		TokenIn: tokenIn, AmountIn: amountIn.Clone(),
		TokenOut: tokenOut, AmountOut: out.Clone(),
	})
	return out, nil
}

func (p *Pool) swap(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int,
	tokenOut common.Address, minAmountOut *uint256.Int,
) (*uint256.Int, error) {
	rs := p.reserves.Clone()
	out, err := pricing.Quote(rs, tokenIn, amountIn, tokenOut, p.params.ExchangeFee)
	if err != nil {
		return nil, err
	}
	if minAmountOut != nil && out.Lt(minAmountOut) {
		return nil, errors.Wrapf(apperrors.ErrMinAmount, "amount out %s is below %s", out.Dec(), minAmountOut.Dec())
	}

	tx := p.ledger.Begin()
	if err := tx.Withdraw(account, tokenIn, amountIn); err != nil {
		return nil, err
	}
	if err := tx.Deposit(account, tokenOut, out); err != nil {
		return nil, err
	}
	if err := rs.AddReserve(tokenIn, amountIn); err != nil {
		return nil, err
	}
	if err := rs.SubReserve(tokenOut, out); err != nil {
		return nil, err
	}
	if err := rs.RecordVolume(tokenIn, amountIn, out); err != nil {
		return nil, err
	}

	if err := p.commit(ctx, tx, rs); err != nil {
		return nil, err
	}
	return out, nil
}

// AddLiquidity moves both amounts from the account's balance into the pool and
// returns the minted share.
func (p *Pool) AddLiquidity(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int,
	tokenOut common.Address, amountOut *uint256.Int,
) (*uint256.Int, error) {
	p.mu.Lock()
	share, err := p.addLiquidity(ctx, account, tokenIn, amountIn, tokenOut, amountOut)
	p.mu.Unlock()
	if err != nil {
		return nil, p.fail("add_liquidity", err)
	}

	p.logger.Debug("liquidity added", zap.Stringer("account", account), zap.String("share", share.Dec()))
	p.publish(Event{
		Kind: EventLiquidityAdded, Account: account,
		TokenIn: tokenIn, AmountIn: amountIn.Clone(),
		TokenOut: tokenOut, AmountOut: amountOut.Clone(),
		Share: share.Clone(),
	})
	return share, nil
}

func (p *Pool) addLiquidity(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int,
	tokenOut common.Address, amountOut *uint256.Int,
) (*uint256.Int, error) {
	rs := p.reserves.Clone()
	tx := p.ledger.Begin()
	share, err := liquidity.Add(tx, rs, account, tokenIn, amountIn, tokenOut, amountOut)
	if err != nil {
		return nil, err
	}
	if err := p.commit(ctx, tx, rs); err != nil {
		return nil, err
	}
	return share, nil
}

// RemoveLiquidity burns amount of the account's shares and credits its part of
// both reserves. Payouts are returned in pool token order.
func (p *Pool) RemoveLiquidity(ctx context.Context, account common.Address, amount *uint256.Int) ([2]*uint256.Int, error) {
	p.mu.Lock()
	payouts, err := p.removeLiquidity(ctx, account, amount)
	tokens := p.params.Tokens
	p.mu.Unlock()
	if err != nil {
		return payouts, p.fail("remove_liquidity", err)
	}

	p.logger.Debug("liquidity removed",
		zap.Stringer("account", account),
		zap.String("share", amount.Dec()),
		zap.String("amount_0", payouts[0].Dec()),
		zap.String("amount_1", payouts[1].Dec()),
	)
	p.publish(Event{
		Kind: EventLiquidityRemoved, Account: account,
		TokenIn: tokens[0], AmountIn: payouts[0].Clone(),
		TokenOut: tokens[1], AmountOut: payouts[1].Clone(),
		Share: amount.Clone(),
	})
	return payouts, nil
}

func (p *Pool) removeLiquidity(ctx context.Context, account common.Address, amount *uint256.Int) ([2]*uint256.Int, error) {
	rs := p.reserves.Clone()
	tx := p.ledger.Begin()
	payouts, err := liquidity.Remove(tx, rs, account, amount)
	if err != nil {
		return [2]*uint256.Int{}, err
	}
	if err := p.commit(ctx, tx, rs); err != nil {
		return [2]*uint256.Int{}, err
	}
	return payouts, nil
}

// TransferShare moves shares between two registered accounts.
func (p *Pool) TransferShare(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	p.mu.Lock()
	err := p.transferShare(ctx, from, to, amount)
	p.mu.Unlock()
	if err != nil {
		return p.fail("transfer_share", err)
	}

	p.logger.Debug("share transferred", zap.Stringer("from", from), zap.Stringer("to", to), zap.String("amount", amount.Dec()))
	p.publish(Event{Kind: EventShareTransferred, Account: from, Counterparty: to, Share: amount.Clone()})
	return nil
}

func (p *Pool) transferShare(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return apperrors.ErrInvalidAmount
	}
	tx := p.ledger.Begin()
	if err := tx.TransferShare(from, to, amount); err != nil {
		return err
	}
	return p.commit(ctx, tx, nil)
}

// BeginWithdraw issues a withdrawal request and holds its amount on the
// account, so it cannot be spent while the transfer runs. A nil amount
// withdraws the whole available balance. The caller performs the external
// transfer and reports its outcome to CompleteWithdraw.
func (p *Pool) BeginWithdraw(account, token common.Address, amount *uint256.Int) (*withdrawal.Request, error) {
	p.mu.Lock()
	req, err := p.beginWithdraw(account, token, amount)
	p.mu.Unlock()
	if err != nil {
		return nil, p.fail("begin_withdraw", err)
	}

	p.logger.Info("withdrawal issued",
		zap.Stringer("request", req.ID),
		zap.Stringer("account", account),
		zap.Stringer("token", token),
		zap.String("amount", req.Amount.Dec()),
	)
	p.publish(Event{Kind: EventWithdrawalIssued, Account: account, TokenOut: token, AmountOut: req.Amount.Clone(), RequestID: req.ID})
	return req, nil
}

func (p *Pool) beginWithdraw(account, token common.Address, amount *uint256.Int) (*withdrawal.Request, error) {
	if !p.reserves.Has(token) {
		return nil, errors.Wrapf(apperrors.ErrTokenNotInPool, "token %s", token.Hex())
	}
	if id, ok := p.withdrawals.PendingFor(account, token); ok {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalPending, "request %s", id)
	}
	acc, err := p.ledger.Get(account)
	if err != nil {
		return nil, err
	}
	if acc.Balance(token).IsZero() {
		return nil, apperrors.ErrTokenBalanceZero
	}
	free, err := p.ledger.Available(account, token)
	if err != nil {
		return nil, err
	}
	if amount == nil {
		amount = free
	}
	if amount.IsZero() || amount.Gt(free) {
		return nil, errors.Wrapf(apperrors.ErrInvalidAmount, "withdraw %s of available %s", amount.Dec(), free.Dec())
	}

	if err := p.ledger.Hold(account, token, amount); err != nil {
		return nil, err
	}
	req, err := p.withdrawals.Issue(account, token, amount)
	if err != nil {
		p.ledger.Release(account, token, amount)
		return nil, err
	}
	return req, nil
}

// CompleteWithdraw settles an issued request. On success the held amount is
// debited from the account; on failure the hold is released, balances are
// left as they were and the error wraps ErrCallFailed. A request that ends
// failed is returned along with the error.
func (p *Pool) CompleteWithdraw(ctx context.Context, id uuid.UUID, ok bool) (*withdrawal.Request, error) {
	p.mu.Lock()
	req, err := p.completeWithdraw(ctx, id, ok)
	p.mu.Unlock()
	if req == nil {
		return nil, p.fail("complete_withdraw", err)
	}

	kind := EventWithdrawalSettled
	if req.State == withdrawal.StateFailed {
		kind = EventWithdrawalFailed
	}
	p.logger.Info("withdrawal resolved", zap.Stringer("request", req.ID), zap.String("state", string(req.State)))
	p.publish(Event{Kind: kind, Account: req.Account, TokenOut: req.Token, AmountOut: req.Amount.Clone(), RequestID: req.ID})
	return req, err
}

func (p *Pool) completeWithdraw(ctx context.Context, id uuid.UUID, ok bool) (*withdrawal.Request, error) {
	req, err := p.withdrawals.Peek(id)
	if err != nil {
		return nil, err
	}

	if !ok {
		return p.failWithdraw(req, errors.Wrapf(apperrors.ErrCallFailed, "withdrawal %s", id))
	}

	tx := p.ledger.Begin()
	if err := tx.Settle(req.Account, req.Token, req.Amount); err != nil {
		// The tokens have left the pool but the hold no longer covers them.
		p.logger.Error("withdrawal debit failed",
			zap.Stringer("request", id),
			zap.Stringer("account", req.Account),
			zap.Error(err),
		)
		return p.failWithdraw(req, err)
	}
	// A storage failure leaves the request issued and the hold in place.
	if err := p.commit(ctx, tx, nil); err != nil {
		return nil, err
	}
	return p.withdrawals.Resolve(id, true)
}

// failWithdraw resolves req as failed and releases its hold.
func (p *Pool) failWithdraw(req *withdrawal.Request, cause error) (*withdrawal.Request, error) {
	failed, err := p.withdrawals.Resolve(req.ID, false)
	if err != nil {
		return nil, err
	}
	p.ledger.Release(req.Account, req.Token, req.Amount)
	return failed, cause
}

// Withdrawal returns the request with the given id.
func (p *Pool) Withdrawal(id uuid.UUID) (*withdrawal.Request, error) {
	return p.withdrawals.Get(id)
}

// Tokens returns the pool's tokens in creation order.
func (p *Pool) Tokens() [2]common.Address {
	return p.params.Tokens
}

// Owner returns the administrative owner.
func (p *Pool) Owner() common.Address {
	return p.params.Owner
}

// Fee returns the exchange fee numerator and divisor.
func (p *Pool) Fee() (uint64, uint64) {
	return p.params.ExchangeFee, dexmath.FeeDivisor
}

// Reserves returns the current reserves in token order.
func (p *Pool) Reserves() [2]*uint256.Int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reserves.Snapshot().Reserves
}

// Volumes returns the swap volumes in token order.
func (p *Pool) Volumes() [2]reserve.Volume {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reserves.Volumes()
}

// Quote prices a swap at the current reserves without executing it.
func (p *Pool) Quote(tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address) (*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return pricing.Quote(p.reserves, tokenIn, amountIn, tokenOut, p.params.ExchangeFee)
}

// AccountInfo returns a copy of the account.
func (p *Pool) AccountInfo(id common.Address) (*ledger.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.Get(id)
}

// ShareOf returns the share balance of the account.
func (p *Pool) ShareOf(id common.Address) (*uint256.Int, error) {
	acc, err := p.AccountInfo(id)
	if err != nil {
		return nil, err
	}
	return acc.Share, nil
}

// TotalShareSupply returns the outstanding share supply.
func (p *Pool) TotalShareSupply() *uint256.Int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reserves.TotalShares()
}

// IsRegistered reports whether id has an account.
func (p *Pool) IsRegistered(id common.Address) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ledger.IsRegistered(id)
}

// StorageBalanceOf reports 1 for a registered account and 0 otherwise.
func (p *Pool) StorageBalanceOf(id common.Address) uint64 {
	if p.IsRegistered(id) {
		return 1
	}
	return 0
}

// Audit checks that the account shares add up to the total supply.
func (p *Pool) Audit() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sum := dexmath.Zero()
	var overflow bool
	err := p.ledger.Range(func(_ common.Address, a *ledger.Account) bool {
		_, overflow = sum.AddOverflow(sum, a.Share)
		return !overflow
	})
	if err != nil {
		return err
	}
	if overflow {
		return errors.Wrap(apperrors.ErrInvariant, "share sum overflows")
	}
	if total := p.reserves.TotalShares(); !sum.Eq(total) {
		return errors.Wrapf(apperrors.ErrInvariant, "share sum %s != total supply %s", sum.Dec(), total.Dec())
	}
	return nil
}

// Liabilities returns, per pool token, what the pool owes: the reserve plus
// every account's deposited balance. The pool's custody on the token ledger
// must cover it.
func (p *Pool) Liabilities() ([2]*uint256.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tokens := p.reserves.Tokens()
	owed := p.reserves.Snapshot().Reserves
	err := p.ledger.Range(func(_ common.Address, a *ledger.Account) bool {
		for i, token := range tokens {
			// Balances are 128-bit, so the 256-bit sum cannot wrap.
			owed[i].Add(owed[i], a.Balance(token))
		}
		return true
	})
	if err != nil {
		return [2]*uint256.Int{}, err
	}
	return owed, nil
}
