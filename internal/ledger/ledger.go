// Package ledger keeps per-account token and share balances.
//
// Reads go straight to the Ledger. Mutations go through a Txn, an overlay that
// copies an account on first touch and publishes the copies on Commit, so a
// failed operation leaves the ledger exactly as it was.
//
// A hold reserves part of a balance for a pending withdrawal. Held amounts stay
// in the balance but cannot be spent until they are settled or released.
package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
)

// Ledger maps identities to their versioned account records.
type Ledger struct {
	accounts map[common.Address]VersionedAccount
	holds    map[holdKey]*uint256.Int
}

type holdKey struct {
	account common.Address
	token   common.Address
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[common.Address]VersionedAccount),
		holds:    make(map[holdKey]*uint256.Int),
	}
}

// Load installs a persisted account. It is used while restoring state.
func (l *Ledger) Load(id common.Address, v VersionedAccount) {
	l.accounts[id] = v
}

// IsRegistered reports whether id has an account.
func (l *Ledger) IsRegistered(id common.Address) bool {
	_, ok := l.accounts[id]
	return ok
}

// Get returns a copy of the account of id.
func (l *Ledger) Get(id common.Address) (*Account, error) {
	a, err := l.current(id)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

func (l *Ledger) current(id common.Address) (*Account, error) {
	v, ok := l.accounts[id]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrAccountNotFound, "account %s", id.Hex())
	}
	return Current(v)
}

// Held returns the amount of token held on the account of id.
func (l *Ledger) Held(id, token common.Address) *uint256.Int {
	if h, ok := l.holds[holdKey{account: id, token: token}]; ok {
		return h.Clone()
	}
	return dexmath.Zero()
}

// Available returns the balance of token that id can spend: the balance less
// what is held.
func (l *Ledger) Available(id, token common.Address) (*uint256.Int, error) {
	a, err := l.current(id)
	if err != nil {
		return nil, err
	}
	return available(a.Balance(token), l.Held(id, token)), nil
}

func available(balance, held *uint256.Int) *uint256.Int {
	if balance.Lt(held) {
		return dexmath.Zero()
	}
	return new(uint256.Int).Sub(balance, held)
}

// Hold reserves amount of token on the account of id. It fails with
// ErrInvalidAmount if the available balance does not cover amount.
func (l *Ledger) Hold(id, token common.Address, amount *uint256.Int) error {
	free, err := l.Available(id, token)
	if err != nil {
		return err
	}
	if amount == nil || amount.IsZero() {
		return apperrors.ErrInvalidAmount
	}
	if free.Lt(amount) {
		return errors.Wrapf(apperrors.ErrInvalidAmount, "hold %s of available %s", amount.Dec(), free.Dec())
	}
	k := holdKey{account: id, token: token}
	l.holds[k] = new(uint256.Int).Add(l.Held(id, token), amount)
	return nil
}

// Release drops amount from the hold of token on the account of id.
func (l *Ledger) Release(id, token common.Address, amount *uint256.Int) {
	k := holdKey{account: id, token: token}
	h, ok := l.holds[k]
	if !ok {
		return
	}
	if !h.Gt(amount) {
		delete(l.holds, k)
		return
	}
	l.holds[k] = new(uint256.Int).Sub(h, amount)
}

// Range calls fn for every account until fn returns false.
func (l *Ledger) Range(fn func(id common.Address, a *Account) bool) error {
	for id, v := range l.accounts {
		a, err := Current(v)
		if err != nil {
			return err
		}
		if !fn(id, a) {
			return nil
		}
	}
	return nil
}

// Len returns the number of registered accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// Begin opens a transaction over the ledger.
func (l *Ledger) Begin() *Txn {
	return &Txn{ledger: l, touched: make(map[common.Address]*Account)}
}

// Txn is a copy-on-write view of a Ledger.
type Txn struct {
	ledger   *Ledger
	touched  map[common.Address]*Account
	released []release
}

type release struct {
	key    holdKey
	amount *uint256.Int
}

func (t *Txn) account(id common.Address) (*Account, error) {
	if a, ok := t.touched[id]; ok {
		return a, nil
	}
	a, err := t.ledger.current(id)
	if err != nil {
		return nil, err
	}
	c := a.Clone()
	t.touched[id] = c
	return c, nil
}

// Get returns a copy of the account of id as seen by the transaction.
func (t *Txn) Get(id common.Address) (*Account, error) {
	a, err := t.account(id)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// Register creates an empty account for id.
func (t *Txn) Register(id common.Address) error {
	if _, ok := t.touched[id]; ok || t.ledger.IsRegistered(id) {
		return errors.Wrapf(apperrors.ErrAccountRegistered, "account %s", id.Hex())
	}
	t.touched[id] = NewAccount()
	return nil
}

// Deposit credits amount of token to id.
func (t *Txn) Deposit(id, token common.Address, amount *uint256.Int) error {
	a, err := t.account(id)
	if err != nil {
		return err
	}
	sum, err := dexmath.AddAmount(a.Balance(token), amount)
	if err != nil {
		return errors.Wrapf(err, "balance of %s in %s", id.Hex(), token.Hex())
	}
	a.Tokens[token] = sum
	return nil
}

// Withdraw debits amount of token from id. Held amounts cannot be withdrawn.
func (t *Txn) Withdraw(id, token common.Address, amount *uint256.Int) error {
	a, err := t.account(id)
	if err != nil {
		return err
	}
	balance := a.Balance(token)
	held := t.held(id, token)
	if free := available(balance, held); free.Lt(amount) {
		return errors.Wrapf(apperrors.ErrInvalidAmount, "available %s of %s is below %s (held %s)",
			free.Dec(), token.Hex(), amount.Dec(), held.Dec())
	}
	a.Tokens[token] = new(uint256.Int).Sub(balance, amount)
	return nil
}

// Settle debits a held amount of token from id. The hold is released when
// the transaction commits.
func (t *Txn) Settle(id, token common.Address, amount *uint256.Int) error {
	a, err := t.account(id)
	if err != nil {
		return err
	}
	balance := a.Balance(token)
	held := t.held(id, token)
	if held.Lt(amount) || balance.Lt(amount) {
		return errors.Wrapf(apperrors.ErrInvalidAmount, "settle %s of %s: held %s, balance %s",
			amount.Dec(), token.Hex(), held.Dec(), balance.Dec())
	}
	a.Tokens[token] = new(uint256.Int).Sub(balance, amount)
	t.released = append(t.released, release{key: holdKey{account: id, token: token}, amount: amount.Clone()})
	return nil
}

// held is the ledger hold less what the transaction already settled.
func (t *Txn) held(id, token common.Address) *uint256.Int {
	h := t.ledger.Held(id, token)
	k := holdKey{account: id, token: token}
	for _, r := range t.released {
		if r.key == k {
			h = available(h, r.amount)
		}
	}
	return h
}

// TransferShare moves shares between accounts; total supply is unaffected.
func (t *Txn) TransferShare(from, to common.Address, amount *uint256.Int) error {
	src, err := t.account(from)
	if err != nil {
		return err
	}
	dst, err := t.account(to)
	if err != nil {
		return err
	}
	if src.Share.Lt(amount) {
		return errors.Wrapf(apperrors.ErrShareAmountNotEnough, "share %s is below %s", src.Share.Dec(), amount.Dec())
	}
	if from == to {
		return nil
	}
	credited, err := dexmath.AddAmount(dst.Share, amount)
	if err != nil {
		return err
	}
	src.Share = new(uint256.Int).Sub(src.Share, amount)
	dst.Share = credited
	return nil
}

// MintShare credits shares to id. The caller raises total supply in the same unit.
func (t *Txn) MintShare(id common.Address, amount *uint256.Int) error {
	a, err := t.account(id)
	if err != nil {
		return err
	}
	sum, err := dexmath.AddAmount(a.Share, amount)
	if err != nil {
		return err
	}
	a.Share = sum
	return nil
}

// BurnShare debits shares from id. The caller lowers total supply in the same unit.
func (t *Txn) BurnShare(id common.Address, amount *uint256.Int) error {
	a, err := t.account(id)
	if err != nil {
		return err
	}
	if a.Share.Lt(amount) {
		return errors.Wrapf(apperrors.ErrShareAmountNotEnough, "share %s is below %s", a.Share.Dec(), amount.Dec())
	}
	a.Share = new(uint256.Int).Sub(a.Share, amount)
	return nil
}

// Touched returns the accounts the transaction created or changed.
func (t *Txn) Touched() map[common.Address]VersionedAccount {
	out := make(map[common.Address]VersionedAccount, len(t.touched))
	for id, a := range t.touched {
		out[id] = Versioned(a)
	}
	return out
}

// Commit publishes the transaction's accounts to the ledger.
func (t *Txn) Commit() {
	for id, a := range t.touched {
		t.ledger.accounts[id] = Versioned(a)
	}
	for _, r := range t.released {
		t.ledger.Release(r.key.account, r.key.token, r.amount)
	}
	t.touched = make(map[common.Address]*Account)
	t.released = nil
}
