// Package withdrawal tracks two-phase withdrawals: a request is issued before the
// external token transfer runs and is resolved once its outcome is known.
package withdrawal

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// State is the lifecycle stage of a request.
type State string

const (
	StateIssued  State = "issued"
	StateSettled State = "settled"
	StateFailed  State = "failed"
)

// Request is a single withdrawal.
type Request struct {
	ID         uuid.UUID
	Account    common.Address
	Token      common.Address
	Amount     *uint256.Int
	State      State
	IssuedAt   time.Time
	ResolvedAt time.Time
}

func (r *Request) clone() *Request {
	c := *r
	c.Amount = r.Amount.Clone()
	return &c
}

type key struct {
	account common.Address
	token   common.Address
}

// Registry holds requests in memory. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*Request
	pending  map[key]uuid.UUID
	now      func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		requests: make(map[uuid.UUID]*Request),
		pending:  make(map[key]uuid.UUID),
		now:      time.Now,
	}
}

// Issue records a new request. Only one request per account and token may be
// issued at a time.
func (r *Registry) Issue(account, token common.Address, amount *uint256.Int) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{account: account, token: token}
	if id, ok := r.pending[k]; ok {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalPending, "request %s", id)
	}

	req := &Request{
		ID:       uuid.New(),
		Account:  account,
		Token:    token,
		Amount:   amount.Clone(),
		State:    StateIssued,
		IssuedAt: r.now(),
	}
	r.requests[req.ID] = req
	r.pending[k] = req.ID
	return req.clone(), nil
}

// PendingFor returns the id of the issued request for account and token, if any.
func (r *Registry) PendingFor(account, token common.Address) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.pending[key{account: account, token: token}]
	return id, ok
}

// Peek returns the request if it is still issued.
func (r *Registry) Peek(id uuid.UUID) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalNotFound, "request %s", id)
	}
	if req.State != StateIssued {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalSettled, "request %s is %s", id, req.State)
	}
	return req.clone(), nil
}

// Resolve moves an issued request to settled or failed.
func (r *Registry) Resolve(id uuid.UUID, ok bool) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, found := r.requests[id]
	if !found {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalNotFound, "request %s", id)
	}
	if req.State != StateIssued {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalSettled, "request %s is %s", id, req.State)
	}

	req.State = StateFailed
	if ok {
		req.State = StateSettled
	}
	req.ResolvedAt = r.now()
	delete(r.pending, key{account: req.Account, token: req.Token})
	return req.clone(), nil
}

// Get returns a copy of the request.
func (r *Registry) Get(id uuid.UUID) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrWithdrawalNotFound, "request %s", id)
	}
	return req.clone(), nil
}

// Pending returns the number of issued requests.
func (r *Registry) Pending() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.pending)
}
