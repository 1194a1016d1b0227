// Package reserve keeps the pool-wide reserve, swap volume and share supply figures.
package reserve

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
)

// Volume holds cumulative swap counters for trades whose input was a given token.
type Volume struct {
	Input  *uint256.Int
	Output *uint256.Int
}

func (v Volume) clone() Volume {
	return Volume{Input: v.Input.Clone(), Output: v.Output.Clone()}
}

// Store is the reserve/volume store of a two-token pool. It is not safe for
// concurrent use; the pool serialises access.
type Store struct {
	tokens      [2]common.Address
	reserves    [2]*uint256.Int
	volumes     [2]Volume
	totalShares *uint256.Int
}

// New creates an empty store for the given token pair.
func New(tokens [2]common.Address) (*Store, error) {
	if tokens[0] == (common.Address{}) || tokens[1] == (common.Address{}) {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "token id cannot be empty")
	}
	if tokens[0] == tokens[1] {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "pool tokens must be distinct")
	}

	s := &Store{tokens: tokens, totalShares: dexmath.Zero()}
	for i := range s.reserves {
		s.reserves[i] = dexmath.Zero()
		s.volumes[i] = Volume{Input: dexmath.Zero(), Output: dexmath.Zero()}
	}
	return s, nil
}

// Tokens returns the pool's token ids in creation order.
func (s *Store) Tokens() [2]common.Address {
	return s.tokens
}

// Has reports whether token is one of the pool's tokens.
func (s *Store) Has(token common.Address) bool {
	_, err := s.index(token)
	return err == nil
}

func (s *Store) index(token common.Address) (int, error) {
	for i, t := range s.tokens {
		if t == token {
			return i, nil
		}
	}
	return 0, errors.Wrapf(apperrors.ErrTokenNotInPool, "token %s", token.Hex())
}

// Reserve returns a copy of the reserve held for token.
func (s *Store) Reserve(token common.Address) (*uint256.Int, error) {
	i, err := s.index(token)
	if err != nil {
		return nil, err
	}
	return s.reserves[i].Clone(), nil
}

// SetReserve overwrites the reserve of token.
func (s *Store) SetReserve(token common.Address, amount *uint256.Int) error {
	i, err := s.index(token)
	if err != nil {
		return err
	}
	if _, err := dexmath.Narrow(amount); err != nil {
		return err
	}
	s.reserves[i] = amount.Clone()
	return nil
}

// AddReserve increases the reserve of token by amount.
func (s *Store) AddReserve(token common.Address, amount *uint256.Int) error {
	i, err := s.index(token)
	if err != nil {
		return err
	}
	sum, err := dexmath.AddAmount(s.reserves[i], amount)
	if err != nil {
		return errors.Wrapf(err, "reserve of %s", token.Hex())
	}
	s.reserves[i] = sum
	return nil
}

// SubReserve decreases the reserve of token by amount. Going below zero is an
// invariant violation, never a clamp.
func (s *Store) SubReserve(token common.Address, amount *uint256.Int) error {
	i, err := s.index(token)
	if err != nil {
		return err
	}
	diff, err := dexmath.SubAmount(s.reserves[i], amount)
	if err != nil {
		return errors.Wrapf(apperrors.ErrInvariant, "reserve of %s would go negative: %v", token.Hex(), err)
	}
	s.reserves[i] = diff
	return nil
}

// RecordVolume adds a completed swap to the counters of tokenIn.
func (s *Store) RecordVolume(tokenIn common.Address, amountIn, amountOut *uint256.Int) error {
	i, err := s.index(tokenIn)
	if err != nil {
		return err
	}
	// Counters are telemetry; they live on the full 256-bit range.
	in, overflow := new(uint256.Int).AddOverflow(s.volumes[i].Input, amountIn)
	if overflow {
		return errors.Wrap(apperrors.ErrOverflow, "input volume")
	}
	out, overflow := new(uint256.Int).AddOverflow(s.volumes[i].Output, amountOut)
	if overflow {
		return errors.Wrap(apperrors.ErrOverflow, "output volume")
	}
	s.volumes[i] = Volume{Input: in, Output: out}
	return nil
}

// Volume returns a copy of the counters of token.
func (s *Store) Volume(token common.Address) (Volume, error) {
	i, err := s.index(token)
	if err != nil {
		return Volume{}, err
	}
	return s.volumes[i].clone(), nil
}

// Volumes returns copies of both counters in token order.
func (s *Store) Volumes() [2]Volume {
	return [2]Volume{s.volumes[0].clone(), s.volumes[1].clone()}
}

// TotalShares returns a copy of the outstanding share supply.
func (s *Store) TotalShares() *uint256.Int {
	return s.totalShares.Clone()
}

// MintShares increases the outstanding share supply.
func (s *Store) MintShares(amount *uint256.Int) error {
	sum, err := dexmath.AddAmount(s.totalShares, amount)
	if err != nil {
		return errors.Wrap(err, "total share supply")
	}
	s.totalShares = sum
	return nil
}

// BurnShares decreases the outstanding share supply.
func (s *Store) BurnShares(amount *uint256.Int) error {
	diff, err := dexmath.SubAmount(s.totalShares, amount)
	if err != nil {
		return errors.Wrapf(apperrors.ErrInvariant, "total share supply would go negative: %v", err)
	}
	s.totalShares = diff
	return nil
}

// Clone returns a deep copy used as the working copy of an operation.
func (s *Store) Clone() *Store {
	c := &Store{tokens: s.tokens, totalShares: s.totalShares.Clone()}
	for i := range s.reserves {
		c.reserves[i] = s.reserves[i].Clone()
		c.volumes[i] = s.volumes[i].clone()
	}
	return c
}

// Snapshot is the plain data behind a Store.
type Snapshot struct {
	Tokens      [2]common.Address
	Reserves    [2]*uint256.Int
	Volumes     [2]Volume
	TotalShares *uint256.Int
}

// Snapshot copies the store contents out.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Tokens:      s.tokens,
		Reserves:    [2]*uint256.Int{s.reserves[0].Clone(), s.reserves[1].Clone()},
		Volumes:     s.Volumes(),
		TotalShares: s.totalShares.Clone(),
	}
}

// FromSnapshot rebuilds a store, checking every amount fits the amount domain.
func FromSnapshot(snap Snapshot) (*Store, error) {
	s, err := New(snap.Tokens)
	if err != nil {
		return nil, err
	}
	for i, t := range snap.Tokens {
		if snap.Reserves[i] == nil || snap.Volumes[i].Input == nil || snap.Volumes[i].Output == nil {
			return nil, errors.Wrapf(apperrors.ErrInvariant, "missing figures for %s", t.Hex())
		}
		if err := s.SetReserve(t, snap.Reserves[i]); err != nil {
			return nil, err
		}
		s.volumes[i] = snap.Volumes[i].clone()
	}
	if snap.TotalShares == nil {
		return nil, errors.Wrap(apperrors.ErrInvariant, "missing total share supply")
	}
	if _, err := dexmath.Narrow(snap.TotalShares); err != nil {
		return nil, err
	}
	s.totalShares = snap.TotalShares.Clone()
	return s, nil
}
