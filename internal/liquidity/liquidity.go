// Package liquidity issues and redeems pool shares.
//
// Both operations mutate a ledger transaction and a reserve working copy
// supplied by the caller; on error the caller discards both.
package liquidity

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
	"github.com/fleshka4/simplepool/internal/ledger"
	"github.com/fleshka4/simplepool/internal/reserve"
)

// InitialShareSupply is minted to the first liquidity provider.
var InitialShareSupply = uint256.MustFromDecimal("1000000000000000000000000")

// Add moves amountIn of tokenIn and amountOut of tokenOut from the account's
// balance into the reserves and mints shares for it.
func Add(lg *ledger.Txn, rs *reserve.Store, account, tokenIn common.Address, amountIn *uint256.Int,
	tokenOut common.Address, amountOut *uint256.Int,
) (*uint256.Int, error) {
	if tokenIn == tokenOut {
		return nil, apperrors.ErrTokenID
	}
	if amountIn == nil || amountOut == nil || amountIn.IsZero() || amountOut.IsZero() {
		return nil, apperrors.ErrInvalidAmount
	}
	if !rs.Has(tokenIn) {
		return nil, errors.Wrapf(apperrors.ErrTokenNotInPool, "token %s", tokenIn.Hex())
	}
	if !rs.Has(tokenOut) {
		return nil, errors.Wrapf(apperrors.ErrTokenNotInPool, "token %s", tokenOut.Hex())
	}

	if err := lg.Withdraw(account, tokenIn, amountIn); err != nil {
		return nil, err
	}
	if err := lg.Withdraw(account, tokenOut, amountOut); err != nil {
		return nil, err
	}

	inReserve, err := rs.Reserve(tokenIn)
	if err != nil {
		return nil, err
	}
	outReserve, err := rs.Reserve(tokenOut)
	if err != nil {
		return nil, err
	}

	var share *uint256.Int
	supply := rs.TotalShares()
	if supply.IsZero() {
		share = InitialShareSupply.Clone()
	} else {
		share, err = proportionalShare(supply, inReserve, amountIn, outReserve, amountOut)
		if err != nil {
			return nil, err
		}
	}

	if err := rs.AddReserve(tokenIn, amountIn); err != nil {
		return nil, err
	}
	if err := rs.AddReserve(tokenOut, amountOut); err != nil {
		return nil, err
	}

	if share.IsZero() {
		return nil, apperrors.ErrZeroShare
	}
	if err := mint(lg, rs, account, share); err != nil {
		return nil, err
	}
	return share, nil
}

func proportionalShare(supply, inReserve, amountIn, outReserve, amountOut *uint256.Int) (*uint256.Int, error) {
	if inReserve.IsZero() || outReserve.IsZero() {
		return nil, apperrors.ErrReserveInvalid
	}

	// Both sides are products of 128-bit values and fit 256 bits.
	lhs := new(uint256.Int).Mul(inReserve, amountOut)
	rhs := new(uint256.Int).Mul(outReserve, amountIn)
	if !lhs.Eq(rhs) {
		return nil, errors.Wrapf(apperrors.ErrRatioMismatch, "%s / %s != %s / %s",
			inReserve.Dec(), outReserve.Dec(), amountIn.Dec(), amountOut.Dec())
	}

	byIn, err := dexmath.MulDiv(amountIn, supply, inReserve)
	if err != nil {
		return nil, errors.Wrap(err, "dexmath.MulDiv")
	}
	byOut, err := dexmath.MulDiv(amountOut, supply, outReserve)
	if err != nil {
		return nil, errors.Wrap(err, "dexmath.MulDiv")
	}
	return dexmath.Narrow(dexmath.Min(byIn, byOut))
}

func mint(lg *ledger.Txn, rs *reserve.Store, account common.Address, share *uint256.Int) error {
	if err := lg.MintShare(account, share); err != nil {
		return err
	}
	return rs.MintShares(share)
}

// Remove burns amount of the account's shares and credits it with the
// pro-rata part of both reserves, measured against the supply before the burn.
// Payouts are returned in pool token order.
func Remove(lg *ledger.Txn, rs *reserve.Store, account common.Address, amount *uint256.Int) ([2]*uint256.Int, error) {
	var payouts [2]*uint256.Int

	if amount == nil || amount.IsZero() {
		return payouts, apperrors.ErrInvalidAmount
	}

	supply := rs.TotalShares()
	if err := lg.BurnShare(account, amount); err != nil {
		return payouts, err
	}
	if err := rs.BurnShares(amount); err != nil {
		return payouts, err
	}

	for i, token := range rs.Tokens() {
		balance, err := rs.Reserve(token)
		if err != nil {
			return payouts, err
		}
		payout, err := dexmath.MulDiv(amount, balance, supply)
		if err != nil {
			return payouts, errors.Wrap(err, "dexmath.MulDiv")
		}
		if err := rs.SubReserve(token, payout); err != nil {
			return payouts, err
		}
		if err := lg.Deposit(account, token, payout); err != nil {
			return payouts, err
		}
		payouts[i] = payout
	}
	return payouts, nil
}
