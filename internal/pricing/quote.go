package pricing

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
	"github.com/fleshka4/simplepool/internal/reserve"
)

// Quote returns how much of tokenOut a swap of amountIn of tokenIn would pay
// out at the current reserves, after the exchange fee. It does not mutate the store.
func Quote(rs *reserve.Store, tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address, fee uint64) (*uint256.Int, error) {
	if tokenIn == tokenOut {
		return nil, apperrors.ErrNotGetSameToken
	}
	if amountIn == nil || amountIn.IsZero() {
		return nil, apperrors.ErrAmountInInvalid
	}

	inReserve, err := rs.Reserve(tokenIn)
	if err != nil {
		return nil, err
	}
	outReserve, err := rs.Reserve(tokenOut)
	if err != nil {
		return nil, err
	}
	if inReserve.IsZero() || outReserve.IsZero() {
		return nil, apperrors.ErrTokenReserveInvalid
	}

	out, ok := dexmath.GetAmountOut(amountIn, inReserve, outReserve, fee)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrInvariant, "quote %s for reserves %s/%s fee %d",
			amountIn.Dec(), inReserve.Dec(), outReserve.Dec(), fee)
	}
	return dexmath.Narrow(out)
}
