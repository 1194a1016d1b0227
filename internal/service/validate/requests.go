package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/service/dto"
)

var zeroAddress = common.Address{}

func addresses(named map[string]common.Address) error {
	for name, addr := range named {
		if addr == zeroAddress {
			return errors.Wrapf(apperrors.ErrInvalidArgument, "%s address cannot be empty", name)
		}
	}
	return nil
}

func amount(name string, v *uint256.Int) error {
	if v == nil {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s cannot be empty", name)
	}
	return nil
}

// Account validates an account id.
func Account(id common.Address) error {
	return addresses(map[string]common.Address{"account": id})
}

// QuoteRequestValidate validates a quote request.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	if err := addresses(map[string]common.Address{"token_in": req.TokenIn, "token_out": req.TokenOut}); err != nil {
		return err
	}
	return amount("amount_in", req.AmountIn)
}

// DepositRequestValidate validates a deposit notification.
func DepositRequestValidate(req dto.DepositRequest) error {
	if req.TxHash == (common.Hash{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "tx hash cannot be empty")
	}
	return nil
}

// SwapRequestValidate validates a swap request. A missing minimum output means zero.
func SwapRequestValidate(req dto.SwapRequest) error {
	if err := addresses(map[string]common.Address{
		"account": req.Account, "token_in": req.TokenIn, "token_out": req.TokenOut,
	}); err != nil {
		return err
	}
	return amount("amount_in", req.AmountIn)
}

// AddLiquidityRequestValidate validates an add-liquidity request.
func AddLiquidityRequestValidate(req dto.AddLiquidityRequest) error {
	if err := addresses(map[string]common.Address{
		"account": req.Account, "token_in": req.TokenIn, "token_out": req.TokenOut,
	}); err != nil {
		return err
	}
	if err := amount("amount_in", req.AmountIn); err != nil {
		return err
	}
	return amount("amount_out", req.AmountOut)
}

// RemoveLiquidityRequestValidate validates a remove-liquidity request.
func RemoveLiquidityRequestValidate(req dto.RemoveLiquidityRequest) error {
	if err := Account(req.Account); err != nil {
		return err
	}
	return amount("amount", req.Amount)
}

// TransferShareRequestValidate validates a share transfer.
func TransferShareRequestValidate(req dto.TransferShareRequest) error {
	if err := addresses(map[string]common.Address{"from": req.From, "to": req.To}); err != nil {
		return err
	}
	return amount("amount", req.Amount)
}

// WithdrawRequestValidate validates a withdrawal request. Amount is optional.
func WithdrawRequestValidate(req dto.WithdrawRequest) error {
	return addresses(map[string]common.Address{"account": req.Account, "token": req.Token})
}
