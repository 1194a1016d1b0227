package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/service/validate"
)

// Register creates an account for id.
func (s *PoolService) Register(ctx context.Context, id common.Address) error {
	if err := validate.Account(id); err != nil {
		return errors.Wrap(err, "validate.Account")
	}
	return errors.Wrap(s.pool.Register(ctx, id), "s.pool.Register")
}

// Deposit credits the pool-token transfers a chain transaction made into the
// pool's custody, each to its sender. Transfers credited before are skipped,
// so a deposit can be resubmitted after a partial failure; it fails with
// apperrors.ErrTransferCredited only when nothing was left to credit.
func (s *PoolService) Deposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResult, error) {
	if err := validate.DepositRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.DepositRequestValidate")
	}

	inbound, err := s.tokens.Received(ctx, req.TxHash)
	if err != nil {
		return nil, errors.Wrap(err, "s.tokens.Received")
	}

	tokens := s.pool.Tokens()
	res := &dto.DepositResult{Refused: uint256.NewInt(0)}
	var seen int
	for _, in := range inbound {
		if in.Token != tokens[0] && in.Token != tokens[1] {
			s.logger.Warn("transfer of a token outside the pool ignored",
				zap.String("ref", in.Ref()),
				zap.Stringer("token", in.Token),
				zap.Stringer("from", in.From),
			)
			continue
		}
		seen++

		refused, err := s.pool.OnTransfer(ctx, in.Ref(), in.Token, in.From, in.Amount, req.Msg)
		switch {
		case errors.Is(err, apperrors.ErrTransferCredited):
			continue
		case err != nil:
			return nil, errors.Wrap(err, "s.pool.OnTransfer")
		}
		res.Refused.Add(res.Refused, refused)
		res.Credits = append(res.Credits, dto.Credit{Ref: in.Ref(), Token: in.Token, Sender: in.From, Amount: in.Amount})
	}

	switch {
	case seen == 0:
		return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s moved no pool token", req.TxHash.Hex())
	case len(res.Credits) == 0:
		return nil, errors.Wrapf(apperrors.ErrTransferCredited, "transaction %s", req.TxHash.Hex())
	}
	return res, nil
}

// Swap exchanges tokens from the account's balance.
func (s *PoolService) Swap(ctx context.Context, req dto.SwapRequest) (*uint256.Int, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.SwapRequestValidate")
	}

	out, err := s.pool.Swap(ctx, req.Account, req.TokenIn, req.AmountIn, req.TokenOut, req.MinAmountOut)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.Swap")
	}
	return out, nil
}

// AddLiquidity supplies both tokens and returns the minted share.
func (s *PoolService) AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*uint256.Int, error) {
	if err := validate.AddLiquidityRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.AddLiquidityRequestValidate")
	}

	share, err := s.pool.AddLiquidity(ctx, req.Account, req.TokenIn, req.AmountIn, req.TokenOut, req.AmountOut)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.AddLiquidity")
	}
	return share, nil
}

// RemoveLiquidity redeems shares for both tokens, returned in pool token order.
func (s *PoolService) RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) ([2]*uint256.Int, error) {
	if err := validate.RemoveLiquidityRequestValidate(req); err != nil {
		return [2]*uint256.Int{}, errors.Wrap(err, "validate.RemoveLiquidityRequestValidate")
	}

	payouts, err := s.pool.RemoveLiquidity(ctx, req.Account, req.Amount)
	if err != nil {
		return [2]*uint256.Int{}, errors.Wrap(err, "s.pool.RemoveLiquidity")
	}
	return payouts, nil
}

// TransferShare moves shares between accounts.
func (s *PoolService) TransferShare(ctx context.Context, req dto.TransferShareRequest) error {
	if err := validate.TransferShareRequestValidate(req); err != nil {
		return errors.Wrap(err, "validate.TransferShareRequestValidate")
	}
	return errors.Wrap(s.pool.TransferShare(ctx, req.From, req.To, req.Amount), "s.pool.TransferShare")
}
