package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/service/validate"
	"github.com/fleshka4/simplepool/internal/withdrawal"
)

// Withdraw moves tokens from the account's pool balance to the account on the
// token ledger.
//
// The pool first issues a request, then the transfer runs outside the pool
// lock, and its outcome settles the request. The balance is debited only when
// the transfer succeeded; a failed transfer returns the failed request along
// with an error wrapping apperrors.ErrCallFailed.
func (s *PoolService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*withdrawal.Request, error) {
	if err := validate.WithdrawRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.WithdrawRequestValidate")
	}

	issued, err := s.pool.BeginWithdraw(req.Account, req.Token, req.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.BeginWithdraw")
	}

	// Once issued, the request is seen through even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	transferErr := s.tokens.Transfer(ctx, issued.Token, issued.Account, issued.Amount)
	if transferErr != nil {
		s.logger.Warn("withdrawal transfer failed",
			zap.Stringer("request", issued.ID),
			zap.Stringer("account", issued.Account),
			zap.Error(transferErr),
		)
	}

	done, err := s.pool.CompleteWithdraw(ctx, issued.ID, transferErr == nil)
	if err != nil {
		if transferErr != nil {
			err = errors.Wrapf(err, "transfer: %v", transferErr)
		}
		return done, errors.Wrap(err, "s.pool.CompleteWithdraw")
	}
	return done, nil
}

// Withdrawal returns a withdrawal request by id.
func (s *PoolService) Withdrawal(_ context.Context, id uuid.UUID) (*withdrawal.Request, error) {
	req, err := s.pool.Withdrawal(id)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.Withdrawal")
	}
	return req, nil
}
