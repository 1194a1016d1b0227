package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/service/validate"
)

// Pool returns the pool parameters, reserves, volumes and share supply.
func (s *PoolService) Pool(_ context.Context) dto.PoolInfo {
	fee, divisor := s.pool.Fee()
	return dto.PoolInfo{
		Owner:       s.pool.Owner(),
		Tokens:      s.pool.Tokens(),
		Reserves:    s.pool.Reserves(),
		Volumes:     s.pool.Volumes(),
		Fee:         fee,
		FeeDivisor:  divisor,
		TotalShares: s.pool.TotalShareSupply(),
	}
}

// Quote prices a swap at the current reserves.
func (s *PoolService) Quote(_ context.Context, req dto.QuoteRequest) (*uint256.Int, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, errors.Wrap(err, "validate.QuoteRequestValidate")
	}

	out, err := s.pool.Quote(req.TokenIn, req.AmountIn, req.TokenOut)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.Quote")
	}
	return out, nil
}

// Account returns the balances and share of a registered account.
func (s *PoolService) Account(_ context.Context, id common.Address) (*dto.AccountInfo, error) {
	if err := validate.Account(id); err != nil {
		return nil, errors.Wrap(err, "validate.Account")
	}

	acc, err := s.pool.AccountInfo(id)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.AccountInfo")
	}

	info := &dto.AccountInfo{
		ID:       id,
		Balances: make(map[common.Address]*uint256.Int, len(s.pool.Tokens())),
		Share:    acc.Share,
	}
	for _, token := range s.pool.Tokens() {
		info.Balances[token] = acc.Balance(token)
	}
	return info, nil
}

// Share returns the share balance of a registered account.
func (s *PoolService) Share(_ context.Context, id common.Address) (*uint256.Int, error) {
	if err := validate.Account(id); err != nil {
		return nil, errors.Wrap(err, "validate.Account")
	}

	share, err := s.pool.ShareOf(id)
	if err != nil {
		return nil, errors.Wrap(err, "s.pool.ShareOf")
	}
	return share, nil
}

// StorageBalance reports 1 for a registered account and 0 otherwise.
func (s *PoolService) StorageBalance(_ context.Context, id common.Address) (uint64, error) {
	if err := validate.Account(id); err != nil {
		return 0, errors.Wrap(err, "validate.Account")
	}
	return s.pool.StorageBalanceOf(id), nil
}
