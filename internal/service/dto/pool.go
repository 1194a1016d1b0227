package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/fleshka4/simplepool/internal/reserve"
)

// PoolInfo holds the pool parameters and current figures.
type PoolInfo struct {
	Owner       common.Address
	Tokens      [2]common.Address
	Reserves    [2]*uint256.Int
	Volumes     [2]reserve.Volume
	Fee         uint64
	FeeDivisor  uint64
	TotalShares *uint256.Int
}

// AccountInfo is the balance sheet of a registered account.
type AccountInfo struct {
	ID       common.Address
	Balances map[common.Address]*uint256.Int
	Share    *uint256.Int
}

// QuoteRequest represents a request to price a swap without executing it.
type QuoteRequest struct {
	TokenIn  common.Address
	AmountIn *uint256.Int
	TokenOut common.Address
}
