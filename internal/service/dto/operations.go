package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// DepositRequest names a chain transaction that moved pool tokens into the
// pool's custody. Every such transfer is credited to its sender.
type DepositRequest struct {
	TxHash common.Hash
	Msg    string
}

// Credit is one transfer credited by a deposit.
type Credit struct {
	Ref    string
	Token  common.Address
	Sender common.Address
	Amount *uint256.Int
}

// DepositResult lists the credited transfers. Refused is always zero.
type DepositResult struct {
	Credits []Credit
	Refused *uint256.Int
}

// SwapRequest represents a request to exchange AmountIn of TokenIn for TokenOut.
type SwapRequest struct {
	Account      common.Address
	TokenIn      common.Address
	AmountIn     *uint256.Int
	TokenOut     common.Address
	MinAmountOut *uint256.Int
}

// AddLiquidityRequest represents a request to supply both tokens to the pool.
type AddLiquidityRequest struct {
	Account   common.Address
	TokenIn   common.Address
	AmountIn  *uint256.Int
	TokenOut  common.Address
	AmountOut *uint256.Int
}

// RemoveLiquidityRequest represents a request to redeem Amount shares.
type RemoveLiquidityRequest struct {
	Account common.Address
	Amount  *uint256.Int
}

// TransferShareRequest represents a request to move shares between accounts.
type TransferShareRequest struct {
	From   common.Address
	To     common.Address
	Amount *uint256.Int
}

// WithdrawRequest represents a request to move tokens out of the pool.
// A nil Amount withdraws the whole balance.
type WithdrawRequest struct {
	Account common.Address
	Token   common.Address
	Amount  *uint256.Int
}
