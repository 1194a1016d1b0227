package pool

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// EventKind names what happened in a pool operation.
type EventKind string

const (
	EventRegistered        EventKind = "registered"
	EventDeposited         EventKind = "deposited"
	EventSwapped           EventKind = "swapped"
	EventLiquidityAdded    EventKind = "liquidity_added"
	EventLiquidityRemoved  EventKind = "liquidity_removed"
	EventShareTransferred  EventKind = "share_transferred"
	EventWithdrawalIssued  EventKind = "withdrawal_issued"
	EventWithdrawalSettled EventKind = "withdrawal_settled"
	EventWithdrawalFailed  EventKind = "withdrawal_failed"
)

// Event is published after an operation has been committed. Fields that do
// not apply to a kind are left zero.
type Event struct {
	Kind         EventKind
	Account      common.Address
	Counterparty common.Address
	TokenIn      common.Address
	TokenOut     common.Address
	AmountIn     *uint256.Int
	AmountOut    *uint256.Int
	Share        *uint256.Int
	RequestID    uuid.UUID
}
