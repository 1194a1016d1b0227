package dto

import (
	"time"
)

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AmountResponse carries a single amount.
type AmountResponse struct {
	Amount string `json:"amount"`
}

// TokenAmount pairs a token with an amount.
type TokenAmount struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

// VolumeResponse is the cumulative swap volume of a token.
type VolumeResponse struct {
	Token  string `json:"token"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// PoolResponse represents the body of GET /pool.
type PoolResponse struct {
	Owner       string           `json:"owner"`
	Tokens      []string         `json:"tokens"`
	Reserves    []TokenAmount    `json:"reserves"`
	Volumes     []VolumeResponse `json:"volumes"`
	ExchangeFee uint64           `json:"exchange_fee"`
	FeeDivisor  uint64           `json:"fee_divisor"`
	TotalShares string           `json:"total_shares"`
}

// RegisterResponse confirms a new account.
type RegisterResponse struct {
	Account string `json:"account"`
}

// AccountResponse represents the body of GET /accounts/{id}.
type AccountResponse struct {
	Account  string        `json:"account"`
	Balances []TokenAmount `json:"balances"`
	Shares   string        `json:"shares"`
}

// StorageBalanceResponse represents the body of GET /accounts/{id}/storage.
type StorageBalanceResponse struct {
	Total uint64 `json:"total"`
}

// CreditResponse is one credited transfer of a deposit.
type CreditResponse struct {
	Ref    string `json:"ref"`
	Token  string `json:"token"`
	Sender string `json:"sender"`
	Amount string `json:"amount"`
}

// DepositResponse carries the credited transfers and the refused part of a deposit.
type DepositResponse struct {
	Credits []CreditResponse `json:"credits"`
	Refused string           `json:"refused"`
}

// LoopbackTransferResponse carries the hash to pass to POST /deposits.
type LoopbackTransferResponse struct {
	TxHash string `json:"tx_hash"`
}

// SwapResponse carries the output of a swap.
type SwapResponse struct {
	AmountOut string `json:"amount_out"`
}

// AddLiquidityResponse carries the minted share.
type AddLiquidityResponse struct {
	Shares string `json:"shares"`
}

// RemoveLiquidityResponse carries the payout in pool token order.
type RemoveLiquidityResponse struct {
	Amounts []TokenAmount `json:"amounts"`
}

// WithdrawalResponse represents a withdrawal request.
type WithdrawalResponse struct {
	ID         string     `json:"id"`
	Account    string     `json:"account"`
	Token      string     `json:"token"`
	Amount     string     `json:"amount"`
	State      string     `json:"state"`
	IssuedAt   time.Time  `json:"issued_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
