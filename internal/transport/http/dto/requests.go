package dto

// Amounts travel as base-10 strings and identities as hex addresses. Signed
// requests carry a unix-seconds deadline after which their signature expires.

// RegisterRequest represents the body of POST /accounts.
type RegisterRequest struct {
	Account string `json:"account"`
}

// DepositRequest represents the body of POST /deposits.
type DepositRequest struct {
	TxHash string `json:"tx_hash"`
	Msg    string `json:"msg,omitempty"`
}

// LoopbackTransferRequest represents the body of POST /loopback/transfers.
type LoopbackTransferRequest struct {
	Token  string `json:"token"`
	From   string `json:"from"`
	Amount string `json:"amount"`
}

// SwapRequest represents the body of POST /swap.
type SwapRequest struct {
	Account      string `json:"account"`
	TokenIn      string `json:"token_in"`
	AmountIn     string `json:"amount_in"`
	TokenOut     string `json:"token_out"`
	MinAmountOut string `json:"min_amount_out,omitempty"`
	Deadline     int64  `json:"deadline"`
}

// AddLiquidityRequest represents the body of POST /liquidity/add.
type AddLiquidityRequest struct {
	Account   string `json:"account"`
	TokenIn   string `json:"token_in"`
	AmountIn  string `json:"amount_in"`
	TokenOut  string `json:"token_out"`
	AmountOut string `json:"amount_out"`
	Deadline  int64  `json:"deadline"`
}

// RemoveLiquidityRequest represents the body of POST /liquidity/remove.
type RemoveLiquidityRequest struct {
	Account  string `json:"account"`
	Shares   string `json:"shares"`
	Deadline int64  `json:"deadline"`
}

// TransferShareRequest represents the body of POST /shares/transfer.
type TransferShareRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	Deadline int64  `json:"deadline"`
}

// WithdrawRequest represents the body of POST /withdrawals. An empty amount
// withdraws the whole balance.
type WithdrawRequest struct {
	Account  string `json:"account"`
	Token    string `json:"token"`
	Amount   string `json:"amount,omitempty"`
	Deadline int64  `json:"deadline"`
}
