package validate

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/service/dto"
)

var (
	account = common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	tokenA  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	tokenB  = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

func invalidArgument(t assert.TestingT, err error, _ ...interface{}) bool {
	return assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSwapRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.SwapRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid request",
			req:     dto.SwapRequest{Account: account, TokenIn: tokenA, AmountIn: uint256.NewInt(100), TokenOut: tokenB},
			wantErr: assert.NoError,
		},
		{
			name:    "zero account",
			req:     dto.SwapRequest{TokenIn: tokenA, AmountIn: uint256.NewInt(100), TokenOut: tokenB},
			wantErr: invalidArgument,
		},
		{
			name:    "zero token out",
			req:     dto.SwapRequest{Account: account, TokenIn: tokenA, AmountIn: uint256.NewInt(100)},
			wantErr: invalidArgument,
		},
		{
			name:    "nil amount",
			req:     dto.SwapRequest{Account: account, TokenIn: tokenA, TokenOut: tokenB},
			wantErr: invalidArgument,
		},
		{
			// the pool reports the dedicated error
			name:    "same tokens pass through",
			req:     dto.SwapRequest{Account: account, TokenIn: tokenA, AmountIn: uint256.NewInt(1), TokenOut: tokenA},
			wantErr: assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.wantErr(t, SwapRequestValidate(tt.req))
		})
	}
}

func TestOtherRequests(t *testing.T) {
	t.Parallel()

	one := uint256.NewInt(1)
	tests := []struct {
		name    string
		err     error
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "account", err: Account(account), wantErr: assert.NoError},
		{name: "empty account", err: Account(common.Address{}), wantErr: invalidArgument},
		{name: "quote", err: QuoteRequestValidate(dto.QuoteRequest{TokenIn: tokenA, AmountIn: one, TokenOut: tokenB}), wantErr: assert.NoError},
		{name: "quote without amount", err: QuoteRequestValidate(dto.QuoteRequest{TokenIn: tokenA, TokenOut: tokenB}), wantErr: invalidArgument},
		{name: "deposit", err: DepositRequestValidate(dto.DepositRequest{TxHash: common.HexToHash("0x01"), Msg: "memo"}), wantErr: assert.NoError},
		{name: "deposit without tx hash", err: DepositRequestValidate(dto.DepositRequest{Msg: "memo"}), wantErr: invalidArgument},
		{
			name:    "add liquidity",
			err:     AddLiquidityRequestValidate(dto.AddLiquidityRequest{Account: account, TokenIn: tokenA, AmountIn: one, TokenOut: tokenB, AmountOut: one}),
			wantErr: assert.NoError,
		},
		{
			name:    "add liquidity without amount out",
			err:     AddLiquidityRequestValidate(dto.AddLiquidityRequest{Account: account, TokenIn: tokenA, AmountIn: one, TokenOut: tokenB}),
			wantErr: invalidArgument,
		},
		{name: "remove liquidity", err: RemoveLiquidityRequestValidate(dto.RemoveLiquidityRequest{Account: account, Amount: one}), wantErr: assert.NoError},
		{name: "remove liquidity without amount", err: RemoveLiquidityRequestValidate(dto.RemoveLiquidityRequest{Account: account}), wantErr: invalidArgument},
		{name: "transfer share", err: TransferShareRequestValidate(dto.TransferShareRequest{From: account, To: tokenA, Amount: one}), wantErr: assert.NoError},
		{name: "transfer share without target", err: TransferShareRequestValidate(dto.TransferShareRequest{From: account, Amount: one}), wantErr: invalidArgument},
		{name: "withdraw whole balance", err: WithdrawRequestValidate(dto.WithdrawRequest{Account: account, Token: tokenA}), wantErr: assert.NoError},
		{name: "withdraw without token", err: WithdrawRequestValidate(dto.WithdrawRequest{Account: account}), wantErr: invalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.wantErr(t, tt.err)
		})
	}
}
