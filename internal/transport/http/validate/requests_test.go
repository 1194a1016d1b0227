package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	account  = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	tokenIn  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	tokenOut = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	amountIn = "1000000000000000000"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		queryParams    map[string]string
		method         string
		expectedStatus int
		wantErr        assert.ErrorAssertionFunc
	}{
		{
			name: "valid request",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
				"amount_in": amountIn,
			},
			method:         http.MethodGet,
			expectedStatus: 0,
			wantErr:        assert.NoError,
		},
		{
			name: "wrong http method",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
				"amount_in": amountIn,
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			wantErr:        assert.Error,
		},
		{
			name: "missing token_in parameter",
			queryParams: map[string]string{
				"token_out": tokenOut,
				"amount_in": amountIn,
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "missing amount_in parameter",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "invalid token_out address format",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": "invalid_address",
				"amount_in": amountIn,
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "negative amount_in",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
				"amount_in": "-100",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "amount_in above 128 bits",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
				"amount_in": "340282366920938463463374607431768211456",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "zero amount_in is left to the pool",
			queryParams: map[string]string{
				"token_in":  tokenIn,
				"token_out": tokenOut,
				"amount_in": "0",
			},
			method:         http.MethodGet,
			expectedStatus: 0,
			wantErr:        assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/quote", nil)
			q := req.URL.Query()
			for key, value := range tt.queryParams {
				q.Add(key, value)
			}
			req.URL.RawQuery = q.Encode()

			result, status, err := QuoteRequestValidate(req)

			tt.wantErr(t, err)
			require.Equal(t, tt.expectedStatus, status)

			if result != nil {
				require.Equal(t, common.HexToAddress(tt.queryParams["token_in"]), result.TokenIn)
				require.Equal(t, common.HexToAddress(tt.queryParams["token_out"]), result.TokenOut)
				require.Equal(t, tt.queryParams["amount_in"], result.AmountIn.Dec())
			}
		})
	}
}

func TestSwapRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		method         string
		expectedStatus int
		wantErr        assert.ErrorAssertionFunc
		wantMin        string
	}{
		{
			name: "valid request",
			body: `{"account":"` + account + `","token_in":"` + tokenIn + `","amount_in":"100","token_out":"` + tokenOut +
				`","min_amount_out":"89"}`,
			method:  http.MethodPost,
			wantErr: assert.NoError,
			wantMin: "89",
		},
		{
			name:    "min_amount_out omitted",
			body:    `{"account":"` + account + `","token_in":"` + tokenIn + `","amount_in":"100","token_out":"` + tokenOut + `"}`,
			method:  http.MethodPost,
			wantErr: assert.NoError,
		},
		{
			name:           "wrong http method",
			body:           `{}`,
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
			wantErr:        assert.Error,
		},
		{
			name:           "malformed json",
			body:           `{"account":`,
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name:           "unknown field",
			body:           `{"account":"` + account + `","slippage":"1"}`,
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name:           "missing account",
			body:           `{"token_in":"` + tokenIn + `","amount_in":"100","token_out":"` + tokenOut + `"}`,
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
		{
			name: "bad min_amount_out",
			body: `{"account":"` + account + `","token_in":"` + tokenIn + `","amount_in":"100","token_out":"` + tokenOut +
				`","min_amount_out":"1e3"}`,
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			wantErr:        assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/swap", strings.NewReader(tt.body))
			result, status, err := SwapRequestValidate(req)

			tt.wantErr(t, err)
			require.Equal(t, tt.expectedStatus, status)
			if result == nil {
				return
			}
			require.Equal(t, common.HexToAddress(account), result.Account)
			require.Equal(t, uint64(100), result.AmountIn.Uint64())
			if tt.wantMin == "" {
				require.Nil(t, result.MinAmountOut)
			} else {
				require.Equal(t, tt.wantMin, result.MinAmountOut.Dec())
			}
		})
	}
}

func TestBodyValidators(t *testing.T) {
	t.Parallel()

	t.Run("register", func(t *testing.T) {
		t.Parallel()

		id, status, err := RegisterRequestValidate(httptest.NewRequest(http.MethodPost, "/accounts",
			strings.NewReader(`{"account":"`+account+`"}`)))
		require.NoError(t, err)
		require.Zero(t, status)
		require.Equal(t, common.HexToAddress(account), id)

		_, status, err = RegisterRequestValidate(httptest.NewRequest(http.MethodPost, "/accounts",
			strings.NewReader(`{"account":""}`)))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("deposit", func(t *testing.T) {
		t.Parallel()

		txHash := "0x5f1c3e0a9d2b7c4e8f6a1b3d5c7e9f0a2b4c6d8e0f1a3b5c7d9e1f2a4b6c8d0e"
		req, _, err := DepositRequestValidate(httptest.NewRequest(http.MethodPost, "/deposits",
			strings.NewReader(`{"tx_hash":"`+txHash+`","msg":"hi"}`)))
		require.NoError(t, err)
		require.Equal(t, common.HexToHash(txHash), req.TxHash)
		require.Equal(t, "hi", req.Msg)

		for _, body := range []string{
			`{"tx_hash":"0x1234"}`,
			`{"tx_hash":"0x` + strings.Repeat("00", 32) + `"}`,
			`{"token":"` + tokenIn + `","sender":"` + account + `","amount":"5"}`,
		} {
			_, status, err := DepositRequestValidate(httptest.NewRequest(http.MethodPost, "/deposits", strings.NewReader(body)))
			require.Error(t, err, body)
			require.Equal(t, http.StatusBadRequest, status)
		}
	})

	t.Run("loopback transfer", func(t *testing.T) {
		t.Parallel()

		req, _, err := LoopbackTransferValidate(httptest.NewRequest(http.MethodPost, "/loopback/transfers",
			strings.NewReader(`{"token":"`+tokenIn+`","from":"`+account+`","amount":"5"}`)))
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(account), req.From)
		require.Equal(t, uint64(5), req.Amount.Uint64())

		_, status, err := LoopbackTransferValidate(httptest.NewRequest(http.MethodPost, "/loopback/transfers",
			strings.NewReader(`{"token":"`+tokenIn+`","amount":"5"}`)))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("add liquidity", func(t *testing.T) {
		t.Parallel()

		req, _, err := AddLiquidityRequestValidate(httptest.NewRequest(http.MethodPost, "/liquidity/add",
			strings.NewReader(`{"account":"`+account+`","token_in":"`+tokenIn+`","amount_in":"10","token_out":"`+
				tokenOut+`","amount_out":"20"}`)))
		require.NoError(t, err)
		require.Equal(t, uint64(20), req.AmountOut.Uint64())

		_, status, err := AddLiquidityRequestValidate(httptest.NewRequest(http.MethodPost, "/liquidity/add",
			strings.NewReader(`{"account":"`+account+`","token_in":"`+tokenIn+`","amount_in":"10","token_out":"`+
				tokenOut+`"}`)))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("remove liquidity", func(t *testing.T) {
		t.Parallel()

		req, _, err := RemoveLiquidityRequestValidate(httptest.NewRequest(http.MethodPost, "/liquidity/remove",
			strings.NewReader(`{"account":"`+account+`","shares":"7"}`)))
		require.NoError(t, err)
		require.Equal(t, uint64(7), req.Amount.Uint64())
	})

	t.Run("transfer share", func(t *testing.T) {
		t.Parallel()

		req, _, err := TransferShareRequestValidate(httptest.NewRequest(http.MethodPost, "/shares/transfer",
			strings.NewReader(`{"from":"`+account+`","to":"`+tokenIn+`","amount":"3"}`)))
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(tokenIn), req.To)

		_, status, err := TransferShareRequestValidate(httptest.NewRequest(http.MethodPost, "/shares/transfer",
			strings.NewReader(`{"from":"`+account+`","to":"0x12","amount":"3"}`)))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("withdraw", func(t *testing.T) {
		t.Parallel()

		req, _, err := WithdrawRequestValidate(httptest.NewRequest(http.MethodPost, "/withdrawals",
			strings.NewReader(`{"account":"`+account+`","token":"`+tokenIn+`"}`)))
		require.NoError(t, err)
		require.Nil(t, req.Amount)

		req, _, err = WithdrawRequestValidate(httptest.NewRequest(http.MethodPost, "/withdrawals",
			strings.NewReader(`{"account":"`+account+`","token":"`+tokenIn+`","amount":"9"}`)))
		require.NoError(t, err)
		require.Equal(t, uint64(9), req.Amount.Uint64())
	})
}

func TestPathValues(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/"+account, nil)
	req.SetPathValue("id", account)
	id, status, err := AccountID(req)
	require.NoError(t, err)
	require.Zero(t, status)
	require.Equal(t, common.HexToAddress(account), id)

	req.SetPathValue("id", "nobody")
	_, status, err = AccountID(req)
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, status)

	want := uuid.New()
	req = httptest.NewRequest(http.MethodGet, "/withdrawals/"+want.String(), nil)
	req.SetPathValue("id", want.String())
	got, _, err := WithdrawalID(req)
	require.NoError(t, err)
	require.Equal(t, want, got)

	req.SetPathValue("id", "42")
	_, status, err = WithdrawalID(req)
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, status)
}
