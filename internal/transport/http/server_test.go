package http

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/config"
	"github.com/fleshka4/simplepool/internal/reserve"
	servicedto "github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/service/mock"
	"github.com/fleshka4/simplepool/internal/transport/http/dto"
	"github.com/fleshka4/simplepool/internal/withdrawal"
)

const (
	tokenA = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	tokenB = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

var (
	accountKey = crypto.ToECDSAUnsafe(common.FromHex("0xb71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"))
	account    = crypto.PubkeyToAddress(accountKey.PublicKey).Hex()
)

var poolInfo = servicedto.PoolInfo{
	Owner:    common.HexToAddress(account),
	Tokens:   [2]common.Address{common.HexToAddress(tokenA), common.HexToAddress(tokenB)},
	Reserves: [2]*uint256.Int{uint256.NewInt(1100), uint256.NewInt(911)},
	Volumes: [2]reserve.Volume{
		{Input: uint256.NewInt(100), Output: uint256.NewInt(0)},
		{Input: uint256.NewInt(0), Output: uint256.NewInt(89)},
	},
	Fee:         30,
	FeeDivisor:  10_000,
	TotalShares: uint256.NewInt(1000),
}

func newTestServer(t *testing.T) (*Server, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)
	return NewServer(mockService, config.Config{}, prometheus.NewRegistry(), nil), mockService
}

func do(t *testing.T, h http.Handler, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return serve(t, h, httptest.NewRequest(method, target, r))
}

var deadlineSeq atomic.Int64

// withDeadline adds a deadline to a JSON object body. Each call picks a new
// deadline, so equal bodies still sign as distinct requests.
func withDeadline(body string) string {
	deadline := time.Now().Add(time.Minute + time.Duration(deadlineSeq.Add(1))*time.Second).Unix()
	return strings.TrimSuffix(body, "}") + `,"deadline":` + strconv.FormatInt(deadline, 10) + `}`
}

func signature(t *testing.T, key *ecdsa.PrivateKey, body string) string {
	t.Helper()

	sig, err := crypto.Sign(accounts.TextHash([]byte(body)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

// doSigned posts body with a fresh deadline, signed by key.
func doSigned(t *testing.T, h http.Handler, target, body string, key *ecdsa.PrivateKey) (*http.Response, []byte) {
	t.Helper()

	body = withDeadline(body)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(SignatureHeader, signature(t, key, body))
	return serve(t, h, req)
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	resp := w.Result()
	defer func(Body io.ReadCloser) {
		require.NoError(t, Body.Close())
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeBody[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestPingHandler(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	resp, body := do(t, server.mux, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(body))
}

func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "hits"})
	reg.MustRegister(counter)
	counter.Add(3)

	server := NewServer(nil, config.Config{}, reg, nil)
	resp, body := do(t, server.mux, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "test_hits_total 3")
}

func TestPoolHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	mockService.EXPECT().Pool(gomock.Any()).Return(poolInfo)

	resp, raw := do(t, server.mux, http.MethodGet, "/pool", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := decodeBody[dto.PoolResponse](t, raw)
	require.Equal(t, common.HexToAddress(account).Hex(), body.Owner)
	require.Equal(t, []string{poolInfo.Tokens[0].Hex(), poolInfo.Tokens[1].Hex()}, body.Tokens)
	require.Equal(t, "911", body.Reserves[1].Amount)
	require.Equal(t, "89", body.Volumes[1].Output)
	require.Equal(t, uint64(30), body.ExchangeFee)
	require.Equal(t, uint64(10_000), body.FeeDivisor)
	require.Equal(t, "1000", body.TotalShares)
}

func TestQuoteHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	target := "/quote?token_in=" + tokenA + "&token_out=" + tokenB + "&amount_in=100"

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Quote(gomock.Any(), servicedto.QuoteRequest{
				TokenIn:  common.HexToAddress(tokenA),
				AmountIn: uint256.NewInt(100),
				TokenOut: common.HexToAddress(tokenB),
			}).
			Return(uint256.NewInt(89), nil)

		resp, raw := do(t, server.mux, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "89", decodeBody[dto.AmountResponse](t, raw).Amount)
	})

	t.Run("validation error - missing params", func(t *testing.T) {
		resp, raw := do(t, server.mux, http.MethodGet, "/quote?token_in="+tokenA, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotEmpty(t, decodeBody[dto.ErrorResponse](t, raw).Error)
	})

	t.Run("validation error - bad amount_in", func(t *testing.T) {
		resp, _ := do(t, server.mux, http.MethodGet,
			"/quote?token_in="+tokenA+"&token_out="+tokenB+"&amount_in=-1000", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	testServiceError := func(t *testing.T, serviceError error, expectedStatusCode int) {
		mockService.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, serviceError)

		resp, _ := do(t, server.mux, http.MethodGet, target, "")
		require.Equal(t, expectedStatusCode, resp.StatusCode)
	}

	t.Run("service error - same token", func(t *testing.T) {
		testServiceError(t, errors.Wrap(apperrors.ErrNotGetSameToken, "s.pool.Quote"), http.StatusBadRequest)
	})

	t.Run("service error - token not in pool", func(t *testing.T) {
		testServiceError(t, apperrors.ErrTokenNotInPool, http.StatusBadRequest)
	})

	t.Run("service error - empty reserves", func(t *testing.T) {
		testServiceError(t, apperrors.ErrTokenReserveInvalid, http.StatusBadRequest)
	})

	t.Run("service error - invariant", func(t *testing.T) {
		testServiceError(t, apperrors.ErrInvariant, http.StatusInternalServerError)
	})

	t.Run("service error - unknown error", func(t *testing.T) {
		testServiceError(t, errors.New("unknown error"), http.StatusInternalServerError)
	})

	t.Run("wrong http method", func(t *testing.T) {
		resp, _ := do(t, server.mux, http.MethodPost, "/quote", "")
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestAccountHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	id := common.HexToAddress(account)

	t.Run("register", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), id).Return(nil)
		resp, raw := do(t, server.mux, http.MethodPost, "/accounts", `{"account":"`+account+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, id.Hex(), decodeBody[dto.RegisterResponse](t, raw).Account)

		mockService.EXPECT().Register(gomock.Any(), id).Return(apperrors.ErrAccountRegistered)
		resp, _ = do(t, server.mux, http.MethodPost, "/accounts", `{"account":"`+account+`"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("account", func(t *testing.T) {
		mockService.EXPECT().Account(gomock.Any(), id).Return(&servicedto.AccountInfo{
			ID: id,
			Balances: map[common.Address]*uint256.Int{
				poolInfo.Tokens[0]: uint256.NewInt(5),
				poolInfo.Tokens[1]: uint256.NewInt(0),
			},
			Share: uint256.NewInt(7),
		}, nil)
		mockService.EXPECT().Pool(gomock.Any()).Return(poolInfo)

		resp, raw := do(t, server.mux, http.MethodGet, "/accounts/"+account, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[dto.AccountResponse](t, raw)
		require.Equal(t, "7", body.Shares)
		require.Equal(t, []dto.TokenAmount{
			{Token: poolInfo.Tokens[0].Hex(), Amount: "5"},
			{Token: poolInfo.Tokens[1].Hex(), Amount: "0"},
		}, body.Balances)
	})

	t.Run("account not registered", func(t *testing.T) {
		mockService.EXPECT().Account(gomock.Any(), id).Return(nil, apperrors.ErrAccountNotFound)
		resp, _ := do(t, server.mux, http.MethodGet, "/accounts/"+account, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad id", func(t *testing.T) {
		resp, _ := do(t, server.mux, http.MethodGet, "/accounts/nobody", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("share", func(t *testing.T) {
		mockService.EXPECT().Share(gomock.Any(), id).Return(uint256.NewInt(42), nil)
		resp, raw := do(t, server.mux, http.MethodGet, "/accounts/"+account+"/share", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "42", decodeBody[dto.AmountResponse](t, raw).Amount)
	})

	t.Run("storage", func(t *testing.T) {
		mockService.EXPECT().StorageBalance(gomock.Any(), id).Return(uint64(0), nil)
		resp, raw := do(t, server.mux, http.MethodGet, "/accounts/"+account+"/storage", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, uint64(0), decodeBody[dto.StorageBalanceResponse](t, raw).Total)
	})
}

func TestOperationHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	id := common.HexToAddress(account)

	t.Run("deposit", func(t *testing.T) {
		txHash := common.HexToHash("0x5f1c3e0a9d2b7c4e8f6a1b3d5c7e9f0a2b4c6d8e0f1a3b5c7d9e1f2a4b6c8d0e")
		mockService.EXPECT().Deposit(gomock.Any(), servicedto.DepositRequest{TxHash: txHash, Msg: "memo"}).
			Return(&servicedto.DepositResult{
				Credits: []servicedto.Credit{{Ref: txHash.Hex() + ":0", Token: common.HexToAddress(tokenA), Sender: id, Amount: uint256.NewInt(500)}},
				Refused: uint256.NewInt(0),
			}, nil)

		resp, raw := do(t, server.mux, http.MethodPost, "/deposits", `{"tx_hash":"`+txHash.Hex()+`","msg":"memo"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody[dto.DepositResponse](t, raw)
		require.Equal(t, "0", body.Refused)
		require.Equal(t, []dto.CreditResponse{
			{Ref: txHash.Hex() + ":0", Token: common.HexToAddress(tokenA).Hex(), Sender: id.Hex(), Amount: "500"},
		}, body.Credits)
	})

	t.Run("deposit without chain transfer", func(t *testing.T) {
		mockService.EXPECT().Deposit(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTransferNotFound)
		resp, _ := do(t, server.mux, http.MethodPost, "/deposits", `{"tx_hash":"0x`+strings.Repeat("ab", 32)+`"}`)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		mockService.EXPECT().Deposit(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTransferCredited)
		resp, _ = do(t, server.mux, http.MethodPost, "/deposits", `{"tx_hash":"0x`+strings.Repeat("ab", 32)+`"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		resp, _ = do(t, server.mux, http.MethodPost, "/deposits", `{"token":"`+tokenA+`","sender":"`+account+`","amount":"500"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp, _ = do(t, server.mux, http.MethodPost, "/deposits", `{"tx_hash":"0x1234"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("swap", func(t *testing.T) {
		mockService.EXPECT().Swap(gomock.Any(), gomock.Any()).Return(uint256.NewInt(89), nil)
		resp, raw := doSigned(t, server.mux, "/swap",
			`{"account":"`+account+`","token_in":"`+tokenA+`","amount_in":"100","token_out":"`+tokenB+`"}`, accountKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "89", decodeBody[dto.SwapResponse](t, raw).AmountOut)
	})

	t.Run("swap below minimum", func(t *testing.T) {
		mockService.EXPECT().Swap(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrMinAmount)
		resp, raw := doSigned(t, server.mux, "/swap",
			`{"account":"`+account+`","token_in":"`+tokenA+`","amount_in":"100","token_out":"`+tokenB+
				`","min_amount_out":"90"}`, accountKey)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Contains(t, decodeBody[dto.ErrorResponse](t, raw).Error, "ERR_MIN_AMOUNT")
	})

	t.Run("swap invalid account", func(t *testing.T) {
		resp, _ := doSigned(t, server.mux, "/swap", `{"account":"nope"}`, accountKey)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("add liquidity", func(t *testing.T) {
		mockService.EXPECT().AddLiquidity(gomock.Any(), gomock.Any()).Return(uint256.NewInt(1000), nil)
		resp, raw := doSigned(t, server.mux, "/liquidity/add",
			`{"account":"`+account+`","token_in":"`+tokenA+`","amount_in":"10","token_out":"`+tokenB+`","amount_out":"20"}`, accountKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "1000", decodeBody[dto.AddLiquidityResponse](t, raw).Shares)
	})

	t.Run("add liquidity ratio mismatch", func(t *testing.T) {
		mockService.EXPECT().AddLiquidity(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRatioMismatch)
		resp, _ := doSigned(t, server.mux, "/liquidity/add",
			`{"account":"`+account+`","token_in":"`+tokenA+`","amount_in":"10","token_out":"`+tokenB+`","amount_out":"19"}`, accountKey)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("remove liquidity", func(t *testing.T) {
		mockService.EXPECT().RemoveLiquidity(gomock.Any(), servicedto.RemoveLiquidityRequest{
			Account: id,
			Amount:  uint256.NewInt(10),
		}).Return([2]*uint256.Int{uint256.NewInt(11), uint256.NewInt(9)}, nil)
		mockService.EXPECT().Pool(gomock.Any()).Return(poolInfo)

		resp, raw := doSigned(t, server.mux, "/liquidity/remove", `{"account":"`+account+`","shares":"10"}`, accountKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, []dto.TokenAmount{
			{Token: poolInfo.Tokens[0].Hex(), Amount: "11"},
			{Token: poolInfo.Tokens[1].Hex(), Amount: "9"},
		}, decodeBody[dto.RemoveLiquidityResponse](t, raw).Amounts)
	})

	t.Run("transfer share", func(t *testing.T) {
		mockService.EXPECT().TransferShare(gomock.Any(), gomock.Any()).Return(nil)
		resp, _ := doSigned(t, server.mux, "/shares/transfer",
			`{"from":"`+account+`","to":"`+tokenA+`","amount":"1"}`, accountKey)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		mockService.EXPECT().TransferShare(gomock.Any(), gomock.Any()).Return(apperrors.ErrShareAmountNotEnough)
		resp, _ = doSigned(t, server.mux, "/shares/transfer",
			`{"from":"`+account+`","to":"`+tokenA+`","amount":"1"}`, accountKey)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong http method", func(t *testing.T) {
		resp, _ := do(t, server.mux, http.MethodGet, "/swap", "")
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestWithdrawHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	issuedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	req := &withdrawal.Request{
		ID:         uuid.New(),
		Account:    common.HexToAddress(account),
		Token:      common.HexToAddress(tokenA),
		Amount:     uint256.NewInt(100),
		State:      withdrawal.StateSettled,
		IssuedAt:   issuedAt,
		ResolvedAt: issuedAt.Add(time.Second),
	}
	body := `{"account":"` + account + `","token":"` + tokenA + `"}`

	t.Run("settled", func(t *testing.T) {
		mockService.EXPECT().Withdraw(gomock.Any(), servicedto.WithdrawRequest{
			Account: req.Account,
			Token:   req.Token,
		}).Return(req, nil)

		resp, raw := doSigned(t, server.mux, "/withdrawals", body, accountKey)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[dto.WithdrawalResponse](t, raw)
		require.Equal(t, req.ID.String(), got.ID)
		require.Equal(t, "settled", got.State)
		require.Equal(t, "100", got.Amount)
		require.NotNil(t, got.ResolvedAt)
		require.True(t, req.ResolvedAt.Equal(*got.ResolvedAt))
	})

	t.Run("transfer failed", func(t *testing.T) {
		failed := *req
		failed.State = withdrawal.StateFailed
		mockService.EXPECT().Withdraw(gomock.Any(), gomock.Any()).
			Return(&failed, errors.Wrap(apperrors.ErrCallFailed, "s.pool.CompleteWithdraw"))

		resp, raw := doSigned(t, server.mux, "/withdrawals", body, accountKey)
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.Equal(t, "failed", decodeBody[dto.WithdrawalResponse](t, raw).State)
	})

	t.Run("already pending", func(t *testing.T) {
		mockService.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrWithdrawalPending)
		resp, _ := doSigned(t, server.mux, "/withdrawals", body, accountKey)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("lookup", func(t *testing.T) {
		mockService.EXPECT().Withdrawal(gomock.Any(), req.ID).Return(req, nil)
		resp, raw := do(t, server.mux, http.MethodGet, "/withdrawals/"+req.ID.String(), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, req.ID.String(), decodeBody[dto.WithdrawalResponse](t, raw).ID)

		mockService.EXPECT().Withdrawal(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrWithdrawalNotFound)
		resp, _ = do(t, server.mux, http.MethodGet, "/withdrawals/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = do(t, server.mux, http.MethodGet, "/withdrawals/42", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogMiddleware(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	server := NewServer(nil, config.Config{RequestTimeout: time.Second}, prometheus.NewRegistry(), zap.New(core))

	resp, _ := do(t, server.Handler(), http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/ping", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.Equal(t, "http", fields["component"])
}

func TestTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	server := NewServer(nil, config.Config{RequestTimeout: time.Minute}, prometheus.NewRegistry(), nil)

	var deadline time.Time
	handler := server.timeoutMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.False(t, deadline.IsZero())
	require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestServer_ListenAndServe(t *testing.T) {
	t.Parallel()

	server := NewServer(nil, config.Config{
		ReadHeaderTimeout: 5 * time.Second,
		GraceTimeout:      5 * time.Second,
	}, prometheus.NewRegistry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe(ctx, "localhost:0")
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_ListenAndServeBadAddr(t *testing.T) {
	t.Parallel()

	server := NewServer(nil, config.Config{}, prometheus.NewRegistry(), nil)
	err := server.ListenAndServe(context.Background(), "256.0.0.1:http-nope")
	require.Error(t, err)
}
