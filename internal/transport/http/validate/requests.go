package validate

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/dexmath"
	servicedto "github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 16

func address(name, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Errorf("missing %s", name)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("bad %s address format", name)
	}
	return common.HexToAddress(s), nil
}

func hash(name, s string) (common.Hash, error) {
	if s == "" {
		return common.Hash{}, errors.Errorf("missing %s", name)
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, errors.Errorf("bad %s format", name)
	}
	h := common.BytesToHash(b)
	if h == (common.Hash{}) {
		return common.Hash{}, errors.Errorf("zero %s", name)
	}
	return h, nil
}

func amount(name, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.Errorf("missing %s", name)
	}
	v, err := dexmath.ParseAmount(s)
	if err != nil {
		return nil, errors.Errorf("bad %s", name)
	}
	return v, nil
}

func optionalAmount(name, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}
	return amount(name, s)
}

func decode(r *http.Request, v any) (int, error) {
	if r.Method != http.MethodPost {
		return http.StatusMethodNotAllowed, errors.New("method not allowed")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return http.StatusBadRequest, errors.Wrap(err, "bad request body")
	}
	return 0, nil
}

// AccountID validates the {id} path value.
func AccountID(r *http.Request) (common.Address, int, error) {
	id, err := address("account", r.PathValue("id"))
	if err != nil {
		return common.Address{}, http.StatusBadRequest, err
	}
	return id, 0, nil
}

// WithdrawalID validates the {id} path value of a withdrawal.
func WithdrawalID(r *http.Request) (uuid.UUID, int, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, http.StatusBadRequest, errors.New("bad withdrawal id")
	}
	return id, 0, nil
}

// QuoteRequestValidate validates /quote query parameters and returns dto.
func QuoteRequestValidate(r *http.Request) (*servicedto.QuoteRequest, int, error) {
	if r.Method != http.MethodGet {
		return nil, http.StatusMethodNotAllowed, errors.New("method not allowed")
	}
	q := r.URL.Query()

	tokenIn, err := address("token_in", q.Get("token_in"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	tokenOut, err := address("token_out", q.Get("token_out"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	amountIn, err := amount("amount_in", q.Get("amount_in"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &servicedto.QuoteRequest{TokenIn: tokenIn, AmountIn: amountIn, TokenOut: tokenOut}, 0, nil
}

// RegisterRequestValidate validates POST /accounts.
func RegisterRequestValidate(r *http.Request) (common.Address, int, error) {
	var body dto.RegisterRequest
	if code, err := decode(r, &body); err != nil {
		return common.Address{}, code, err
	}
	id, err := address("account", body.Account)
	if err != nil {
		return common.Address{}, http.StatusBadRequest, err
	}
	return id, 0, nil
}

// DepositRequestValidate validates POST /deposits.
func DepositRequestValidate(r *http.Request) (*servicedto.DepositRequest, int, error) {
	var body dto.DepositRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	txHash, err := hash("tx_hash", body.TxHash)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &servicedto.DepositRequest{TxHash: txHash, Msg: body.Msg}, 0, nil
}

// LoopbackTransfer is a simulated transfer into the pool's custody.
type LoopbackTransfer struct {
	Token  common.Address
	From   common.Address
	Amount *uint256.Int
}

// LoopbackTransferValidate validates POST /loopback/transfers.
func LoopbackTransferValidate(r *http.Request) (*LoopbackTransfer, int, error) {
	var body dto.LoopbackTransferRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req LoopbackTransfer
		err error
	)
	if req.Token, err = address("token", body.Token); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.From, err = address("from", body.From); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Amount, err = amount("amount", body.Amount); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// SwapRequestValidate validates POST /swap.
func SwapRequestValidate(r *http.Request) (*servicedto.SwapRequest, int, error) {
	var body dto.SwapRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req servicedto.SwapRequest
		err error
	)
	if req.Account, err = address("account", body.Account); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.TokenIn, err = address("token_in", body.TokenIn); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.TokenOut, err = address("token_out", body.TokenOut); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.AmountIn, err = amount("amount_in", body.AmountIn); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.MinAmountOut, err = optionalAmount("min_amount_out", body.MinAmountOut); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// AddLiquidityRequestValidate validates POST /liquidity/add.
func AddLiquidityRequestValidate(r *http.Request) (*servicedto.AddLiquidityRequest, int, error) {
	var body dto.AddLiquidityRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req servicedto.AddLiquidityRequest
		err error
	)
	if req.Account, err = address("account", body.Account); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.TokenIn, err = address("token_in", body.TokenIn); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.TokenOut, err = address("token_out", body.TokenOut); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.AmountIn, err = amount("amount_in", body.AmountIn); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.AmountOut, err = amount("amount_out", body.AmountOut); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// RemoveLiquidityRequestValidate validates POST /liquidity/remove.
func RemoveLiquidityRequestValidate(r *http.Request) (*servicedto.RemoveLiquidityRequest, int, error) {
	var body dto.RemoveLiquidityRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req servicedto.RemoveLiquidityRequest
		err error
	)
	if req.Account, err = address("account", body.Account); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Amount, err = amount("shares", body.Shares); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// TransferShareRequestValidate validates POST /shares/transfer.
func TransferShareRequestValidate(r *http.Request) (*servicedto.TransferShareRequest, int, error) {
	var body dto.TransferShareRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req servicedto.TransferShareRequest
		err error
	)
	if req.From, err = address("from", body.From); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.To, err = address("to", body.To); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Amount, err = amount("amount", body.Amount); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// WithdrawRequestValidate validates POST /withdrawals.
func WithdrawRequestValidate(r *http.Request) (*servicedto.WithdrawRequest, int, error) {
	var body dto.WithdrawRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}

	var (
		req servicedto.WithdrawRequest
		err error
	)
	if req.Account, err = address("account", body.Account); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Token, err = address("token", body.Token); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Amount, err = optionalAmount("amount", body.Amount); err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}
