package service

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/infra/tokenledger"
	"github.com/fleshka4/simplepool/internal/ledger"
	"github.com/fleshka4/simplepool/internal/reserve"
	"github.com/fleshka4/simplepool/internal/service/dto"
	"github.com/fleshka4/simplepool/internal/withdrawal"
)

// Service represents interface for business logic.
type Service interface {
	Pool(ctx context.Context) dto.PoolInfo
	Quote(ctx context.Context, req dto.QuoteRequest) (*uint256.Int, error)

	Register(ctx context.Context, id common.Address) error
	Account(ctx context.Context, id common.Address) (*dto.AccountInfo, error)
	Share(ctx context.Context, id common.Address) (*uint256.Int, error)
	StorageBalance(ctx context.Context, id common.Address) (uint64, error)

	Deposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResult, error)
	Swap(ctx context.Context, req dto.SwapRequest) (*uint256.Int, error)
	AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*uint256.Int, error)
	RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) ([2]*uint256.Int, error)
	TransferShare(ctx context.Context, req dto.TransferShareRequest) error

	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*withdrawal.Request, error)
	Withdrawal(ctx context.Context, id uuid.UUID) (*withdrawal.Request, error)
}

// Pool represents the pool operations the service drives.
type Pool interface {
	Register(ctx context.Context, id common.Address) error
	OnTransfer(ctx context.Context, ref string, token, sender common.Address, amount *uint256.Int, msg string) (*uint256.Int, error)
	Swap(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address, minAmountOut *uint256.Int) (*uint256.Int, error)
	AddLiquidity(ctx context.Context, account, tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address, amountOut *uint256.Int) (*uint256.Int, error)
	RemoveLiquidity(ctx context.Context, account common.Address, amount *uint256.Int) ([2]*uint256.Int, error)
	TransferShare(ctx context.Context, from, to common.Address, amount *uint256.Int) error
	BeginWithdraw(account, token common.Address, amount *uint256.Int) (*withdrawal.Request, error)
	CompleteWithdraw(ctx context.Context, id uuid.UUID, ok bool) (*withdrawal.Request, error)
	Withdrawal(id uuid.UUID) (*withdrawal.Request, error)

	Owner() common.Address
	Tokens() [2]common.Address
	Fee() (uint64, uint64)
	Reserves() [2]*uint256.Int
	Volumes() [2]reserve.Volume
	TotalShareSupply() *uint256.Int
	Quote(tokenIn common.Address, amountIn *uint256.Int, tokenOut common.Address) (*uint256.Int, error)
	AccountInfo(id common.Address) (*ledger.Account, error)
	ShareOf(id common.Address) (*uint256.Int, error)
	StorageBalanceOf(id common.Address) uint64
}

// PoolService represents struct for business logic.
type PoolService struct {
	pool   Pool
	tokens tokenledger.Client
	logger *zap.Logger
}

// NewPoolService creates PoolService.
func NewPoolService(pool Pool, tokens tokenledger.Client, logger *zap.Logger) *PoolService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PoolService{
		pool:   pool,
		tokens: tokens,
		logger: logger.With(zap.String("component", "service")),
	}
}
