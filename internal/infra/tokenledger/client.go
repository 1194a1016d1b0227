package tokenledger

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

const erc20ABIJSON = `[
	{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"address","name":"account","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"from","type":"address"},{"indexed":true,"internalType":"address","name":"to","type":"address"},{"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

// Client moves tokens between the pool's custody and external accounts.
type Client interface {
	// Transfer sends amount of token to the recipient and returns once the
	// transfer is final. Any error means the tokens did not move.
	Transfer(ctx context.Context, token, to common.Address, amount *uint256.Int) error

	// Received returns the token transfers into the pool's custody made by the
	// transaction. It fails with apperrors.ErrTransferNotFound if the
	// transaction is unknown, reverted or not yet final.
	Received(ctx context.Context, txHash common.Hash) ([]Inbound, error)
}

// Backend represents the chain methods the ERC-20 client needs.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config holds the ERC-20 client settings.
type Config struct {
	PrivateKey     string
	GasLimit       uint64
	ReceiptTimeout time.Duration
	PollInterval   time.Duration
	CallTimeout    time.Duration
	// Confirmations is the number of blocks a deposit transaction needs on
	// top of it before it is credited.
	Confirmations uint64
}

// ERC20 transfers tokens by sending signed `transfer` transactions from the
// pool's key.
type ERC20 struct {
	backend Backend
	abi     abi.ABI
	key     *ecdsa.PrivateKey
	from    common.Address
	cfg     Config
	logger  *zap.Logger

	// mu keeps nonces in order between concurrent transfers.
	mu      sync.Mutex
	chainID *big.Int
}

// Dial connects to an Ethereum RPC endpoint and returns an ERC-20 client on it.
func Dial(ctx context.Context, rpcURL string, cfg Config, logger *zap.Logger) (*ERC20, error) {
	backend, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.DialContext")
	}

	return NewERC20(backend, cfg, logger)
}

// NewERC20 returns a client that sends transactions through backend.
func NewERC20(backend Backend, cfg Config, logger *zap.Logger) (*ERC20, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "crypto.HexToECDSA")
	}

	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	return &ERC20{
		backend: backend,
		abi:     parsed,
		key:     key,
		from:    from,
		cfg:     cfg,
		logger:  logger.With(zap.String("component", "tokenledger"), zap.Stringer("from", from)),
	}, nil
}

// From returns the address transfers are sent from.
func (c *ERC20) From() common.Address {
	return c.from
}

// Transfer implements Client.
func (c *ERC20) Transfer(ctx context.Context, token, to common.Address, amount *uint256.Int) error {
	data, err := c.abi.Pack("transfer", to, amount.ToBig())
	if err != nil {
		return errors.Wrap(err, "c.abi.Pack")
	}

	signed, err := c.send(ctx, token, data)
	if err != nil {
		return err
	}
	c.logger.Info("transfer sent",
		zap.Stringer("tx", signed.Hash()),
		zap.Stringer("token", token),
		zap.Stringer("to", to),
		zap.String("amount", amount.Dec()),
	)

	receipt, err := c.waitReceipt(ctx, signed.Hash())
	if err != nil {
		return errors.Wrap(err, "c.waitReceipt")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Wrapf(apperrors.ErrCallFailed, "transaction %s reverted", signed.Hash().Hex())
	}
	return nil
}

func (c *ERC20) send(ctx context.Context, token common.Address, data []byte) (*types.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID == nil {
		chainID, err := c.backend.ChainID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "c.backend.ChainID")
		}
		c.chainID = chainID
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, errors.Wrap(err, "c.backend.PendingNonceAt")
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "c.backend.SuggestGasPrice")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      c.cfg.GasLimit,
		To:       &token,
		Value:    new(big.Int),
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return nil, errors.Wrap(err, "types.SignTx")
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, errors.Wrap(err, "c.backend.SendTransaction")
	}
	return signed, nil
}

func (c *ERC20) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ReceiptTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return receipt, nil
		case !errors.Is(err, ethereum.NotFound):
			return nil, errors.Wrap(err, "c.backend.TransactionReceipt")
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "transaction %s not mined", hash.Hex())
		case <-ticker.C:
		}
	}
}
