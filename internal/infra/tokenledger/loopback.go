package tokenledger

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// Loopback is a Client without a chain. Transfers out move nothing and always
// succeed; transfers in exist only once Receive records them. It backs local
// runs and tests.
type Loopback struct {
	logger *zap.Logger

	mu      sync.Mutex
	inbound map[common.Hash][]Inbound
}

// NewLoopback returns a loopback client.
func NewLoopback(logger *zap.Logger) *Loopback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loopback{
		logger:  logger.With(zap.String("component", "tokenledger")),
		inbound: make(map[common.Hash][]Inbound),
	}
}

// Transfer implements Client.
func (l *Loopback) Transfer(ctx context.Context, token, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.Info("loopback transfer",
		zap.Stringer("token", token),
		zap.Stringer("to", to),
		zap.String("amount", amount.Dec()),
	)
	return nil
}

// Receive records a transfer of amount of token from the sender into the
// pool's custody and returns the hash of the transaction that carries it.
func (l *Loopback) Receive(token, from common.Address, amount *uint256.Int) common.Hash {
	id := uuid.New()
	hash := crypto.Keccak256Hash(id[:])

	l.mu.Lock()
	l.inbound[hash] = []Inbound{{TxHash: hash, Token: token, From: from, Amount: amount.Clone()}}
	l.mu.Unlock()

	l.logger.Info("loopback inbound transfer",
		zap.Stringer("tx", hash),
		zap.Stringer("token", token),
		zap.Stringer("from", from),
		zap.String("amount", amount.Dec()),
	)
	return hash
}

// Received implements Client.
func (l *Loopback) Received(ctx context.Context, txHash common.Hash) ([]Inbound, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	in, ok := l.inbound[txHash]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s", txHash.Hex())
	}
	out := make([]Inbound, len(in))
	for i, t := range in {
		t.Amount = t.Amount.Clone()
		out[i] = t
	}
	return out, nil
}
