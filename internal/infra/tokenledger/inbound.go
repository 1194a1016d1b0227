package tokenledger

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// Inbound is a token transfer into the pool's custody.
type Inbound struct {
	TxHash   common.Hash
	LogIndex uint
	Token    common.Address
	From     common.Address
	Amount   *uint256.Int
}

// Ref identifies the transfer on the chain.
func (in Inbound) Ref() string {
	return fmt.Sprintf("%s:%d", in.TxHash.Hex(), in.LogIndex)
}

// Received implements Client. It reads the ERC-20 Transfer logs of the
// transaction receipt that name the pool's address as recipient.
func (c *ERC20) Received(ctx context.Context, txHash common.Hash) ([]Inbound, error) {
	timeout := c.cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipt, err := c.backend.TransactionReceipt(ctx, txHash)
	switch {
	case errors.Is(err, ethereum.NotFound):
		return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s", txHash.Hex())
	case err != nil:
		return nil, errors.Wrap(err, "c.backend.TransactionReceipt")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s reverted", txHash.Hex())
	}

	if c.cfg.Confirmations > 0 {
		head, err := c.backend.BlockNumber(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "c.backend.BlockNumber")
		}
		mined := receipt.BlockNumber.Uint64()
		if head < mined || head-mined < c.cfg.Confirmations {
			return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s has %d of %d confirmations",
				txHash.Hex(), confirmations(head, mined), c.cfg.Confirmations)
		}
	}

	topic := c.abi.Events["Transfer"].ID
	var in []Inbound
	for _, l := range receipt.Logs {
		if l == nil || l.Removed || len(l.Topics) != 3 || l.Topics[0] != topic || len(l.Data) != 32 {
			continue
		}
		if common.BytesToAddress(l.Topics[2].Bytes()) != c.from {
			continue
		}
		in = append(in, Inbound{
			TxHash:   txHash,
			LogIndex: l.Index,
			Token:    l.Address,
			From:     common.BytesToAddress(l.Topics[1].Bytes()),
			Amount:   new(uint256.Int).SetBytes(l.Data),
		})
	}
	if len(in) == 0 {
		return nil, errors.Wrapf(apperrors.ErrTransferNotFound, "transaction %s sent no tokens to %s", txHash.Hex(), c.from.Hex())
	}

	c.logger.Debug("inbound transfers", zap.Stringer("tx", txHash), zap.Int("count", len(in)))
	return in, nil
}

func confirmations(head, mined uint64) uint64 {
	if head < mined {
		return 0
	}
	return head - mined
}
