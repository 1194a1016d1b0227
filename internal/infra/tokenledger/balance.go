package tokenledger

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const defaultCallTimeout = 5 * time.Second

func (c *ERC20) call(ctx context.Context, to common.Address, method string, args ...any) ([]any, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "c.abi.Pack")
	}

	res, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "c.backend.CallContract")
	}

	out, err := c.abi.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.abi.Unpack")
	}
	return out, nil
}

// BalancesOf reads the holder's balance of each token concurrently. The
// result follows the order of tokens; every failed read is reported.
func (c *ERC20) BalancesOf(ctx context.Context, holder common.Address, tokens ...common.Address) ([]*uint256.Int, error) {
	timeout := c.cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	type balanceResult struct {
		index   int
		balance *uint256.Int
		err     error
	}

	var wg sync.WaitGroup
	ch := make(chan balanceResult, len(tokens))

	getBalance := func(i int, token common.Address) {
		defer wg.Done()

		ctxCall, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		out, err := c.call(ctxCall, token, "balanceOf", holder)
		if err != nil {
			ch <- balanceResult{err: errors.Wrapf(err, "balanceOf on %s", token.Hex())}
			return
		}
		if len(out) == 0 {
			ch <- balanceResult{err: errors.Errorf("balanceOf on %s returned nothing", token.Hex())}
			return
		}

		raw, ok := out[0].(*big.Int)
		if !ok {
			ch <- balanceResult{err: errors.Errorf("failed to cast balanceOf result of %s to *big.Int", token.Hex())}
			return
		}
		balance, overflow := uint256.FromBig(raw)
		if overflow {
			ch <- balanceResult{err: errors.Errorf("balanceOf result of %s overflows 256 bits", token.Hex())}
			return
		}
		ch <- balanceResult{index: i, balance: balance}
	}

	wg.Add(len(tokens))
	for i, token := range tokens {
		go getBalance(i, token)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	balances := make([]*uint256.Int, len(tokens))
	var combinedErr error
	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}
		balances[result.index] = result.balance
	}

	if combinedErr != nil {
		return nil, errors.Wrap(combinedErr, "failed to read balances")
	}
	return balances, nil
}
