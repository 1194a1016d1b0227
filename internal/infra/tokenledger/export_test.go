package tokenledger

import "github.com/ethereum/go-ethereum/accounts/abi"

func (c *ERC20) ABI() *abi.ABI {
	return &c.abi
}
