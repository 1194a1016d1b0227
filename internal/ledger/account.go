package ledger

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/dexmath"
)

// Account is the internal balance sheet of one registered identity.
type Account struct {
	// NearAmount is the native balance reserved for storage; the pool core never changes it.
	NearAmount *uint256.Int
	Tokens     map[common.Address]*uint256.Int
	Share      *uint256.Int
}

// NewAccount returns an empty account.
func NewAccount() *Account {
	return &Account{
		NearAmount: dexmath.Zero(),
		Tokens:     make(map[common.Address]*uint256.Int),
		Share:      dexmath.Zero(),
	}
}

// Balance returns a copy of the balance of token, zero if the entry is absent.
func (a *Account) Balance(token common.Address) *uint256.Int {
	if b, ok := a.Tokens[token]; ok {
		return b.Clone()
	}
	return dexmath.Zero()
}

// Clone returns a deep copy.
func (a *Account) Clone() *Account {
	c := &Account{
		NearAmount: a.NearAmount.Clone(),
		Tokens:     make(map[common.Address]*uint256.Int, len(a.Tokens)),
		Share:      a.Share.Clone(),
	}
	for t, b := range a.Tokens {
		c.Tokens[t] = b.Clone()
	}
	return c
}

// VersionedAccount is the persisted envelope of an account. Each record shape
// the service has ever written is one variant; Current extracts the live shape.
type VersionedAccount interface {
	version() uint
}

const accountV1 uint = 1

type accountVersion1 struct {
	account *Account
}

func (accountVersion1) version() uint { return accountV1 }

// Versioned wraps an account in the current envelope variant.
func Versioned(a *Account) VersionedAccount {
	return accountVersion1{account: a}
}

// Current upgrades a versioned account to the current shape.
func Current(v VersionedAccount) (*Account, error) {
	switch acc := v.(type) {
	case accountVersion1:
		return acc.account, nil
	default:
		return nil, errors.Wrapf(apperrors.ErrUnknownVersion, "account version %d", v.version())
	}
}

type envelope struct {
	Version uint
	Payload rlp.RawValue
}

type tokenRecord struct {
	Token  common.Address
	Amount *big.Int
}

type accountRecordV1 struct {
	NearAmount *big.Int
	Tokens     []tokenRecord
	Share      *big.Int
}

// EncodeAccount serialises an account as an RLP envelope.
func EncodeAccount(v VersionedAccount) ([]byte, error) {
	a, err := Current(v)
	if err != nil {
		return nil, err
	}

	rec := accountRecordV1{
		NearAmount: a.NearAmount.ToBig(),
		Tokens:     make([]tokenRecord, 0, len(a.Tokens)),
		Share:      a.Share.ToBig(),
	}
	for t, b := range a.Tokens {
		rec.Tokens = append(rec.Tokens, tokenRecord{Token: t, Amount: b.ToBig()})
	}
	sort.Slice(rec.Tokens, func(i, j int) bool {
		return bytes.Compare(rec.Tokens[i].Token[:], rec.Tokens[j].Token[:]) < 0
	})

	payload, err := rlp.EncodeToBytes(&rec)
	if err != nil {
		return nil, errors.Wrap(err, "rlp.EncodeToBytes")
	}
	out, err := rlp.EncodeToBytes(&envelope{Version: v.version(), Payload: payload})
	if err != nil {
		return nil, errors.Wrap(err, "rlp.EncodeToBytes")
	}
	return out, nil
}

// DecodeAccount parses an RLP envelope produced by EncodeAccount.
func DecodeAccount(data []byte) (VersionedAccount, error) {
	var env envelope
	if err := rlp.DecodeBytes(data, &env); err != nil {
		return nil, errors.Wrap(err, "rlp.DecodeBytes")
	}

	switch env.Version {
	case accountV1:
		var rec accountRecordV1
		if err := rlp.DecodeBytes(env.Payload, &rec); err != nil {
			return nil, errors.Wrap(err, "rlp.DecodeBytes")
		}
		a := NewAccount()
		var err error
		if a.NearAmount, err = fromBig(rec.NearAmount); err != nil {
			return nil, err
		}
		if a.Share, err = fromBig(rec.Share); err != nil {
			return nil, err
		}
		for _, tr := range rec.Tokens {
			if a.Tokens[tr.Token], err = fromBig(tr.Amount); err != nil {
				return nil, err
			}
		}
		return Versioned(a), nil
	default:
		return nil, errors.Wrapf(apperrors.ErrUnknownVersion, "account version %d", env.Version)
	}
}

func fromBig(b *big.Int) (*uint256.Int, error) {
	if b == nil {
		return dexmath.Zero(), nil
	}
	z, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Wrap(apperrors.ErrOverflow, "stored amount")
	}
	return dexmath.Narrow(z)
}
