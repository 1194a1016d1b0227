package pool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
	"github.com/fleshka4/simplepool/internal/reserve"
)

var (
	poolKey        = []byte("pool")
	accountPrefix  = []byte("account/")
	transferPrefix = []byte("transfer/")
)

func accountKey(id common.Address) []byte {
	return append(append([]byte{}, accountPrefix...), id.Hex()...)
}

// transferKey marks a credited token transfer so it is never credited twice.
func transferKey(ref string) []byte {
	return append(append([]byte{}, transferPrefix...), ref...)
}

// VersionedPool is the persisted envelope of the pool record.
type VersionedPool interface {
	version() uint
}

const poolV1 uint = 1

type poolVersion1 struct {
	params   Params
	snapshot reserve.Snapshot
}

func (poolVersion1) version() uint { return poolV1 }

func currentPool(v VersionedPool) (Params, reserve.Snapshot, error) {
	switch rec := v.(type) {
	case poolVersion1:
		return rec.params, rec.snapshot, nil
	default:
		return Params{}, reserve.Snapshot{}, errors.Wrapf(apperrors.ErrUnknownVersion, "pool version %d", v.version())
	}
}

type envelope struct {
	Version uint
	Payload rlp.RawValue
}

type poolRecordV1 struct {
	Owner       common.Address
	Tokens      []common.Address
	ExchangeFee uint64
	Reserves    []*big.Int
	VolumeIn    []*big.Int
	VolumeOut   []*big.Int
	TotalShares *big.Int
}

func encodePool(v VersionedPool) ([]byte, error) {
	params, snap, err := currentPool(v)
	if err != nil {
		return nil, err
	}

	rec := poolRecordV1{
		Owner:       params.Owner,
		Tokens:      snap.Tokens[:],
		ExchangeFee: params.ExchangeFee,
		TotalShares: snap.TotalShares.ToBig(),
	}
	for i := range snap.Tokens {
		rec.Reserves = append(rec.Reserves, snap.Reserves[i].ToBig())
		rec.VolumeIn = append(rec.VolumeIn, snap.Volumes[i].Input.ToBig())
		rec.VolumeOut = append(rec.VolumeOut, snap.Volumes[i].Output.ToBig())
	}

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

func decodePool(data []byte) (VersionedPool, error) {
	var env envelope
	if err := rlp.DecodeBytes(data, &env); err != nil {
		return nil, errors.Wrap(err, "rlp.DecodeBytes")
	}
	if env.Version != poolV1 {
		return nil, errors.Wrapf(apperrors.ErrUnknownVersion, "pool version %d", env.Version)
	}

	var rec poolRecordV1
	if err := rlp.DecodeBytes(env.Payload, &rec); err != nil {
		return nil, errors.Wrap(err, "rlp.DecodeBytes")
	}
	if len(rec.Tokens) != 2 || len(rec.Reserves) != 2 || len(rec.VolumeIn) != 2 || len(rec.VolumeOut) != 2 {
		return nil, errors.Wrap(apperrors.ErrInvariant, "pool record must describe two tokens")
	}

	rv := poolVersion1{
		params: Params{
			Owner:       rec.Owner,
			Tokens:      [2]common.Address{rec.Tokens[0], rec.Tokens[1]},
			ExchangeFee: rec.ExchangeFee,
		},
	}
	snap := &rv.snapshot
	snap.Tokens = rv.params.Tokens

	var err error
	for i := 0; i < 2; i++ {
		if snap.Reserves[i], err = fromBig(rec.Reserves[i]); err != nil {
			return nil, err
		}
		if snap.Volumes[i].Input, err = fromBig(rec.VolumeIn[i]); err != nil {
			return nil, err
		}
		if snap.Volumes[i].Output, err = fromBig(rec.VolumeOut[i]); err != nil {
			return nil, err
		}
	}
	if snap.TotalShares, err = fromBig(rec.TotalShares); err != nil {
		return nil, err
	}
	return rv, nil
}

// fromBig only checks the 256-bit range; reserve.FromSnapshot narrows the
// figures that must fit an amount.
func fromBig(b *big.Int) (*uint256.Int, error) {
	if b == nil {
		return new(uint256.Int), nil
	}
	z, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Wrap(apperrors.ErrOverflow, "stored figure")
	}
	return z, nil
}
