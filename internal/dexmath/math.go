package dexmath

import (
	"sync"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// FeeDivisor is the denominator of the exchange fee: a fee of 30 means 30/10000 = 0.3%.
const FeeDivisor = 10_000

var (
	// MaxAmount is the largest value of the 128-bit amount domain.
	MaxAmount = new(uint256.Int).SubUint64(new(uint256.Int).Lsh(uint256.NewInt(1), 128), 1)

	feeDen = uint256.NewInt(FeeDivisor)

	defaultMath = newMathService()
)

type mathTmp struct {
	a *uint256.Int
	b *uint256.Int
	c *uint256.Int
}

type mathService struct {
	pool *sync.Pool
}

func newMathService() *mathService {
	return &mathService{
		pool: &sync.Pool{
			New: func() any {
				return &mathTmp{
					a: new(uint256.Int),
					b: new(uint256.Int),
					c: new(uint256.Int),
				}
			},
		},
	}
}

func (m *mathService) getAmountOutInto(out, amountIn, reserveIn, reserveOut *uint256.Int, fee uint64) bool {
	if out == nil {
		return false
	}
	// basic validation.
	if amountIn.IsZero() || reserveIn.IsZero() || reserveOut.IsZero() || fee >= FeeDivisor {
		out.Clear()
		return false
	}

	t := m.pool.Get().(*mathTmp)
	defer m.pool.Put(t)

	// den := reserveIn + amountIn. Both are 128-bit so the sum cannot wrap.
	t.a.Add(reserveIn, amountIn)

	// gross := reserveOut * amountIn / den.
	if _, overflow := t.b.MulDivOverflow(reserveOut, amountIn, t.a); overflow {
		out.Clear()
		return false
	}

	// out := gross * (FeeDivisor - fee) / FeeDivisor.
	t.c.SetUint64(FeeDivisor - fee)
	if _, overflow := out.MulDivOverflow(t.b, t.c, feeDen); overflow {
		out.Clear()
		return false
	}

	return true
}

// GetAmountOutInto computes the output of a constant-product swap with the fee
// taken from the output leg:
//
//	gross = reserveOut * amountIn / (reserveIn + amountIn)
//	out   = gross * (FeeDivisor - fee) / FeeDivisor
//
// Both divisions floor. It writes the result into out and returns false if any
// input is zero or the fee is not below FeeDivisor.
func GetAmountOutInto(out, amountIn, reserveIn, reserveOut *uint256.Int, fee uint64) bool {
	return defaultMath.getAmountOutInto(out, amountIn, reserveIn, reserveOut, fee)
}

// GetAmountOut is the allocating variant of GetAmountOutInto.
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int, fee uint64) (*uint256.Int, bool) {
	out := new(uint256.Int)
	ok := defaultMath.getAmountOutInto(out, amountIn, reserveIn, reserveOut, fee)
	return out, ok
}

// MulDiv returns floor(x*y/d) computed on a 512-bit intermediate.
func MulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, apperrors.ErrDivisionByZero
	}
	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return nil, errors.Wrapf(apperrors.ErrOverflow, "%s * %s / %s", x.Dec(), y.Dec(), d.Dec())
	}
	return z, nil
}

// Narrow checks that x fits the 128-bit amount domain.
func Narrow(x *uint256.Int) (*uint256.Int, error) {
	if x.Gt(MaxAmount) {
		return nil, errors.Wrapf(apperrors.ErrOverflow, "%s exceeds 128 bits", x.Dec())
	}
	return x, nil
}

// AddAmount returns a+b, failing if the sum leaves the amount domain.
func AddAmount(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, errors.Wrapf(apperrors.ErrOverflow, "%s + %s", a.Dec(), b.Dec())
	}
	return Narrow(z)
}

// SubAmount returns a-b, failing if b > a.
func SubAmount(a, b *uint256.Int) (*uint256.Int, error) {
	if a.Lt(b) {
		return nil, errors.Wrapf(apperrors.ErrUnderflow, "%s - %s", a.Dec(), b.Dec())
	}
	return new(uint256.Int).Sub(a, b), nil
}

// Min returns the smaller of a and b.
func Min(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return a
	}
	return b
}

// Zero returns a fresh zero amount.
func Zero() *uint256.Int {
	return new(uint256.Int)
}

// ParseAmount parses a base-10 amount and checks it fits 128 bits.
func ParseAmount(s string) (*uint256.Int, error) {
	z, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "amount %q: %v", s, err)
	}
	return Narrow(z)
}
