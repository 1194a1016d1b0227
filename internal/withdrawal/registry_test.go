package withdrawal

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

var (
	alice  = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	tokenA = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	tokenB = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

func fixedClock(r *Registry) time.Time {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return now
}

func TestIssueResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ok    bool
		state State
	}{
		{name: "settled", ok: true, state: StateSettled},
		{name: "failed", ok: false, state: StateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			now := fixedClock(r)

			req, err := r.Issue(alice, tokenA, uint256.NewInt(42))
			require.NoError(t, err)
			require.Equal(t, StateIssued, req.State)
			require.Equal(t, now, req.IssuedAt)
			require.Equal(t, 1, r.Pending())

			peeked, err := r.Peek(req.ID)
			require.NoError(t, err)
			require.Equal(t, req, peeked)

			done, err := r.Resolve(req.ID, tt.ok)
			require.NoError(t, err)
			require.Equal(t, tt.state, done.State)
			require.Equal(t, 0, r.Pending())

			_, err = r.Resolve(req.ID, true)
			require.ErrorIs(t, err, apperrors.ErrWithdrawalSettled)
			_, err = r.Peek(req.ID)
			require.ErrorIs(t, err, apperrors.ErrWithdrawalSettled)

			got, err := r.Get(req.ID)
			require.NoError(t, err)
			require.Equal(t, tt.state, got.State)
		})
	}
}

func TestIssue_OnePendingPerToken(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	first, err := r.Issue(alice, tokenA, uint256.NewInt(1))
	require.NoError(t, err)

	_, err = r.Issue(alice, tokenA, uint256.NewInt(2))
	require.ErrorIs(t, err, apperrors.ErrWithdrawalPending)

	_, err = r.Issue(alice, tokenB, uint256.NewInt(2))
	require.NoError(t, err)

	_, err = r.Resolve(first.ID, false)
	require.NoError(t, err)

	_, err = r.Issue(alice, tokenA, uint256.NewInt(3))
	require.NoError(t, err)
}

func TestUnknownRequest(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	id := uuid.New()

	_, err := r.Get(id)
	require.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	_, err = r.Peek(id)
	require.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	_, err = r.Resolve(id, true)
	require.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
}

func TestRequestIsCopied(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	amount := uint256.NewInt(10)

	req, err := r.Issue(alice, tokenA, amount)
	require.NoError(t, err)

	amount.SetUint64(99)
	req.Amount.SetUint64(77)

	got, err := r.Get(req.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got.Amount.Uint64())
}
