package storage

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	db, err := OpenBadger("", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	return map[string]Store{
		"memory": NewMemory(),
		"badger": db,
	}
}

func TestStore(t *testing.T) {
	t.Parallel()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, []byte("pool"))
			require.ErrorIs(t, err, apperrors.ErrNotFound)

			b := NewBatch()
			b.Put([]byte("pool"), []byte{1})
			b.Put([]byte("account/02"), []byte{2})
			b.Put([]byte("account/01"), []byte{3})
			b.Put([]byte("other"), []byte{4})
			require.Equal(t, 4, b.Len())
			require.NoError(t, s.Apply(ctx, b))

			v, err := s.Get(ctx, []byte("pool"))
			require.NoError(t, err)
			require.Equal(t, []byte{1}, v)

			var keys []string
			err = s.Iterate(ctx, []byte("account/"), func(key, value []byte) error {
				keys = append(keys, string(key))
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []string{"account/01", "account/02"}, keys)

			b = NewBatch()
			b.Delete([]byte("other"))
			b.Put([]byte("pool"), []byte{9})
			require.NoError(t, s.Apply(ctx, b))

			_, err = s.Get(ctx, []byte("other"))
			require.ErrorIs(t, err, apperrors.ErrNotFound)
			v, err = s.Get(ctx, []byte("pool"))
			require.NoError(t, err)
			require.Equal(t, []byte{9}, v)
		})
	}
}

func TestIterate_StopsOnError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			b := NewBatch()
			b.Put([]byte("k/1"), []byte{1})
			b.Put([]byte("k/2"), []byte{2})
			require.NoError(t, s.Apply(ctx, b))

			calls := 0
			err := s.Iterate(ctx, []byte("k/"), func(_, _ []byte) error {
				calls++
				return stop
			})
			require.ErrorIs(t, err, stop)
			require.Equal(t, 1, calls)
		})
	}
}

func TestBatch_CopiesInput(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	key, value := []byte("k"), []byte{1}

	b := NewBatch()
	b.Put(key, value)
	value[0] = 2
	key[0] = 'x'
	require.NoError(t, s.Apply(context.Background(), b))

	v, err := s.Get(context.Background(), []byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, v)
}

func TestApply_CanceledContext(t *testing.T) {
	t.Parallel()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			b := NewBatch()
			b.Put([]byte("k"), []byte{1})
			require.ErrorIs(t, s.Apply(ctx, b), context.Canceled)

			_, err := s.Get(context.Background(), []byte("k"))
			require.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}
