package storage

import (
	"context"
	"os"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// Badger is a Store on top of BadgerDB.
type Badger struct {
	db     *badgerdb.DB
	logger *zap.Logger
}

// OpenBadger opens (or creates) a database in dir. An empty dir opens an
// in-memory database.
func OpenBadger(dir string, logger *zap.Logger) (*Badger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "badger"))

	opts := badgerdb.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "os.MkdirAll")
	}
	opts.Logger = badgerLogger{sugar: logger.Sugar()}
	opts.NumCompactors = 2
	opts.BlockCacheSize = 32 << 20
	opts.IndexCacheSize = 16 << 20

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badger.Open")
	}
	logger.Info("badger opened", zap.String("dir", dir), zap.Bool("in_memory", dir == ""))

	return &Badger{db: db, logger: logger}, nil
}

func (s *Badger) Get(_ context.Context, key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, errors.Wrapf(apperrors.ErrNotFound, "key %q", key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "badger.View")
	}
	return value, nil
}

func (s *Badger) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(item.KeyCopy(nil), value); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(err, "badger.View")
}

// Apply runs the batch in a single read-write transaction.
func (s *Badger) Apply(ctx context.Context, b *Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badgerdb.Txn) error {
		for _, o := range b.ops {
			var err error
			if o.delete {
				err = txn.Delete(o.key)
			} else {
				err = txn.Set(o.key, o.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("batch failed", zap.Int("ops", b.Len()), zap.Error(err))
		return errors.Wrap(err, "badger.Update")
	}
	return nil
}

func (s *Badger) Close() error {
	return errors.Wrap(s.db.Close(), "badger.Close")
}

// badgerLogger routes BadgerDB's internal messages to zap.
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf("[badger] "+format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf("[badger] "+format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.sugar.Debugf("[badger] "+format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf("[badger] "+format, args...)
}
