// Package storage is the byte key-value layer the pool persists its records in.
package storage

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/fleshka4/simplepool/internal/apperrors"
)

// Store is a key-value store with atomic multi-key writes.
type Store interface {
	// Get returns the value of key or an error wrapping apperrors.ErrNotFound.
	Get(ctx context.Context, key []byte) ([]byte, error)
	// Iterate calls fn for every key with the prefix, in key order.
	Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error
	// Apply writes every operation of the batch or none of them.
	Apply(ctx context.Context, b *Batch) error
	Close() error
}

type op struct {
	key    []byte
	value  []byte
	delete bool
}

// Batch collects writes for Store.Apply.
type Batch struct {
	ops []op
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Put schedules key to be set to value.
func (b *Batch) Put(key, value []byte) {
	b.ops = append(b.ops, op{key: bytes.Clone(key), value: bytes.Clone(value)})
}

// Delete schedules key to be removed.
func (b *Batch) Delete(key []byte) {
	b.ops = append(b.ops, op{key: bytes.Clone(key), delete: true})
}

// Len returns the number of scheduled operations.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Memory is a Store backed by a map. It loses everything on exit.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[string(key)]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrNotFound, "key %q", key)
	}
	return bytes.Clone(v), nil
}

func (m *Memory) Iterate(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = bytes.Clone(m.data[k])
	}
	m.mu.RUnlock()

	for i, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn([]byte(k), values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) Apply(ctx context.Context, b *Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range b.ops {
		if o.delete {
			delete(m.data, string(o.key))
			continue
		}
		m.data[string(o.key)] = o.value
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}
