package store

import (
	"context"
	"time"
)

// Observer receives store operation timings.
type Observer interface {
	ObserveStoreOp(op, key string, duration time.Duration)
}

// InstrumentedStore wraps a Store and reports per-operation timings.
type InstrumentedStore struct {
	inner Store
	obs   Observer
}

// NewInstrumentedStore decorates a Store with timing observation.
func NewInstrumentedStore(inner Store, obs Observer) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, obs: obs}
}

// Get reads through to the wrapped store.
func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	raw, ok, err := s.inner.Get(ctx, key)
	s.obs.ObserveStoreOp("get", key, time.Since(start))
	return raw, ok, err
}

// Set writes through to the wrapped store.
func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.obs.ObserveStoreOp("set", key, time.Since(start))
	return err
}

// Delete deletes through to the wrapped store.
func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	s.obs.ObserveStoreOp("delete", key, time.Since(start))
	return err
}
