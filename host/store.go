package host

import (
	"context"
	"fmt"

	corestore "cosmossdk.io/core/store"
	storetypes "cosmossdk.io/store/types"
)

type storeKey int

const (
	contractStoreKey storeKey = iota
	ledgerStoreKey
	runtimeStoreKey
)

// WithStore scopes the contract store of the running invocation to ctx.
func WithStore(ctx context.Context, store storetypes.KVStore) context.Context {
	return context.WithValue(ctx, contractStoreKey, store)
}

func withLedgerStore(ctx context.Context, store storetypes.KVStore) context.Context {
	return context.WithValue(ctx, ledgerStoreKey, store)
}

func withRuntimeStore(ctx context.Context, store storetypes.KVStore) context.Context {
	return context.WithValue(ctx, runtimeStoreKey, store)
}

// StoreFromContext returns the store set by WithStore. It panics when none is set,
// which only happens when contract code runs outside of an invocation.
func StoreFromContext(ctx context.Context) storetypes.KVStore {
	return storeFromContext(ctx, contractStoreKey)
}

func storeFromContext(ctx context.Context, key storeKey) storetypes.KVStore {
	store, ok := ctx.Value(key).(storetypes.KVStore)
	if !ok {
		panic(fmt.Sprintf("host: no store %d in context", key))
	}
	return store
}

// StoreService hands collections the contract store of the invocation carried by ctx.
type StoreService struct{}

var _ corestore.KVStoreService = StoreService{}

func (StoreService) OpenKVStore(ctx context.Context) corestore.KVStore {
	return kvStore{parent: StoreFromContext(ctx)}
}

type ledgerStoreService struct{}

func (ledgerStoreService) OpenKVStore(ctx context.Context) corestore.KVStore {
	return kvStore{parent: storeFromContext(ctx, ledgerStoreKey)}
}

type kvStore struct {
	parent storetypes.KVStore
}

func (s kvStore) Get(key []byte) ([]byte, error) {
	return s.parent.Get(key), nil
}

func (s kvStore) Has(key []byte) (bool, error) {
	return s.parent.Has(key), nil
}

func (s kvStore) Set(key, value []byte) error {
	s.parent.Set(key, value)
	return nil
}

func (s kvStore) Delete(key []byte) error {
	s.parent.Delete(key)
	return nil
}

func (s kvStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.parent.Iterator(start, end), nil
}

func (s kvStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.parent.ReverseIterator(start, end), nil
}
