package vesting

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
)

// AccountStore persists accounts under their key and enforces nothing beyond it:
// uniqueness is checked by the engine with Has before Save.
type AccountStore interface {
	Has(ctx context.Context, address string, denom Denom) (bool, error)
	Save(ctx context.Context, account Account) error
	MayLoad(ctx context.Context, address string, denom Denom) (*Account, error)
	Remove(ctx context.Context, address string, denom Denom) error
	// Range lists the accounts of address ordered by denom key, after startAfter if given.
	Range(ctx context.Context, address string, startAfter *Denom, limit uint32) ([]Account, error)
}

// AddressKeyedStore keys accounts by address only. The denom is a treasury singleton.
type AddressKeyedStore struct {
	accounts collections.Map[string, Account]
}

var _ AccountStore = (*AddressKeyedStore)(nil)

func NewAddressKeyedStore(sb *collections.SchemaBuilder) *AddressKeyedStore {
	return &AddressKeyedStore{
		accounts: collections.NewMap(sb, VestingAccountsKey, "vesting_accounts",
			collections.StringKey, JSONValue[Account]("vesting_account")),
	}
}

func (s *AddressKeyedStore) Has(ctx context.Context, address string, _ Denom) (bool, error) {
	return s.accounts.Has(ctx, address)
}

func (s *AddressKeyedStore) Save(ctx context.Context, account Account) error {
	return s.accounts.Set(ctx, account.Address, account)
}

func (s *AddressKeyedStore) MayLoad(ctx context.Context, address string, _ Denom) (*Account, error) {
	account, err := s.accounts.Get(ctx, address)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AddressKeyedStore) Remove(ctx context.Context, address string, _ Denom) error {
	return s.accounts.Remove(ctx, address)
}

func (s *AddressKeyedStore) Range(ctx context.Context, address string, startAfter *Denom, limit uint32) ([]Account, error) {
	accounts := []Account{}
	if limit == 0 {
		return accounts, nil
	}
	account, err := s.MayLoad(ctx, address, Denom{})
	if err != nil || account == nil {
		return accounts, err
	}
	if startAfter != nil && account.VestingDenom.Key() <= startAfter.Key() {
		return accounts, nil
	}
	return append(accounts, *account), nil
}

// DenomKeyedStore keys accounts by (address, denom key).
type DenomKeyedStore struct {
	accounts collections.Map[collections.Pair[string, string], Account]
}

var _ AccountStore = (*DenomKeyedStore)(nil)

func NewDenomKeyedStore(sb *collections.SchemaBuilder) *DenomKeyedStore {
	return &DenomKeyedStore{
		accounts: collections.NewMap(sb, VestingAccountsKey, "vesting_accounts",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), JSONValue[Account]("vesting_account")),
	}
}

func accountKey(address string, denom Denom) collections.Pair[string, string] {
	return collections.Join(address, denom.Key())
}

func (s *DenomKeyedStore) Has(ctx context.Context, address string, denom Denom) (bool, error) {
	return s.accounts.Has(ctx, accountKey(address, denom))
}

func (s *DenomKeyedStore) Save(ctx context.Context, account Account) error {
	return s.accounts.Set(ctx, accountKey(account.Address, account.VestingDenom), account)
}

func (s *DenomKeyedStore) MayLoad(ctx context.Context, address string, denom Denom) (*Account, error) {
	account, err := s.accounts.Get(ctx, accountKey(address, denom))
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *DenomKeyedStore) Remove(ctx context.Context, address string, denom Denom) error {
	return s.accounts.Remove(ctx, accountKey(address, denom))
}

func (s *DenomKeyedStore) Range(ctx context.Context, address string, startAfter *Denom, limit uint32) ([]Account, error) {
	accounts := []Account{}
	if limit == 0 {
		return accounts, nil
	}

	rng := collections.NewPrefixedPairRange[string, string](address)
	if startAfter != nil {
		rng = rng.StartExclusive(startAfter.Key())
	}

	iter, err := s.accounts.Iterate(ctx, rng)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	for ; iter.Valid() && uint32(len(accounts)) < limit; iter.Next() {
		account, err := iter.Value()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
