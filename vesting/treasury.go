package vesting

import (
	"context"
	"slices"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Whitelist holds the admin and the managers (members) of a treasury.
type Whitelist struct {
	Members []string `json:"members"`
	Admin   string   `json:"admin"`
}

func NewWhitelist(admin string, members []string) Whitelist {
	set := slices.Clone(members)
	slices.Sort(set)
	return Whitelist{Members: slices.Compact(set), Admin: admin}
}

func (w Whitelist) IsAdmin(addr string) bool {
	return w.Admin == addr
}

func (w Whitelist) IsMember(addr string) bool {
	_, found := slices.BinarySearch(w.Members, addr)
	return found
}

// Treasury tracks the single denom deposited at instantiation and the part of it
// not yet reserved by any account.
type Treasury struct {
	denom       collections.Item[string]
	unallocated collections.Item[sdkmath.Uint]
	whitelist   collections.Item[Whitelist]
}

func NewTreasury(sb *collections.SchemaBuilder) *Treasury {
	return &Treasury{
		denom:       collections.NewItem(sb, DenomKey, "denom", JSONValue[string]("denom")),
		unallocated: collections.NewItem(sb, UnallocatedAmountKey, "unallocated_amount", JSONValue[sdkmath.Uint]("unallocated_amount")),
		whitelist:   collections.NewItem(sb, WhitelistKey, "whitelist", JSONValue[Whitelist]("whitelist")),
	}
}

// Init stores the treasury. It fails when one is already stored.
func (t *Treasury) Init(ctx context.Context, denom string, deposit sdkmath.Uint, whitelist Whitelist) error {
	exists, err := t.denom.Has(ctx)
	if err != nil {
		return err
	}
	if exists {
		return errorsmod.Wrap(ErrInvalidInstantiation, "treasury is already initialized")
	}
	if err := t.denom.Set(ctx, denom); err != nil {
		return err
	}
	if err := t.unallocated.Set(ctx, deposit); err != nil {
		return err
	}
	return t.whitelist.Set(ctx, whitelist)
}

func (t *Treasury) Denom(ctx context.Context) (string, error) {
	return t.denom.Get(ctx)
}

func (t *Treasury) Unallocated(ctx context.Context) (sdkmath.Uint, error) {
	return t.unallocated.Get(ctx)
}

func (t *Treasury) Whitelist(ctx context.Context) (Whitelist, error) {
	return t.whitelist.Get(ctx)
}

// Reserve checks that total fits into the unallocated amount without changing it.
func (t *Treasury) Reserve(ctx context.Context, total sdkmath.Uint) error {
	unallocated, err := t.unallocated.Get(ctx)
	if err != nil {
		return err
	}
	if total.GT(unallocated) {
		return errorsmod.Wrapf(ErrInsufficientFunds,
			"Insufficient funds for all rewards. Contract has %s available but trying to allocate %s", unallocated, total)
	}
	return nil
}

// Debit removes total from the unallocated amount.
func (t *Treasury) Debit(ctx context.Context, total sdkmath.Uint) (sdkmath.Uint, error) {
	if err := t.Reserve(ctx, total); err != nil {
		return sdkmath.ZeroUint(), err
	}
	unallocated, err := t.unallocated.Get(ctx)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	remaining, err := checkedSub(unallocated, total)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return remaining, t.unallocated.Set(ctx, remaining)
}

// Withdraw takes at most amount out of the unallocated amount and returns what was taken
// together with what remains.
func (t *Treasury) Withdraw(ctx context.Context, amount sdkmath.Uint) (withdrawn, remaining sdkmath.Uint, err error) {
	unallocated, err := t.unallocated.Get(ctx)
	if err != nil {
		return sdkmath.ZeroUint(), sdkmath.ZeroUint(), err
	}
	withdrawn = sdkmath.MinUint(amount, unallocated)
	if withdrawn.IsZero() {
		return sdkmath.ZeroUint(), unallocated, ErrNothingToWithdraw
	}
	remaining = unallocated.Sub(withdrawn)
	return withdrawn, remaining, t.unallocated.Set(ctx, remaining)
}
