package host

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	BalancesPrefix     = collections.NewPrefix(0)
	Cw20BalancesPrefix = collections.NewPrefix(1)
)

// Ledger holds the native and cw20 balances the runtime settles transfers against.
type Ledger struct {
	// (address, denom) -> amount
	balances collections.Map[collections.Pair[string, string], sdkmath.Int]
	// (token, address) -> amount
	cw20Balances collections.Map[collections.Pair[string, string], sdkmath.Int]
}

func NewLedger() *Ledger {
	sb := collections.NewSchemaBuilder(ledgerStoreService{})
	l := &Ledger{
		balances: collections.NewMap(sb, BalancesPrefix, "balances",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),
		cw20Balances: collections.NewMap(sb, Cw20BalancesPrefix, "cw20_balances",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return l
}

func getOrZero(ctx context.Context, m collections.Map[collections.Pair[string, string], sdkmath.Int], key collections.Pair[string, string]) (sdkmath.Int, error) {
	amount, err := m.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return amount, err
}

func (l *Ledger) Balance(ctx context.Context, address, denom string) (sdkmath.Int, error) {
	return getOrZero(ctx, l.balances, collections.Join(address, denom))
}

func (l *Ledger) Cw20Balance(ctx context.Context, token, address string) (sdkmath.Int, error) {
	return getOrZero(ctx, l.cw20Balances, collections.Join(token, address))
}

// Mint credits coins to address out of thin air.
func (l *Ledger) Mint(ctx context.Context, address string, coins sdk.Coins) error {
	for _, coin := range coins {
		if err := l.add(ctx, l.balances, collections.Join(address, coin.Denom), coin.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) MintCw20(ctx context.Context, token, address string, amount sdkmath.Int) error {
	return l.add(ctx, l.cw20Balances, collections.Join(token, address), amount)
}

// Send moves coins between two addresses, failing on the first shortfall.
func (l *Ledger) Send(ctx context.Context, from, to string, coins sdk.Coins) error {
	for _, coin := range coins {
		if err := l.move(ctx, l.balances, collections.Join(from, coin.Denom), collections.Join(to, coin.Denom), coin.Amount); err != nil {
			return errorsmod.Wrapf(err, "send %s from %s", coin, from)
		}
	}
	return nil
}

func (l *Ledger) TransferCw20(ctx context.Context, token, from, to string, amount sdkmath.Int) error {
	if err := l.move(ctx, l.cw20Balances, collections.Join(token, from), collections.Join(token, to), amount); err != nil {
		return errorsmod.Wrapf(err, "transfer %s of cw20 %s from %s", amount, token, from)
	}
	return nil
}

func (l *Ledger) add(ctx context.Context, m collections.Map[collections.Pair[string, string], sdkmath.Int], key collections.Pair[string, string], amount sdkmath.Int) error {
	if amount.IsNegative() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "negative amount %s", amount)
	}
	balance, err := getOrZero(ctx, m, key)
	if err != nil {
		return err
	}
	return m.Set(ctx, key, balance.Add(amount))
}

func (l *Ledger) move(ctx context.Context, m collections.Map[collections.Pair[string, string], sdkmath.Int], from, to collections.Pair[string, string], amount sdkmath.Int) error {
	if amount.IsNegative() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "negative amount %s", amount)
	}
	balance, err := getOrZero(ctx, m, from)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, amount)
	}
	if err := m.Set(ctx, from, balance.Sub(amount)); err != nil {
		return err
	}
	return l.add(ctx, m, to, amount)
}
