package vesting

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/satlayer/satlayer-vesting/host"
)

// Engine runs the vesting operations on top of the stores of one contract instance.
// Every method is meant to run inside a single host invocation, so a returned error
// discards all writes made by the call.
//
// A treasury engine (airdrop and v2 contracts) holds one denom deposited at instantiation
// and lets whitelisted managers reward users out of it. A multi-denom engine has no
// treasury: each account is funded by its own deposit and owned by its master address.
type Engine struct {
	treasury    *Treasury
	accounts    AccountStore
	permissions PermissionOracle
	payout      Payout
	addresses   host.AddressValidator
}

type Option func(*Engine)

func WithPayout(payout Payout) Option {
	return func(e *Engine) {
		e.payout = payout
	}
}

func WithPermissionOracle(oracle PermissionOracle) Option {
	return func(e *Engine) {
		e.permissions = oracle
	}
}

func NewTreasuryEngine(treasury *Treasury, accounts AccountStore, addresses host.AddressValidator, opts ...Option) *Engine {
	e := &Engine{
		treasury:    treasury,
		accounts:    accounts,
		permissions: NewWhitelistOracle(treasury),
		payout:      MsgPayout{},
		addresses:   addresses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewMultiDenomEngine(accounts AccountStore, addresses host.AddressValidator, opts ...Option) *Engine {
	e := &Engine{
		accounts:  accounts,
		payout:    MsgPayout{},
		addresses: addresses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) multiDenom() bool {
	return e.treasury == nil
}

func (e *Engine) requireTreasury() error {
	if e.treasury == nil {
		return errorsmod.Wrap(ErrInvalidRequest, "operation requires a treasury")
	}
	return nil
}

func (e *Engine) validateAddress(addr string) error {
	if err := e.addresses.ValidateAddress(addr); err != nil {
		return errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}
	return nil
}

// validateOptionalAddress accepts an empty string, meaning "use the default".
func (e *Engine) validateOptionalAddress(addr string) error {
	if addr == "" {
		return nil
	}
	return e.validateAddress(addr)
}

func (e *Engine) capabilities(ctx context.Context, sender string) (Capabilities, error) {
	if e.permissions == nil {
		return Capabilities{}, nil
	}
	return e.permissions.Capabilities(ctx, sender)
}

// Instantiate creates the treasury out of the single coin attached to the call.
func (e *Engine) Instantiate(ctx context.Context, info host.MessageInfo, admin string, managers []string) (*host.Response, error) {
	if err := e.requireTreasury(); err != nil {
		return nil, err
	}

	if len(info.Funds) != 1 {
		return nil, errorsmod.Wrap(ErrInvalidInstantiation, "must deposit exactly one type of token")
	}
	coin := info.Funds[0]
	if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
		return nil, errorsmod.Wrap(ErrInvalidInstantiation, "must deposit some token")
	}
	deposit := sdkmath.NewUintFromBigInt(coin.Amount.BigInt())
	if deposit.GT(MaxUint128) {
		return nil, errorsmod.Wrapf(ErrInvalidInstantiation, "deposit %s exceeds Uint128", coin)
	}

	if len(managers) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidInstantiation, "managers cannot be empty")
	}
	for _, addr := range append([]string{admin}, managers...) {
		if err := e.addresses.ValidateAddress(addr); err != nil {
			return nil, errorsmod.Wrap(ErrInvalidInstantiation, err.Error())
		}
	}

	if err := e.treasury.Init(ctx, coin.Denom, deposit, NewWhitelist(admin, managers)); err != nil {
		return nil, err
	}
	return host.NewResponse(), nil
}
