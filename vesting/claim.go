package vesting

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/satlayer/satlayer-vesting/host"
)

// Claim pays the sender everything vested but not yet claimed on its account in the
// treasury denom. The account is removed once fully claimed.
func (e *Engine) Claim(ctx context.Context, env host.Env, info host.MessageInfo, recipient string) (*host.Response, error) {
	if err := e.requireTreasury(); err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(recipient); err != nil {
		return nil, err
	}

	denom, err := e.treasury.Denom(ctx)
	if err != nil {
		return nil, err
	}

	res := host.NewResponse().
		AddAttribute("action", "claim").
		AddAttribute("address", info.Sender)

	claimed, err := e.claim(ctx, env, res, info.Sender, NativeDenom(denom), recipient)
	if err != nil {
		return nil, err
	}
	if claimed.IsZero() {
		return nil, ErrNothingToClaim
	}
	return res, nil
}

// ClaimDenoms claims every listed denom of the sender in order. Denoms with nothing
// claimable are skipped; the call fails when none of them had anything to claim.
func (e *Engine) ClaimDenoms(ctx context.Context, env host.Env, info host.MessageInfo, denoms []Denom, recipient string) (*host.Response, error) {
	if err := e.validateOptionalAddress(recipient); err != nil {
		return nil, err
	}

	res := host.NewResponse().
		AddAttribute("action", "claim").
		AddAttribute("address", info.Sender)

	total := sdkmath.ZeroUint()
	for _, denom := range denoms {
		if err := denom.Validate(); err != nil {
			return nil, err
		}
		claimed, err := e.claim(ctx, env, res, info.Sender, denom, recipient)
		if err != nil {
			return nil, err
		}
		if total, err = checkedAdd(total, claimed); err != nil {
			return nil, err
		}
	}
	if total.IsZero() {
		return nil, ErrNothingToClaim
	}
	return res, nil
}

// claim settles one account and returns the claimed amount, zero when nothing was claimable.
func (e *Engine) claim(ctx context.Context, env host.Env, res *host.Response, sender string, denom Denom, recipient string) (sdkmath.Uint, error) {
	account, err := e.accounts.MayLoad(ctx, sender, denom)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if account == nil {
		label := denom.String()
		if !e.multiDenom() {
			label = denom.Native
		}
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrNotFound, "vesting entry is not found for denom %s", label)
	}

	vested, err := account.VestedAmount(env.Block.Time)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	claimable, err := checkedSub(vested, account.ClaimedAmount)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if claimable.IsZero() {
		return claimable, nil
	}

	account.ClaimedAmount = vested
	if account.FullyClaimed() {
		err = e.accounts.Remove(ctx, account.Address, denom)
	} else {
		err = e.accounts.Save(ctx, *account)
	}
	if err != nil {
		return sdkmath.ZeroUint(), err
	}

	if err := e.payout.SendIfNonZero(res, account.VestingDenom, claimable, recipient, sender); err != nil {
		return sdkmath.ZeroUint(), err
	}

	if e.multiDenom() {
		res.AddAttribute("vesting_denom", account.VestingDenom.String())
	}
	res.AddAttribute("vesting_amount", account.VestingAmount.String()).
		AddAttribute("vested_amount", vested.String()).
		AddAttribute("claim_amount", claimable.String())
	return claimable, nil
}
