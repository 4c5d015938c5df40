package vesting

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/satlayer/satlayer-vesting/host"
)

// Withdraw moves at most amount of the unallocated treasury to recipient. Admin only.
func (e *Engine) Withdraw(ctx context.Context, env host.Env, info host.MessageInfo, amount sdkmath.Uint, recipient string) (*host.Response, error) {
	if err := e.requireTreasury(); err != nil {
		return nil, err
	}

	caps, err := e.capabilities(ctx, info.Sender)
	if err != nil {
		return nil, err
	}
	if !caps.IsAdmin {
		return nil, errorsmod.Wrap(ErrUnauthorized, "Unauthorized")
	}
	if err := e.validateAddress(recipient); err != nil {
		return nil, err
	}

	denom, err := e.treasury.Denom(ctx)
	if err != nil {
		return nil, err
	}
	withdrawn, remaining, err := e.treasury.Withdraw(ctx, amount)
	if err != nil {
		return nil, err
	}

	res := host.NewResponse()
	if err := e.payout.SendIfNonZero(res, NativeDenom(denom), withdrawn, recipient, info.Sender); err != nil {
		return nil, err
	}
	res.AddAttribute("action", "withdraw").
		AddAttribute("recipient", recipient).
		AddAttribute("amount", withdrawn.String()).
		AddAttribute("unallocated_amount", remaining.String())
	return res, nil
}
