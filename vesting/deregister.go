package vesting

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"

	"github.com/satlayer/satlayer-vesting/host"
)

// DeregisterVestingAccount closes the account of address. The vested but unclaimed part goes to
// vestedRecipient (default: the account address) and the part not yet vested goes to
// leftRecipient (default: the admin). Nothing is credited back to the treasury.
func (e *Engine) DeregisterVestingAccount(ctx context.Context, env host.Env, info host.MessageInfo, address, vestedRecipient, leftRecipient string) (*host.Response, error) {
	whitelist, err := e.authorizeDeregister(ctx, info.Sender)
	if err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(vestedRecipient); err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(leftRecipient); err != nil {
		return nil, err
	}
	return e.deregisterAddress(ctx, env, address, vestedRecipient, leftRecipient, whitelist.Admin)
}

// DeregisterVestingAccounts closes every listed account with the default recipients.
// Accounts that cannot be closed are reported in the data payload and skipped.
func (e *Engine) DeregisterVestingAccounts(ctx context.Context, env host.Env, info host.MessageInfo, addresses []string) (*host.Response, []ItemResult, error) {
	whitelist, err := e.authorizeDeregister(ctx, info.Sender)
	if err != nil {
		return nil, nil, err
	}

	res := host.NewResponse()
	results := make([]ItemResult, 0, len(addresses))
	for _, address := range addresses {
		sub, err := e.deregisterAddress(ctx, env, address, "", "", whitelist.Admin)
		if errors.Is(err, ErrArithmetic) {
			return nil, nil, err
		}
		if err != nil {
			results = append(results, ItemResult{
				UserAddress: address,
				ErrorMsg:    "Failed to deregister vesting account: " + err.Error(),
			})
			continue
		}
		res.Merge(sub)
		results = append(results, ItemResult{UserAddress: address, Success: true})
	}

	res.AddAttribute("action", "deregister_vesting_accounts")
	if err := res.SetJSONData(results); err != nil {
		return nil, nil, err
	}
	return res, results, nil
}

// DeregisterDenomAccount closes the (address, denom) account of the multi-denom variant.
// Only the master address stored on the account may do so; the not yet vested part
// defaults to it.
func (e *Engine) DeregisterDenomAccount(ctx context.Context, env host.Env, info host.MessageInfo, address string, denom Denom, vestedRecipient, leftRecipient string) (*host.Response, error) {
	if err := denom.Validate(); err != nil {
		return nil, err
	}

	account, err := e.accounts.MayLoad(ctx, address, denom)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errorsmod.Wrapf(ErrNotFound, "vesting entry is not found for denom %s", denom)
	}
	if err := authorizeMaster(*account, info.Sender); err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(vestedRecipient); err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(leftRecipient); err != nil {
		return nil, err
	}
	return e.deregister(ctx, env, *account, vestedRecipient, leftRecipient, info.Sender)
}

func (e *Engine) authorizeDeregister(ctx context.Context, sender string) (Whitelist, error) {
	if err := e.requireTreasury(); err != nil {
		return Whitelist{}, err
	}
	caps, err := e.capabilities(ctx, sender)
	if err != nil {
		return Whitelist{}, err
	}
	if !caps.CanManage() {
		return Whitelist{}, errorsmod.Wrapf(ErrUnauthorized, "Sender %s is not authorized to deregister vesting accounts.", sender)
	}
	return e.treasury.Whitelist(ctx)
}

func (e *Engine) deregisterAddress(ctx context.Context, env host.Env, address, vestedRecipient, leftRecipient, admin string) (*host.Response, error) {
	denom, err := e.treasury.Denom(ctx)
	if err != nil {
		return nil, err
	}
	account, err := e.accounts.MayLoad(ctx, address, NativeDenom(denom))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errorsmod.Wrapf(ErrNotFound, "User %s does not have a vesting account.", address)
	}
	return e.deregister(ctx, env, *account, vestedRecipient, leftRecipient, admin)
}

// deregister removes the account and pays out both parts of it.
func (e *Engine) deregister(ctx context.Context, env host.Env, account Account, vestedRecipient, leftRecipient, leftFallback string) (*host.Response, error) {
	vested, claimable, left, err := account.Settle(env.Block.Time)
	if err != nil {
		return nil, err
	}

	if err := e.accounts.Remove(ctx, account.Address, account.VestingDenom); err != nil {
		return nil, err
	}

	res := host.NewResponse()
	if err := e.payout.SendIfNonZero(res, account.VestingDenom, claimable, vestedRecipient, account.Address); err != nil {
		return nil, err
	}
	if err := e.payout.SendIfNonZero(res, account.VestingDenom, left, leftRecipient, leftFallback); err != nil {
		return nil, err
	}

	res.AddAttribute("action", "deregister_vesting_account").
		AddAttribute("address", account.Address)
	if e.multiDenom() {
		res.AddAttribute("vesting_denom", account.VestingDenom.String())
	}
	res.AddAttribute("vesting_amount", account.VestingAmount.String()).
		AddAttribute("vested_amount", vested.String()).
		AddAttribute("left_vesting_amount", left.String())
	return res, nil
}
