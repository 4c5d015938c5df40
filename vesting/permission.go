package vesting

import (
	"context"

	errorsmod "cosmossdk.io/errors"
)

// Capabilities of a caller.
type Capabilities struct {
	IsAdmin  bool
	IsMember bool
}

// CanManage reports whether the caller may register or deregister accounts.
func (c Capabilities) CanManage() bool {
	return c.IsAdmin || c.IsMember
}

// PermissionOracle resolves a caller into its capabilities.
type PermissionOracle interface {
	Capabilities(ctx context.Context, sender string) (Capabilities, error)
}

// WhitelistOracle reads the capabilities from the treasury whitelist.
type WhitelistOracle struct {
	treasury *Treasury
}

var _ PermissionOracle = WhitelistOracle{}

func NewWhitelistOracle(treasury *Treasury) WhitelistOracle {
	return WhitelistOracle{treasury: treasury}
}

func (o WhitelistOracle) Capabilities(ctx context.Context, sender string) (Capabilities, error) {
	whitelist, err := o.treasury.Whitelist(ctx)
	if err != nil {
		return Capabilities{}, err
	}
	return Capabilities{
		IsAdmin:  whitelist.IsAdmin(sender),
		IsMember: whitelist.IsMember(sender),
	}, nil
}

// authorizeMaster is the per-account policy of the multi-denom variant: only the stored
// master address may deregister, and an account without one cannot be deregistered.
func authorizeMaster(account Account, sender string) error {
	if account.MasterAddress == "" || account.MasterAddress != sender {
		return errorsmod.Wrapf(ErrUnauthorized, "sender %s is not the master address of %s", sender, account.Address)
	}
	return nil
}
