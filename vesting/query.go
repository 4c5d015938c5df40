package vesting

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/satlayer/satlayer-vesting/host"
)

// VestingData is one account as returned by queries.
type VestingData struct {
	MasterAddress   *string        `json:"master_address"`
	VestingDenom    Denom          `json:"vesting_denom"`
	VestingAmount   sdkmath.Uint   `json:"vesting_amount"`
	VestingSchedule ScheduleOutput `json:"vesting_schedule"`
	VestedAmount    sdkmath.Uint   `json:"vested_amount"`
	ClaimableAmount sdkmath.Uint   `json:"claimable_amount"`
}

type VestingAccountResponse struct {
	Address  string        `json:"address"`
	Vestings []VestingData `json:"vestings"`
}

type TreasuryResponse struct {
	Denom             string       `json:"denom"`
	UnallocatedAmount sdkmath.Uint `json:"unallocated_amount"`
	Admin             string       `json:"admin"`
	Members           []string     `json:"members"`
}

// VestingAccount lists the accounts of address ordered by denom key.
// An address without accounts yields an empty list.
func (e *Engine) VestingAccount(ctx context.Context, env host.Env, address string, startAfter *Denom, limit *uint32) (VestingAccountResponse, error) {
	if startAfter != nil {
		if err := startAfter.Validate(); err != nil {
			return VestingAccountResponse{}, err
		}
	}

	var admin *string
	if !e.multiDenom() {
		whitelist, err := e.treasury.Whitelist(ctx)
		if err != nil {
			return VestingAccountResponse{}, err
		}
		admin = &whitelist.Admin
	}

	accounts, err := e.accounts.Range(ctx, address, startAfter, clampLimit(limit))
	if err != nil {
		return VestingAccountResponse{}, err
	}

	vestings := make([]VestingData, 0, len(accounts))
	for _, account := range accounts {
		data, err := vestingData(account, env.Block.Time)
		if err != nil {
			return VestingAccountResponse{}, err
		}
		data.MasterAddress = admin
		if e.multiDenom() && account.MasterAddress != "" {
			master := account.MasterAddress
			data.MasterAddress = &master
		}
		vestings = append(vestings, data)
	}
	return VestingAccountResponse{Address: address, Vestings: vestings}, nil
}

// VestingAccounts runs VestingAccount for every address, in order, with the default page.
func (e *Engine) VestingAccounts(ctx context.Context, env host.Env, addresses []string) ([]VestingAccountResponse, error) {
	responses := make([]VestingAccountResponse, 0, len(addresses))
	for _, address := range addresses {
		res, err := e.VestingAccount(ctx, env, address, nil, nil)
		if err != nil {
			return nil, err
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func (e *Engine) Treasury(ctx context.Context) (TreasuryResponse, error) {
	if err := e.requireTreasury(); err != nil {
		return TreasuryResponse{}, err
	}
	denom, err := e.treasury.Denom(ctx)
	if err != nil {
		return TreasuryResponse{}, err
	}
	unallocated, err := e.treasury.Unallocated(ctx)
	if err != nil {
		return TreasuryResponse{}, err
	}
	whitelist, err := e.treasury.Whitelist(ctx)
	if err != nil {
		return TreasuryResponse{}, err
	}
	return TreasuryResponse{
		Denom:             denom,
		UnallocatedAmount: unallocated,
		Admin:             whitelist.Admin,
		Members:           whitelist.Members,
	}, nil
}

func vestingData(account Account, now uint64) (VestingData, error) {
	vested, err := account.VestedAmount(now)
	if err != nil {
		return VestingData{}, err
	}
	claimable, err := checkedSub(vested, account.ClaimedAmount)
	if err != nil {
		return VestingData{}, err
	}
	return VestingData{
		VestingDenom:    account.VestingDenom,
		VestingAmount:   account.VestingAmount,
		VestingSchedule: account.Output(),
		VestedAmount:    vested,
		ClaimableAmount: claimable,
	}, nil
}
