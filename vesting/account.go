package vesting

import (
	sdkmath "cosmossdk.io/math"
)

// Account is the vesting record of one beneficiary.
// MasterAddress is only used by the multi-denom variant.
type Account struct {
	MasterAddress string       `json:"master_address,omitempty"`
	Address       string       `json:"address"`
	VestingDenom  Denom        `json:"vesting_denom"`
	VestingAmount sdkmath.Uint `json:"vesting_amount"`
	CliffAmount   sdkmath.Uint `json:"cliff_amount"`
	Schedule      Schedule     `json:"vesting_schedule"`
	ClaimedAmount sdkmath.Uint `json:"claimed_amount"`
}

func NewAccount(address string, denom Denom, vestingAmount, cliffAmount sdkmath.Uint, schedule Schedule) Account {
	return Account{
		Address:       address,
		VestingDenom:  denom,
		VestingAmount: vestingAmount,
		CliffAmount:   cliffAmount,
		Schedule:      schedule.WithVestingAmount(vestingAmount),
		ClaimedAmount: sdkmath.ZeroUint(),
	}
}

func (a Account) VestedAmount(now uint64) (sdkmath.Uint, error) {
	return a.Schedule.VestedAmount(a.VestingAmount, a.CliffAmount, now)
}

// ClaimableAmount is vested minus claimed. A negative difference is an invariant breach.
func (a Account) ClaimableAmount(now uint64) (sdkmath.Uint, error) {
	vested, err := a.VestedAmount(now)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return checkedSub(vested, a.ClaimedAmount)
}

// Settle computes the amounts owed when the account is closed at now:
// vested but unclaimed, and not yet vested.
func (a Account) Settle(now uint64) (vested, claimable, left sdkmath.Uint, err error) {
	zero := sdkmath.ZeroUint()
	if vested, err = a.VestedAmount(now); err != nil {
		return zero, zero, zero, err
	}
	if claimable, err = checkedSub(vested, a.ClaimedAmount); err != nil {
		return zero, zero, zero, err
	}
	if left, err = checkedSub(a.VestingAmount, vested); err != nil {
		return zero, zero, zero, err
	}
	return vested, claimable, left, nil
}

func (a Account) FullyClaimed() bool {
	return a.ClaimedAmount.Equal(a.VestingAmount)
}

// Output is the query form of the schedule.
func (a Account) Output() ScheduleOutput {
	return a.Schedule.QueryOutput(a.VestingAmount, a.CliffAmount)
}
