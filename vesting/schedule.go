package vesting

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Schedule is a closed sum type: exactly one variant is set.
type Schedule struct {
	LinearVesting          *LinearVesting          `json:"linear_vesting,omitempty"`
	LinearVestingWithCliff *LinearVestingWithCliff `json:"linear_vesting_with_cliff,omitempty"`
}

// LinearVesting vests vesting_amount linearly from start_time to end_time.
type LinearVesting struct {
	StartTime     uint64       `json:"start_time,string"`
	EndTime       uint64       `json:"end_time,string"`
	VestingAmount sdkmath.Uint `json:"vesting_amount"`
}

// LinearVestingWithCliff releases the cliff amount at cliff_time and the rest linearly until end_time.
// The amounts live on the Account.
type LinearVestingWithCliff struct {
	StartTime uint64 `json:"start_time,string"`
	EndTime   uint64 `json:"end_time,string"`
	CliffTime uint64 `json:"cliff_time,string"`
}

// LinearVestingWithCliffLegacy is the cliff schedule with its amounts inlined.
// It is the query output form and the registration input of the cw20 variant.
type LinearVestingWithCliffLegacy struct {
	StartTime     uint64       `json:"start_time,string"`
	EndTime       uint64       `json:"end_time,string"`
	CliffTime     uint64       `json:"cliff_time,string"`
	VestingAmount sdkmath.Uint `json:"vesting_amount"`
	CliffAmount   sdkmath.Uint `json:"cliff_amount"`
}

// ScheduleOutput is the schedule as rendered by queries.
type ScheduleOutput struct {
	LinearVesting          *LinearVesting                `json:"linear_vesting,omitempty"`
	LinearVestingWithCliff *LinearVestingWithCliffLegacy `json:"linear_vesting_with_cliff,omitempty"`
}

func NewLinearVesting(start, end uint64, vestingAmount sdkmath.Uint) Schedule {
	return Schedule{LinearVesting: &LinearVesting{StartTime: start, EndTime: end, VestingAmount: vestingAmount}}
}

func NewLinearVestingWithCliff(start, end, cliff uint64) Schedule {
	return Schedule{LinearVestingWithCliff: &LinearVestingWithCliff{StartTime: start, EndTime: end, CliffTime: cliff}}
}

func (s Schedule) check() error {
	switch {
	case s.LinearVesting != nil && s.LinearVestingWithCliff == nil:
		return nil
	case s.LinearVesting == nil && s.LinearVestingWithCliff != nil:
		return nil
	}
	return errorsmod.Wrap(ErrUnknownSchedule, "exactly one of linear_vesting or linear_vesting_with_cliff must be set")
}

func (s Schedule) HasCliff() bool {
	return s.LinearVestingWithCliff != nil
}

// WithVestingAmount returns a copy whose LinearVesting amount matches the account it is stored with.
func (s Schedule) WithVestingAmount(amount sdkmath.Uint) Schedule {
	if s.LinearVesting != nil {
		lv := *s.LinearVesting
		lv.VestingAmount = amount
		return Schedule{LinearVesting: &lv}
	}
	if s.LinearVestingWithCliff != nil {
		c := *s.LinearVestingWithCliff
		return Schedule{LinearVestingWithCliff: &c}
	}
	return s
}

// ValidateTime checks the time ordering of the schedule against the block time of registration.
// A cliff equal to the block time is accepted.
func (s Schedule) ValidateTime(blockTime uint64) error {
	if err := s.check(); err != nil {
		return err
	}

	if lv := s.LinearVesting; lv != nil {
		if lv.EndTime <= lv.StartTime {
			return errInvalidTimeRange(lv.StartTime, lv.EndTime)
		}
		return nil
	}

	c := s.LinearVestingWithCliff
	if c.EndTime <= c.StartTime {
		return errInvalidTimeRange(c.StartTime, c.EndTime)
	}
	if c.CliffTime < c.StartTime || c.CliffTime > c.EndTime {
		return errInvalidCliffRange(c.StartTime, c.CliffTime, c.EndTime)
	}
	if c.CliffTime < blockTime {
		return errCliffInvalidTime(c.CliffTime, blockTime)
	}
	return nil
}

// ValidateAmounts checks the amounts an account would be registered with under this schedule.
func (s Schedule) ValidateAmounts(vestingAmount, cliffAmount sdkmath.Uint) error {
	if err := s.check(); err != nil {
		return err
	}
	if vestingAmount.IsZero() {
		return ErrZeroVestingAmount
	}
	if vestingAmount.GT(MaxUint128) {
		return errorsmod.Wrapf(ErrArithmetic, "vesting_amount (%s) exceeds Uint128", vestingAmount)
	}
	if s.HasCliff() && cliffAmount.IsZero() {
		return ErrCliffZeroAmount
	}
	if cliffAmount.GT(vestingAmount) {
		return errorsmod.Wrapf(ErrCliffExcessiveAmount,
			"cliff_amount (%s) should be less than or equal to vesting_amount (%s)", cliffAmount, vestingAmount)
	}
	return nil
}

func (s Schedule) Validate(blockTime uint64, vestingAmount, cliffAmount sdkmath.Uint) error {
	if err := s.ValidateTime(blockTime); err != nil {
		return err
	}
	return s.ValidateAmounts(vestingAmount, cliffAmount)
}

// VestedAmount is the amount vested at now. Division truncates.
func (s Schedule) VestedAmount(vestingAmount, cliffAmount sdkmath.Uint, now uint64) (sdkmath.Uint, error) {
	if err := s.check(); err != nil {
		return sdkmath.ZeroUint(), err
	}

	if lv := s.LinearVesting; lv != nil {
		switch {
		case now <= lv.StartTime:
			return sdkmath.ZeroUint(), nil
		case now >= lv.EndTime:
			return vestingAmount, nil
		}
		vested, err := checkedMul(vestingAmount, now-lv.StartTime)
		if err != nil {
			return sdkmath.ZeroUint(), err
		}
		return checkedDiv(vested, lv.EndTime-lv.StartTime)
	}

	c := s.LinearVestingWithCliff
	switch {
	case now < c.CliffTime:
		return sdkmath.ZeroUint(), nil
	case now == c.CliffTime:
		return cliffAmount, nil
	case now >= c.EndTime:
		return vestingAmount, nil
	}

	remaining, err := checkedSub(vestingAmount, cliffAmount)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	vested, err := checkedMul(remaining, now-c.CliffTime)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	if vested, err = checkedDiv(vested, c.EndTime-c.CliffTime); err != nil {
		return sdkmath.ZeroUint(), err
	}
	return checkedAdd(vested, cliffAmount)
}

// QueryOutput renders the schedule with its amounts inlined.
func (s Schedule) QueryOutput(vestingAmount, cliffAmount sdkmath.Uint) ScheduleOutput {
	if lv := s.LinearVesting; lv != nil {
		return ScheduleOutput{LinearVesting: &LinearVesting{
			StartTime:     lv.StartTime,
			EndTime:       lv.EndTime,
			VestingAmount: vestingAmount,
		}}
	}
	if c := s.LinearVestingWithCliff; c != nil {
		return ScheduleOutput{LinearVestingWithCliff: &LinearVestingWithCliffLegacy{
			StartTime:     c.StartTime,
			EndTime:       c.EndTime,
			CliffTime:     c.CliffTime,
			VestingAmount: vestingAmount,
			CliffAmount:   cliffAmount,
		}}
	}
	return ScheduleOutput{}
}

// Split separates a legacy schedule into its amount-free form and its amounts.
func (o ScheduleOutput) Split() (Schedule, sdkmath.Uint, sdkmath.Uint, error) {
	switch {
	case o.LinearVesting != nil && o.LinearVestingWithCliff == nil:
		lv := *o.LinearVesting
		return Schedule{LinearVesting: &lv}, lv.VestingAmount, sdkmath.ZeroUint(), nil
	case o.LinearVesting == nil && o.LinearVestingWithCliff != nil:
		c := o.LinearVestingWithCliff
		return NewLinearVestingWithCliff(c.StartTime, c.EndTime, c.CliffTime), c.VestingAmount, c.CliffAmount, nil
	}
	return Schedule{}, sdkmath.ZeroUint(), sdkmath.ZeroUint(),
		errorsmod.Wrap(ErrUnknownSchedule, "exactly one of linear_vesting or linear_vesting_with_cliff must be set")
}
