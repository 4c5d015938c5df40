package vesting

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of every error registered by this package.
const ModuleName = "vesting"

var (
	ErrUnauthorized         = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInvalidInstantiation = errorsmod.Register(ModuleName, 3, "invalid instantiation")
	ErrInvalidAddress       = errorsmod.Register(ModuleName, 4, "invalid address")
	ErrInvalidRequest       = errorsmod.Register(ModuleName, 5, "invalid request")

	ErrZeroVestingAmount    = errorsmod.Register(ModuleName, 10, "vesting_amount is zero but should be greater than 0")
	ErrInvalidTimeRange     = errorsmod.Register(ModuleName, 11, "invalid time range")
	ErrCliffZeroAmount      = errorsmod.Register(ModuleName, 12, "cliff_amount is zero but should be greater than 0")
	ErrCliffInvalidTime     = errorsmod.Register(ModuleName, 13, "invalid cliff time")
	ErrCliffExcessiveAmount = errorsmod.Register(ModuleName, 14, "excessive cliff amount")
	ErrMismatchedDeposit    = errorsmod.Register(ModuleName, 15, "mismatched vesting and deposit amount")
	ErrUnknownSchedule      = errorsmod.Register(ModuleName, 16, "unknown vesting schedule")

	ErrNotFound          = errorsmod.Register(ModuleName, 20, "vesting entry is not found")
	ErrAlreadyExists     = errorsmod.Register(ModuleName, 21, "already exists")
	ErrInsufficientFunds = errorsmod.Register(ModuleName, 22, "insufficient funds")
	ErrNothingToClaim    = errorsmod.Register(ModuleName, 23, "nothing left to claim")
	ErrNothingToWithdraw = errorsmod.Register(ModuleName, 24, "Nothing to withdraw")

	ErrArithmetic = errorsmod.Register(ModuleName, 30, "arithmetic error")
)

func errInvalidTimeRange(start, end uint64) error {
	return errorsmod.Wrapf(ErrInvalidTimeRange, "end_time (%d) should be greater than start_time (%d)", end, start)
}

func errInvalidCliffRange(start, cliff, end uint64) error {
	return errorsmod.Wrapf(ErrInvalidTimeRange,
		"cliff_time (%d) should be within start_time (%d) and end_time (%d)", cliff, start, end)
}

func errCliffInvalidTime(cliff, block uint64) error {
	return errorsmod.Wrapf(ErrCliffInvalidTime, "cliff_time (%d) should be greater than block_time (%d)", cliff, block)
}
