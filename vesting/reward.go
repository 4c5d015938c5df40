package vesting

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/satlayer/satlayer-vesting/host"
)

// RewardRequest asks for one account to be registered out of the treasury.
// CliffAmount is nil when the request carries none.
type RewardRequest struct {
	UserAddress   string
	VestingAmount sdkmath.Uint
	CliffAmount   *sdkmath.Uint
}

func (r RewardRequest) cliff() sdkmath.Uint {
	if r.CliffAmount == nil {
		return sdkmath.ZeroUint()
	}
	return *r.CliffAmount
}

// ItemResult reports the outcome of one entry of a batch.
type ItemResult struct {
	UserAddress string `json:"user_address"`
	Success     bool   `json:"success"`
	ErrorMsg    string `json:"error_msg"`
}

// RewardUsers registers one account per request under a shared schedule.
//
// The batch total is checked against the unallocated amount before anything is written
// and debited in full afterwards, including the amounts of requests that failed to register.
// A request that fails validation aborts the batch; a request whose registration fails
// (e.g. the account already exists) is reported in the data payload and skipped.
func (e *Engine) RewardUsers(ctx context.Context, env host.Env, info host.MessageInfo, rewards []RewardRequest, schedule Schedule) (*host.Response, []ItemResult, error) {
	if err := e.requireTreasury(); err != nil {
		return nil, nil, err
	}

	caps, err := e.capabilities(ctx, info.Sender)
	if err != nil {
		return nil, nil, err
	}
	if !caps.CanManage() {
		return nil, nil, errorsmod.Wrapf(ErrUnauthorized, "Sender %s is unauthorized to reward users.", info.Sender)
	}

	denom, err := e.treasury.Denom(ctx)
	if err != nil {
		return nil, nil, err
	}

	amounts := make([]sdkmath.Uint, 0, len(rewards))
	for _, req := range rewards {
		amounts = append(amounts, req.VestingAmount)
	}
	total, err := Sum(amounts...)
	if err != nil {
		return nil, nil, err
	}
	if err := e.treasury.Reserve(ctx, total); err != nil {
		return nil, nil, err
	}

	if err := schedule.ValidateTime(env.Block.Time); err != nil {
		return nil, nil, err
	}

	res := host.NewResponse()
	results := make([]ItemResult, 0, len(rewards))
	for _, req := range rewards {
		if schedule.HasCliff() && req.CliffAmount == nil {
			return nil, nil, ErrCliffZeroAmount
		}
		if err := schedule.ValidateAmounts(req.VestingAmount, req.cliff()); err != nil {
			return nil, nil, err
		}

		attrs, err := e.register(ctx, env, "", req.UserAddress, NativeDenom(denom), req.VestingAmount, req.cliff(), schedule)
		if errors.Is(err, ErrArithmetic) {
			return nil, nil, err
		}
		if err != nil {
			results = append(results, ItemResult{
				UserAddress: req.UserAddress,
				ErrorMsg:    "Failed to register vesting account: " + err.Error(),
			})
			continue
		}
		res.AddAttributes(attrs...)
		results = append(results, ItemResult{UserAddress: req.UserAddress, Success: true})
	}

	if _, err := e.treasury.Debit(ctx, total); err != nil {
		return nil, nil, err
	}

	res.AddAttribute("method", "reward_users")
	if err := res.SetJSONData(results); err != nil {
		return nil, nil, err
	}
	return res, results, nil
}

// RegisterVestingAccount registers an account funded by its own deposit.
// The schedule carries its amounts, which must match the deposit.
func (e *Engine) RegisterVestingAccount(ctx context.Context, env host.Env, masterAddress, address string, deposit Denom, depositAmount sdkmath.Uint, schedule ScheduleOutput) (*host.Response, error) {
	if err := deposit.Validate(); err != nil {
		return nil, err
	}
	if err := e.validateOptionalAddress(masterAddress); err != nil {
		return nil, err
	}

	sched, vestingAmount, cliffAmount, err := schedule.Split()
	if err != nil {
		return nil, err
	}
	if !vestingAmount.Equal(depositAmount) {
		return nil, errorsmod.Wrapf(ErrMismatchedDeposit,
			"vesting_amount (%s) should be equal to deposit_amount (%s)", vestingAmount, depositAmount)
	}

	attrs, err := e.register(ctx, env, masterAddress, address, deposit, vestingAmount, cliffAmount, sched)
	if err != nil {
		return nil, err
	}
	return host.NewResponse().AddAttributes(attrs...), nil
}

// register writes one account if none exists at its key. It returns the registration attributes.
func (e *Engine) register(ctx context.Context, env host.Env, masterAddress, address string, denom Denom, vestingAmount, cliffAmount sdkmath.Uint, schedule Schedule) ([]wasmvmtypes.EventAttribute, error) {
	if err := e.validateAddress(address); err != nil {
		return nil, err
	}

	exists, err := e.accounts.Has(ctx, address, denom)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorsmod.Wrapf(ErrAlreadyExists, "User %s already has a vesting account", address)
	}

	if err := schedule.Validate(env.Block.Time, vestingAmount, cliffAmount); err != nil {
		return nil, err
	}

	account := NewAccount(address, denom, vestingAmount, cliffAmount, schedule)
	account.MasterAddress = masterAddress
	if err := e.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	if e.multiDenom() {
		return []wasmvmtypes.EventAttribute{
			host.Attr("action", "register_vesting_account"),
			host.Attr("master_address", masterAddress),
			host.Attr("address", address),
			host.Attr("vesting_denom", denom.String()),
			host.Attr("vesting_amount", vestingAmount.String()),
		}, nil
	}
	return []wasmvmtypes.EventAttribute{
		host.Attr("action", "register_vesting_account"),
		host.Attr("address", address),
		host.Attr("vesting_amount", vestingAmount.String()),
	}, nil
}
