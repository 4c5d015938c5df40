// Package coretokenvestingv2 is the single-denom vesting contract with cliff schedules,
// batch deregistration and multi-address queries.
package coretokenvestingv2

import (
	"context"
	"encoding/json"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	schema "github.com/satlayer/satlayer-vesting/cosmwasm-schema/core-token-vesting-v2"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting"
)

const Name = "core-token-vesting-v2"

type Contract struct {
	engine *vesting.Engine
}

var _ host.Contract = (*Contract)(nil)

func NewContract(bech32Prefix string, opts ...vesting.Option) (*Contract, error) {
	sb := collections.NewSchemaBuilder(host.StoreService{})
	treasury := vesting.NewTreasury(sb)
	accounts := vesting.NewAddressKeyedStore(sb)
	if _, err := sb.Build(); err != nil {
		return nil, err
	}
	return &Contract{
		engine: vesting.NewTreasuryEngine(treasury, accounts, host.Bech32Validator{Prefix: bech32Prefix}, opts...),
	}, nil
}

func (c *Contract) Instantiate(ctx context.Context, env host.Env, info host.MessageInfo, raw []byte) (*host.Response, error) {
	var msg schema.InstantiateMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	return c.engine.Instantiate(ctx, info, msg.Admin, msg.Managers)
}

func (c *Contract) Execute(ctx context.Context, env host.Env, info host.MessageInfo, raw []byte) (*host.Response, error) {
	var msg schema.ExecuteMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if err := host.OneOf(
		msg.RewardUsers != nil,
		msg.DeregisterVestingAccounts != nil,
		msg.Claim != nil,
		msg.Withdraw != nil,
	); err != nil {
		return nil, err
	}

	switch {
	case msg.RewardUsers != nil:
		return c.rewardUsers(ctx, env, info, *msg.RewardUsers)
	case msg.DeregisterVestingAccounts != nil:
		res, _, err := c.engine.DeregisterVestingAccounts(ctx, env, info, msg.DeregisterVestingAccounts.Addresses)
		return res, err
	case msg.Claim != nil:
		// Accounts only exist in the treasury denom.
		return c.engine.Claim(ctx, env, info, host.Deref(msg.Claim.Recipient))
	default:
		amount, err := vesting.ParseAmount(msg.Withdraw.Amount)
		if err != nil {
			return nil, err
		}
		return c.engine.Withdraw(ctx, env, info, amount, msg.Withdraw.Recipient)
	}
}

func (c *Contract) rewardUsers(ctx context.Context, env host.Env, info host.MessageInfo, msg schema.RewardUsers) (*host.Response, error) {
	cliffSchedule := msg.VestingSchedule.LinearVestingWithCliff
	if cliffSchedule == nil {
		return nil, errorsmod.Wrap(vesting.ErrUnknownSchedule, "linear_vesting_with_cliff must be set")
	}
	start, err := vesting.ParseTime(cliffSchedule.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := vesting.ParseTime(cliffSchedule.EndTime)
	if err != nil {
		return nil, err
	}
	cliff, err := vesting.ParseTime(cliffSchedule.CliffTime)
	if err != nil {
		return nil, err
	}

	rewards := make([]vesting.RewardRequest, 0, len(msg.Rewards))
	for _, r := range msg.Rewards {
		vestingAmount, err := vesting.ParseAmount(r.VestingAmount)
		if err != nil {
			return nil, err
		}
		cliffAmount, err := vesting.ParseAmount(r.CliffAmount)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, vesting.RewardRequest{
			UserAddress:   r.UserAddress,
			VestingAmount: vestingAmount,
			CliffAmount:   &cliffAmount,
		})
	}

	res, _, err := c.engine.RewardUsers(ctx, env, info, rewards, vesting.NewLinearVestingWithCliff(start, end, cliff))
	return res, err
}

func (c *Contract) Query(ctx context.Context, env host.Env, raw []byte) ([]byte, error) {
	var msg schema.QueryMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if err := host.OneOf(msg.VestingAccount != nil, msg.VestingAccounts != nil, msg.Treasury != nil); err != nil {
		return nil, err
	}

	switch {
	case msg.VestingAccount != nil:
		var startAfter *vesting.Denom
		if msg.VestingAccount.StartAfter != nil {
			d := toDenom(*msg.VestingAccount.StartAfter)
			startAfter = &d
		}
		res, err := c.engine.VestingAccount(ctx, env, msg.VestingAccount.Address, startAfter, msg.VestingAccount.Limit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	case msg.VestingAccounts != nil:
		res, err := c.engine.VestingAccounts(ctx, env, msg.VestingAccounts.Address)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	default:
		res, err := c.engine.Treasury(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	}
}

func toDenom(d schema.Denom) vesting.Denom {
	return vesting.Denom{Native: host.Deref(d.Native), Cw20: host.Deref(d.Cw20)}
}
