// Package airdroptokenvesting is the single-denom vesting contract used for airdrops.
// Managers reward users out of the treasury deposited at instantiation.
package airdroptokenvesting

import (
	"context"
	"encoding/json"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	schema "github.com/satlayer/satlayer-vesting/cosmwasm-schema/airdrop-token-vesting"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting"
)

const Name = "airdrop-token-vesting"

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
		msg.DeregisterVestingAccount != nil,
		msg.Claim != nil,
		msg.Withdraw != nil,
	); err != nil {
		return nil, err
	}

	switch {
	case msg.RewardUsers != nil:
		return c.rewardUsers(ctx, env, info, *msg.RewardUsers)
	case msg.DeregisterVestingAccount != nil:
		m := msg.DeregisterVestingAccount
		return c.engine.DeregisterVestingAccount(ctx, env, info, m.Address,
			host.Deref(m.VestedTokenRecipient), host.Deref(m.LeftVestingTokenRecipient))
	case msg.Claim != nil:
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
	schedule, err := toSchedule(msg.VestingSchedule)
	if err != nil {
		return nil, err
	}

	rewards := make([]vesting.RewardRequest, 0, len(msg.Rewards))
	for _, r := range msg.Rewards {
		req := vesting.RewardRequest{UserAddress: r.UserAddress}
		if req.VestingAmount, err = vesting.ParseAmount(r.VestingAmount); err != nil {
			return nil, err
		}
		if r.CliffAmount != nil {
			cliff, err := vesting.ParseAmount(*r.CliffAmount)
			if err != nil {
				return nil, err
			}
			req.CliffAmount = &cliff
		}
		rewards = append(rewards, req)
	}

	res, _, err := c.engine.RewardUsers(ctx, env, info, rewards, schedule)
	return res, err
}

// toSchedule drops the amounts carried by the schedule; each request brings its own.
func toSchedule(s schema.VestingSchedule) (vesting.Schedule, error) {
	var schedule vesting.Schedule
	if lv := s.LinearVesting; lv != nil {
		start, err := vesting.ParseTime(lv.StartTime)
		if err != nil {
			return schedule, err
		}
		end, err := vesting.ParseTime(lv.EndTime)
		if err != nil {
			return schedule, err
		}
		schedule.LinearVesting = vesting.NewLinearVesting(start, end, sdkmath.ZeroUint()).LinearVesting
	}
	if c := s.LinearVestingWithCliff; c != nil {
		start, err := vesting.ParseTime(c.StartTime)
		if err != nil {
			return schedule, err
		}
		end, err := vesting.ParseTime(c.EndTime)
		if err != nil {
			return schedule, err
		}
		cliff, err := vesting.ParseTime(c.CliffTime)
		if err != nil {
			return schedule, err
		}
		schedule.LinearVestingWithCliff = vesting.NewLinearVestingWithCliff(start, end, cliff).LinearVestingWithCliff
	}
	return schedule, nil
}

func (c *Contract) Query(ctx context.Context, env host.Env, raw []byte) ([]byte, error) {
	var msg schema.QueryMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if err := host.OneOf(msg.VestingAccount != nil, msg.Treasury != nil); err != nil {
		return nil, err
	}

	if msg.VestingAccount != nil {
		res, err := c.engine.VestingAccount(ctx, env, msg.VestingAccount.Address, nil, nil)
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	}
	res, err := c.engine.Treasury(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
