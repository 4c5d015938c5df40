// Package coretokenvesting is the multi-denom vesting contract. Every account is funded by its
// own deposit, either native coins attached to RegisterVestingAccount or cw20 tokens sent with
// a RegisterVestingAccount hook, and can only be closed by its master address.
package coretokenvesting

import (
	"context"
	"encoding/json"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	schema "github.com/satlayer/satlayer-vesting/cosmwasm-schema/core-token-vesting"
	"github.com/satlayer/satlayer-vesting/cw20"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting"
)

const Name = "core-token-vesting"

type Contract struct {
	engine *vesting.Engine
}

var _ host.Contract = (*Contract)(nil)

func NewContract(bech32Prefix string, opts ...vesting.Option) (*Contract, error) {
	sb := collections.NewSchemaBuilder(host.StoreService{})
	accounts := vesting.NewDenomKeyedStore(sb)
	if _, err := sb.Build(); err != nil {
		return nil, err
	}
	return &Contract{
		engine: vesting.NewMultiDenomEngine(accounts, host.Bech32Validator{Prefix: bech32Prefix}, opts...),
	}, nil
}

func (c *Contract) Instantiate(ctx context.Context, env host.Env, info host.MessageInfo, raw []byte) (*host.Response, error) {
	var msg schema.InstantiateMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if len(info.Funds) != 0 {
		return nil, errorsmod.Wrap(vesting.ErrInvalidInstantiation, "instantiation does not accept funds")
	}
	return host.NewResponse(), nil
}

func (c *Contract) Execute(ctx context.Context, env host.Env, info host.MessageInfo, raw []byte) (*host.Response, error) {
	var msg schema.ExecuteMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if err := host.OneOf(
		msg.Receive != nil,
		msg.RegisterVestingAccount != nil,
		msg.DeregisterVestingAccount != nil,
		msg.Claim != nil,
	); err != nil {
		return nil, err
	}

	switch {
	case msg.Receive != nil:
		return c.receive(ctx, env, info, *msg.Receive)
	case msg.RegisterVestingAccount != nil:
		if len(info.Funds) != 1 {
			return nil, errorsmod.Wrap(vesting.ErrInvalidRequest, "must deposit only one type of token")
		}
		coin := info.Funds[0]
		amount, err := vesting.ParseAmount(coin.Amount.String())
		if err != nil {
			return nil, err
		}
		return c.register(ctx, env, *msg.RegisterVestingAccount, vesting.NativeDenom(coin.Denom), amount)
	case msg.DeregisterVestingAccount != nil:
		m := msg.DeregisterVestingAccount
		return c.engine.DeregisterDenomAccount(ctx, env, info, m.Address, toDenom(m.Denom),
			host.Deref(m.VestedTokenRecipient), host.Deref(m.LeftVestingTokenRecipient))
	default:
		denoms := make([]vesting.Denom, 0, len(msg.Claim.Denoms))
		for _, d := range msg.Claim.Denoms {
			denoms = append(denoms, toDenom(d))
		}
		return c.engine.ClaimDenoms(ctx, env, info, denoms, host.Deref(msg.Claim.Recipient))
	}
}

// receive handles the cw20 hook; the message sender is the token contract.
func (c *Contract) receive(ctx context.Context, env host.Env, info host.MessageInfo, msg schema.Receive) (*host.Response, error) {
	hook, err := cw20.ReceiveMsg{Sender: msg.Sender, Amount: msg.Amount, Msg: msg.Msg}.Hook()
	if err != nil {
		return nil, errorsmod.Wrap(vesting.ErrInvalidRequest, err.Error())
	}
	var hookMsg schema.Cw20HookMsg
	if err := host.DecodeMsg(hook, &hookMsg); err != nil || hookMsg.RegisterVestingAccount == nil {
		return nil, errorsmod.Wrap(vesting.ErrInvalidRequest, "invalid cw20 hook message")
	}
	amount, err := vesting.ParseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	return c.register(ctx, env, *hookMsg.RegisterVestingAccount, vesting.Cw20Denom(info.Sender), amount)
}

func (c *Contract) register(ctx context.Context, env host.Env, msg schema.RegisterVestingAccount, deposit vesting.Denom, amount sdkmath.Uint) (*host.Response, error) {
	schedule, err := toScheduleOutput(msg.VestingSchedule)
	if err != nil {
		return nil, err
	}
	return c.engine.RegisterVestingAccount(ctx, env, host.Deref(msg.MasterAddress), msg.Address, deposit, amount, schedule)
}

func toScheduleOutput(s schema.VestingSchedule) (vesting.ScheduleOutput, error) {
	var out vesting.ScheduleOutput
	if lv := s.LinearVesting; lv != nil {
		start, err := vesting.ParseTime(lv.StartTime)
		if err != nil {
			return out, err
		}
		end, err := vesting.ParseTime(lv.EndTime)
		if err != nil {
			return out, err
		}
		amount, err := vesting.ParseAmount(lv.VestingAmount)
		if err != nil {
			return out, err
		}
		out.LinearVesting = &vesting.LinearVesting{StartTime: start, EndTime: end, VestingAmount: amount}
	}
	if lc := s.LinearVestingWithCliff; lc != nil {
		start, err := vesting.ParseTime(lc.StartTime)
		if err != nil {
			return out, err
		}
		end, err := vesting.ParseTime(lc.EndTime)
		if err != nil {
			return out, err
		}
		cliff, err := vesting.ParseTime(lc.CliffTime)
		if err != nil {
			return out, err
		}
		amount, err := vesting.ParseAmount(lc.VestingAmount)
		if err != nil {
			return out, err
		}
		cliffAmount, err := vesting.ParseAmount(lc.CliffAmount)
		if err != nil {
			return out, err
		}
		out.LinearVestingWithCliff = &vesting.LinearVestingWithCliffLegacy{
			StartTime:     start,
			EndTime:       end,
			CliffTime:     cliff,
			VestingAmount: amount,
			CliffAmount:   cliffAmount,
		}
	}
	return out, nil
}

func toDenom(d schema.Denom) vesting.Denom {
	return vesting.Denom{Native: host.Deref(d.Native), Cw20: host.Deref(d.Cw20)}
}

func (c *Contract) Query(ctx context.Context, env host.Env, raw []byte) ([]byte, error) {
	var msg schema.QueryMsg
	if err := host.DecodeMsg(raw, &msg); err != nil {
		return nil, err
	}
	if err := host.OneOf(msg.VestingAccount != nil); err != nil {
		return nil, err
	}

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
}
