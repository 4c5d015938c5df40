package airdroptokenvesting

import (
	"context"
	"encoding/json"
	"testing"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	schema "github.com/satlayer/satlayer-vesting/cosmwasm-schema/airdrop-token-vesting"
	"github.com/satlayer/satlayer-vesting/host"
	"github.com/satlayer/satlayer-vesting/vesting"
)

type ContractTestSuite struct {
	suite.Suite
	ctx     context.Context
	runtime *host.Runtime

	admin   string
	manager string
	alice   string
	bob     string
}

func TestContract(t *testing.T) {
	suite.Run(t, new(ContractTestSuite))
}

func (s *ContractTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.admin = host.GenerateAddress("cosmos", "admin")
	s.manager = host.GenerateAddress("cosmos", "manager")
	s.alice = host.GenerateAddress("cosmos", "alice")
	s.bob = host.GenerateAddress("cosmos", "bob")

	contract, err := NewContract("cosmos")
	s.Require().NoError(err)
	s.runtime = host.NewRuntime(dbm.NewMemDB(), Name, contract, host.GenerateAddress("cosmos", Name))
	s.Require().NoError(s.runtime.Fund(s.ctx, s.admin, sdk.NewCoins(sdk.NewInt64Coin("uusd", 20000))))

	info := host.MessageInfo{Sender: s.admin, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 10000))}
	msg, err := json.Marshal(schema.InstantiateMsg{Admin: s.admin, Managers: []string{s.manager}})
	s.Require().NoError(err)
	_, err = s.runtime.Instantiate(s.ctx, host.BlockInfo{Height: 1, Time: 100}, info, msg)
	s.Require().NoError(err)
}

func (s *ContractTestSuite) execute(sender string, time uint64, msg schema.ExecuteMsg) (*host.Response, error) {
	bz, err := json.Marshal(msg)
	s.Require().NoError(err)
	return s.runtime.Execute(s.ctx, host.BlockInfo{Height: time, Time: time}, host.MessageInfo{Sender: sender}, bz)
}

func (s *ContractTestSuite) query(time uint64, msg schema.QueryMsg, out any) {
	bz, err := json.Marshal(msg)
	s.Require().NoError(err)
	res, err := s.runtime.Query(s.ctx, host.BlockInfo{Height: time, Time: time}, bz)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(res, out))
}

func (s *ContractTestSuite) balance(addr string) string {
	amount, err := s.runtime.Balance(s.ctx, addr, "uusd")
	s.Require().NoError(err)
	return amount.String()
}

func (s *ContractTestSuite) treasury() schema.TreasuryResponse {
	var res schema.TreasuryResponse
	s.query(100, schema.QueryMsg{Treasury: &schema.Treasury{}}, &res)
	return res
}

func (s *ContractTestSuite) rewardLinear(sender string, rewards ...schema.RewardUserRequest) (*host.Response, error) {
	return s.execute(sender, 100, schema.ExecuteMsg{RewardUsers: &schema.RewardUsers{
		Rewards: rewards,
		VestingSchedule: schema.VestingSchedule{LinearVesting: &schema.LinearVesting{
			StartTime:     "100",
			EndTime:       "200",
			VestingAmount: "0",
		}},
	}})
}

func reward(user, amount string) schema.RewardUserRequest {
	return schema.RewardUserRequest{UserAddress: user, VestingAmount: amount}
}

func (s *ContractTestSuite) TestInstantiate() {
	res := s.treasury()
	s.Equal("uusd", res.Denom)
	s.Equal("10000", res.UnallocatedAmount)
	s.Equal(s.admin, res.Admin)
	s.Equal([]string{s.manager}, res.Members)
	s.Equal("10000", s.balance(s.admin))
	s.Equal("10000", s.balance(s.runtime.Address()))
}

func (s *ContractTestSuite) TestReinstantiateRejected() {
	_, err := s.rewardLinear(s.manager, reward(s.alice, "4000"))
	s.Require().NoError(err)

	mallory := host.GenerateAddress("cosmos", "mallory")
	s.Require().NoError(s.runtime.Fund(s.ctx, mallory, sdk.NewCoins(sdk.NewInt64Coin("uusd", 1))))
	msg, err := json.Marshal(schema.InstantiateMsg{Admin: mallory, Managers: []string{mallory}})
	s.Require().NoError(err)
	info := host.MessageInfo{Sender: mallory, Funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 1))}
	_, err = s.runtime.Instantiate(s.ctx, host.BlockInfo{Height: 2, Time: 100}, info, msg)
	s.ErrorIs(err, host.ErrAlreadyInstantiated)

	res := s.treasury()
	s.Equal(s.admin, res.Admin)
	s.Equal([]string{s.manager}, res.Members)
	s.Equal("6000", res.UnallocatedAmount)
	s.Equal("1", s.balance(mallory))
	s.Equal("10000", s.balance(s.runtime.Address()))

	_, err = s.execute(mallory, 100, schema.ExecuteMsg{DeregisterVestingAccount: &schema.DeregisterVestingAccount{Address: s.alice}})
	s.ErrorIs(err, vesting.ErrUnauthorized)
	s.Equal("1", s.balance(mallory))

	// unallocated (6000) plus alice's unclaimed 4000 is the whole contract balance
	var account schema.VestingAccountResponse
	s.query(100, schema.QueryMsg{VestingAccount: &schema.VestingAccount{Address: s.alice}}, &account)
	s.Require().Len(account.Vestings, 1)
	s.Equal("4000", account.Vestings[0].VestingAmount)
	s.Equal("0", account.Vestings[0].ClaimableAmount)
}

func (s *ContractTestSuite) TestLifecycle() {
	res, err := s.rewardLinear(s.manager, reward(s.alice, "1000"), reward(s.bob, "2000"))
	s.Require().NoError(err)

	var results []schema.RewardUserResponse
	s.Require().NoError(json.Unmarshal(res.Data, &results))
	s.Len(results, 2)
	s.True(results[0].Success)
	s.True(results[1].Success)
	s.Equal("7000", s.treasury().UnallocatedAmount)

	_, err = s.execute(s.alice, 150, schema.ExecuteMsg{Claim: &schema.Claim{}})
	s.Require().NoError(err)
	s.Equal("500", s.balance(s.alice))

	var account schema.VestingAccountResponse
	s.query(150, schema.QueryMsg{VestingAccount: &schema.VestingAccount{Address: s.alice}}, &account)
	s.Equal(s.alice, account.Address)
	s.Require().Len(account.Vestings, 1)
	v := account.Vestings[0]
	s.Equal(s.admin, *v.MasterAddress)
	s.Equal("uusd", *v.VestingDenom.Native)
	s.Equal("1000", v.VestingAmount)
	s.Equal("1000", v.VestingSchedule.LinearVesting.VestingAmount)
	s.Equal("100", v.VestingSchedule.LinearVesting.StartTime)
	s.Equal("500", v.VestedAmount)
	s.Equal("0", v.ClaimableAmount)

	_, err = s.execute(s.manager, 150, schema.ExecuteMsg{DeregisterVestingAccount: &schema.DeregisterVestingAccount{Address: s.bob}})
	s.Require().NoError(err)
	s.Equal("1000", s.balance(s.bob))
	s.Equal("11000", s.balance(s.admin))

	res, err = s.execute(s.admin, 150, schema.ExecuteMsg{Withdraw: &schema.Withdraw{Amount: "9000", Recipient: s.admin}})
	s.Require().NoError(err)
	amount, _ := res.Attribute("amount")
	s.Equal("7000", amount)
	s.Equal("18000", s.balance(s.admin))

	// Only alice's unclaimed part is left.
	s.Equal("500", s.balance(s.runtime.Address()))
	s.Equal("0", s.treasury().UnallocatedAmount)

	_, err = s.execute(s.alice, 300, schema.ExecuteMsg{Claim: &schema.Claim{}})
	s.Require().NoError(err)
	s.Equal("1000", s.balance(s.alice))
	s.Equal("0", s.balance(s.runtime.Address()))

	s.query(300, schema.QueryMsg{VestingAccount: &schema.VestingAccount{Address: s.alice}}, &account)
	s.Empty(account.Vestings)
}

func (s *ContractTestSuite) TestDuplicateRewardIsReported() {
	_, err := s.rewardLinear(s.manager, reward(s.alice, "1000"))
	s.Require().NoError(err)

	res, err := s.rewardLinear(s.manager, reward(s.alice, "1000"), reward(s.bob, "500"))
	s.Require().NoError(err)

	var results []schema.RewardUserResponse
	s.Require().NoError(json.Unmarshal(res.Data, &results))
	s.False(results[0].Success)
	s.Contains(results[0].ErrorMsg, "Failed to register vesting account")
	s.Contains(results[0].ErrorMsg, "already has a vesting account")
	s.True(results[1].Success)

	// The whole batch is debited.
	s.Equal("7500", s.treasury().UnallocatedAmount)
}

func (s *ContractTestSuite) TestCliffScheduleFromRequests() {
	cliff := "300"
	_, err := s.execute(s.manager, 100, schema.ExecuteMsg{RewardUsers: &schema.RewardUsers{
		Rewards: []schema.RewardUserRequest{{UserAddress: s.alice, VestingAmount: "1000", CliffAmount: &cliff}},
		VestingSchedule: schema.VestingSchedule{LinearVestingWithCliff: &schema.LinearVestingWithCliff{
			StartTime: "100",
			EndTime:   "200",
			CliffTime: "150",
		}},
	}})
	s.Require().NoError(err)

	var account schema.VestingAccountResponse
	s.query(150, schema.QueryMsg{VestingAccount: &schema.VestingAccount{Address: s.alice}}, &account)
	s.Require().Len(account.Vestings, 1)
	s.Equal("300", account.Vestings[0].VestedAmount)
	s.Equal("300", account.Vestings[0].VestingSchedule.LinearVestingWithCliff.CliffAmount)

	// A cliff schedule needs a cliff amount.
	_, err = s.execute(s.manager, 100, schema.ExecuteMsg{RewardUsers: &schema.RewardUsers{
		Rewards: []schema.RewardUserRequest{reward(s.bob, "1000")},
		VestingSchedule: schema.VestingSchedule{LinearVestingWithCliff: &schema.LinearVestingWithCliff{
			StartTime: "100",
			EndTime:   "200",
			CliffTime: "150",
		}},
	}})
	s.ErrorIs(err, vesting.ErrCliffZeroAmount)
	s.Equal("9000", s.treasury().UnallocatedAmount)
}

func (s *ContractTestSuite) TestUnauthorizedRewardReverts() {
	_, err := s.rewardLinear(s.alice, reward(s.alice, "1000"))
	s.ErrorIs(err, vesting.ErrUnauthorized)
	s.Equal("10000", s.treasury().UnallocatedAmount)

	_, err = s.execute(s.manager, 100, schema.ExecuteMsg{Withdraw: &schema.Withdraw{Amount: "1", Recipient: s.manager}})
	s.ErrorIs(err, vesting.ErrUnauthorized)
	s.Equal("0", s.balance(s.manager))
}

func (s *ContractTestSuite) TestLeftTokensRecipientOverride() {
	_, err := s.rewardLinear(s.manager, reward(s.alice, "1000"))
	s.Require().NoError(err)

	_, err = s.execute(s.admin, 120, schema.ExecuteMsg{DeregisterVestingAccount: &schema.DeregisterVestingAccount{
		Address:                   s.alice,
		VestedTokenRecipient:      &s.bob,
		LeftVestingTokenRecipient: &s.manager,
	}})
	s.Require().NoError(err)
	s.Equal("200", s.balance(s.bob))
	s.Equal("800", s.balance(s.manager))
	s.Equal("0", s.balance(s.alice))
}

func (s *ContractTestSuite) TestMalformedMessages() {
	_, err := s.runtime.Execute(s.ctx, host.BlockInfo{Time: 100}, host.MessageInfo{Sender: s.alice}, []byte(`{"burn":{}}`))
	s.Error(err)

	_, err = s.execute(s.alice, 100, schema.ExecuteMsg{
		Claim:    &schema.Claim{},
		Withdraw: &schema.Withdraw{Amount: "1", Recipient: s.alice},
	})
	s.ErrorContains(err, "expected exactly one variant")

	_, err = s.execute(s.admin, 100, schema.ExecuteMsg{Withdraw: &schema.Withdraw{Amount: "lots", Recipient: s.admin}})
	s.ErrorIs(err, vesting.ErrInvalidRequest)

	_, err = s.runtime.Query(s.ctx, host.BlockInfo{Time: 100}, []byte(`{}`))
	s.Error(err)
}
