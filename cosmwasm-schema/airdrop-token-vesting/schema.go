// This file was automatically generated from airdrop-token-vesting/schema.json.
// DO NOT MODIFY IT BY HAND.

package airdroptokenvesting

type InstantiateMsg struct {
	Admin    string   `json:"admin"`
	Managers []string `json:"managers"`
}

type ExecuteMsg struct {
	RewardUsers              *RewardUsers              `json:"reward_users,omitempty"`
	DeregisterVestingAccount *DeregisterVestingAccount `json:"deregister_vesting_account,omitempty"`
	Claim                    *Claim                    `json:"claim,omitempty"`
	Withdraw                 *Withdraw                 `json:"withdraw,omitempty"`
}

type RewardUsers struct {
	Rewards []RewardUserRequest `json:"rewards"`
	// The amounts carried by the schedule are replaced by the amounts of each request
	VestingSchedule VestingSchedule `json:"vesting_schedule"`
}

type RewardUserRequest struct {
	UserAddress   string  `json:"user_address"`
	VestingAmount string  `json:"vesting_amount"`
	CliffAmount   *string `json:"cliff_amount,omitempty"`
}

type VestingSchedule struct {
	LinearVesting          *LinearVesting          `json:"linear_vesting,omitempty"`
	LinearVestingWithCliff *LinearVestingWithCliff `json:"linear_vesting_with_cliff,omitempty"`
}

type LinearVesting struct {
	// Time when vesting starts, in seconds since the unix epoch
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	VestingAmount string `json:"vesting_amount"`
}

type LinearVestingWithCliff struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CliffTime     string `json:"cliff_time"`
	VestingAmount string `json:"vesting_amount,omitempty"`
	CliffAmount   string `json:"cliff_amount,omitempty"`
}

type DeregisterVestingAccount struct {
	Address string `json:"address"`
	// Receives the vested but unclaimed tokens, defaults to the account address
	VestedTokenRecipient *string `json:"vested_token_recipient,omitempty"`
	// Receives the tokens not vested yet, defaults to the admin
	LeftVestingTokenRecipient *string `json:"left_vesting_token_recipient,omitempty"`
}

type Claim struct {
	Recipient *string `json:"recipient,omitempty"`
}

type Withdraw struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

type QueryMsg struct {
	VestingAccount *VestingAccount `json:"vesting_account,omitempty"`
	Treasury       *Treasury       `json:"treasury,omitempty"`
}

type VestingAccount struct {
	Address string `json:"address"`
}

type Treasury struct {
}

type RewardUserResponse struct {
	UserAddress string `json:"user_address"`
	Success     bool   `json:"success"`
	ErrorMsg    string `json:"error_msg"`
}

type VestingAccountResponse struct {
	Address  string        `json:"address"`
	Vestings []VestingData `json:"vestings"`
}

type VestingData struct {
	MasterAddress   *string         `json:"master_address"`
	VestingDenom    Denom           `json:"vesting_denom"`
	VestingAmount   string          `json:"vesting_amount"`
	VestingSchedule VestingSchedule `json:"vesting_schedule"`
	VestedAmount    string          `json:"vested_amount"`
	ClaimableAmount string          `json:"claimable_amount"`
}

type Denom struct {
	Native *string `json:"native,omitempty"`
	Cw20   *string `json:"cw20,omitempty"`
}

type TreasuryResponse struct {
	Denom             string   `json:"denom"`
	UnallocatedAmount string   `json:"unallocated_amount"`
	Admin             string   `json:"admin"`
	Members           []string `json:"members"`
}
