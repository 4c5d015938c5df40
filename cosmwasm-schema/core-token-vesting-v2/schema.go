// This file was automatically generated from core-token-vesting-v2/schema.json.
// DO NOT MODIFY IT BY HAND.

package coretokenvestingv2

type InstantiateMsg struct {
	Admin    string   `json:"admin"`
	Managers []string `json:"managers"`
}

type ExecuteMsg struct {
	RewardUsers               *RewardUsers               `json:"reward_users,omitempty"`
	DeregisterVestingAccounts *DeregisterVestingAccounts `json:"deregister_vesting_accounts,omitempty"`
	Claim                     *Claim                     `json:"claim,omitempty"`
	Withdraw                  *Withdraw                  `json:"withdraw,omitempty"`
}

type RewardUsers struct {
	Rewards         []RewardUserRequest `json:"rewards"`
	VestingSchedule VestingSchedule     `json:"vesting_schedule"`
}

type RewardUserRequest struct {
	UserAddress   string `json:"user_address"`
	VestingAmount string `json:"vesting_amount"`
	CliffAmount   string `json:"cliff_amount"`
}

type VestingSchedule struct {
	LinearVestingWithCliff *LinearVestingWithCliff `json:"linear_vesting_with_cliff,omitempty"`
}

type LinearVestingWithCliff struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CliffTime string `json:"cliff_time"`
}

type DeregisterVestingAccounts struct {
	Addresses []string `json:"addresses"`
}

type Claim struct {
	// Ignored, the treasury denom is always claimed
	Denoms    []Denom `json:"denoms"`
	Recipient *string `json:"recipient,omitempty"`
}

type Withdraw struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

type Denom struct {
	Native *string `json:"native,omitempty"`
	Cw20   *string `json:"cw20,omitempty"`
}

type QueryMsg struct {
	VestingAccount  *VestingAccount  `json:"vesting_account,omitempty"`
	VestingAccounts *VestingAccounts `json:"vesting_accounts,omitempty"`
	Treasury        *Treasury        `json:"treasury,omitempty"`
}

type VestingAccount struct {
	Address    string  `json:"address"`
	StartAfter *Denom  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type VestingAccounts struct {
	Address []string `json:"address"`
}

type Treasury struct {
}

type RewardUserResponse struct {
	UserAddress string `json:"user_address"`
	Success     bool   `json:"success"`
	ErrorMsg    string `json:"error_msg"`
}

type DeregisterUserResponse struct {
	UserAddress string `json:"user_address"`
	Success     bool   `json:"success"`
	ErrorMsg    string `json:"error_msg"`
}

type VestingAccountResponse struct {
	Address  string        `json:"address"`
	Vestings []VestingData `json:"vestings"`
}

type VestingData struct {
	MasterAddress   *string                    `json:"master_address"`
	VestingDenom    Denom                      `json:"vesting_denom"`
	VestingAmount   string                     `json:"vesting_amount"`
	VestingSchedule VestingScheduleQueryOutput `json:"vesting_schedule"`
	VestedAmount    string                     `json:"vested_amount"`
	ClaimableAmount string                     `json:"claimable_amount"`
}

type VestingScheduleQueryOutput struct {
	LinearVestingWithCliff *LinearVestingWithCliffOutput `json:"linear_vesting_with_cliff,omitempty"`
}

type LinearVestingWithCliffOutput struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CliffTime     string `json:"cliff_time"`
	VestingAmount string `json:"vesting_amount"`
	CliffAmount   string `json:"cliff_amount"`
}

type TreasuryResponse struct {
	Denom             string   `json:"denom"`
	UnallocatedAmount string   `json:"unallocated_amount"`
	Admin             string   `json:"admin"`
	Members           []string `json:"members"`
}
