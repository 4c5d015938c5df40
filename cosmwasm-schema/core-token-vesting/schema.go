// This file was automatically generated from core-token-vesting/schema.json.
// DO NOT MODIFY IT BY HAND.

package coretokenvesting

type InstantiateMsg struct {
}

type ExecuteMsg struct {
	Receive                  *Receive                  `json:"receive,omitempty"`
	RegisterVestingAccount   *RegisterVestingAccount   `json:"register_vesting_account,omitempty"`
	DeregisterVestingAccount *DeregisterVestingAccount `json:"deregister_vesting_account,omitempty"`
	Claim                    *Claim                    `json:"claim,omitempty"`
}

// Receive is the cw20 hook, Msg is a base64 encoded Cw20HookMsg
type Receive struct {
	Sender string `json:"sender"`
	Amount string `json:"amount"`
	Msg    string `json:"msg"`
}

type RegisterVestingAccount struct {
	// If set, this address can deregister the vesting account
	MasterAddress   *string         `json:"master_address,omitempty"`
	Address         string          `json:"address"`
	VestingSchedule VestingSchedule `json:"vesting_schedule"`
}

type VestingSchedule struct {
	LinearVesting          *LinearVesting          `json:"linear_vesting,omitempty"`
	LinearVestingWithCliff *LinearVestingWithCliff `json:"linear_vesting_with_cliff,omitempty"`
}

type LinearVesting struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	VestingAmount string `json:"vesting_amount"`
}

type LinearVestingWithCliff struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CliffTime     string `json:"cliff_time"`
	VestingAmount string `json:"vesting_amount"`
	CliffAmount   string `json:"cliff_amount"`
}

type DeregisterVestingAccount struct {
	Address                   string  `json:"address"`
	Denom                     Denom   `json:"denom"`
	VestedTokenRecipient      *string `json:"vested_token_recipient,omitempty"`
	LeftVestingTokenRecipient *string `json:"left_vesting_token_recipient,omitempty"`
}

type Claim struct {
	Denoms    []Denom `json:"denoms"`
	Recipient *string `json:"recipient,omitempty"`
}

type Denom struct {
	Native *string `json:"native,omitempty"`
	Cw20   *string `json:"cw20,omitempty"`
}

type Cw20HookMsg struct {
	RegisterVestingAccount *RegisterVestingAccount `json:"register_vesting_account,omitempty"`
}

type QueryMsg struct {
	VestingAccount *VestingAccount `json:"vesting_account,omitempty"`
}

type VestingAccount struct {
	Address    string  `json:"address"`
	StartAfter *Denom  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
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
