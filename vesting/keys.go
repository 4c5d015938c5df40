package vesting

import (
	"cosmossdk.io/collections"
)

// Persisted state layout.
var (
	DenomKey             = collections.NewPrefix("denom")
	UnallocatedAmountKey = collections.NewPrefix("unallocated_amount")
	WhitelistKey         = collections.NewPrefix("whitelist")
	VestingAccountsKey   = collections.NewPrefix("vesting_accounts")
)

const (
	DefaultLimit uint32 = 10
	MaxLimit     uint32 = 30
)

// clampLimit applies the query page size bounds.
func clampLimit(limit *uint32) uint32 {
	if limit == nil {
		return DefaultLimit
	}
	return min(*limit, MaxLimit)
}
