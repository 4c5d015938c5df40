package consts

const VestingPromNamespace = "vesting"
