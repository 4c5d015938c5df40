package resp

var (
	// OK result
	OK = NewError(0, "success")

	// ErrParam param errors
	ErrParam   = NewError(10001, "Param parse failed")
	ErrCoins   = NewError(10002, "Invalid coins")
	ErrAmount  = NewError(10003, "Invalid amount")
	ErrMessage = NewError(10004, "Invalid contract message")

	// ErrContract contract errors, the invocation was reverted
	ErrContract = NewError(20001, "Contract invocation failed")
	ErrQuery    = NewError(20002, "Contract query failed")

	// ErrLedger internal errors
	ErrLedger = NewError(50001, "Ledger error")
)
