package vesting

import (
	"math/big"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// MaxUint128 is the largest amount an account, request or treasury may hold.
var MaxUint128 = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// ParseAmount parses a decimal Uint128 as carried in JSON messages.
func ParseAmount(s string) (sdkmath.Uint, error) {
	u, err := sdkmath.ParseUint(s)
	if err != nil {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrInvalidRequest, "invalid Uint128 %q: %v", s, err)
	}
	if u.GT(MaxUint128) {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrInvalidRequest, "Uint128 overflow: %s", s)
	}
	return u, nil
}

// ParseTime parses a Uint64 timestamp, which JSON messages carry as a decimal string.
func ParseTime(s string) (uint64, error) {
	t, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidRequest, "invalid Uint64 %q", s)
	}
	return t, nil
}

func checkedAdd(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	sum := a.Add(b)
	if sum.GT(MaxUint128) {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrArithmetic, "Cannot Add with given operands: %s + %s", a, b)
	}
	return sum, nil
}

func checkedSub(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	if a.LT(b) {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrArithmetic, "Cannot Sub with given operands: %s - %s", a, b)
	}
	return a.Sub(b), nil
}

func checkedMul(a sdkmath.Uint, b uint64) (sdkmath.Uint, error) {
	product := a.MulUint64(b)
	if product.GT(MaxUint128) {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrArithmetic, "Cannot Mul with given operands: %s * %d", a, b)
	}
	return product, nil
}

func checkedDiv(a sdkmath.Uint, b uint64) (sdkmath.Uint, error) {
	if b == 0 {
		return sdkmath.ZeroUint(), errorsmod.Wrapf(ErrArithmetic, "Cannot divide %s by zero", a)
	}
	return a.QuoUint64(b), nil
}

// Sum adds amounts with the same 128-bit bound as every other operation.
func Sum(amounts ...sdkmath.Uint) (sdkmath.Uint, error) {
	total := sdkmath.ZeroUint()
	for _, amount := range amounts {
		var err error
		if total, err = checkedAdd(total, amount); err != nil {
			return sdkmath.ZeroUint(), err
		}
	}
	return total, nil
}
