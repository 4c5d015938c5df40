package vesting

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("1000")
	require.NoError(t, err)
	assertUint(t, 1000, amount)

	amount, err = ParseAmount(MaxUint128.String())
	require.NoError(t, err)
	assert.True(t, amount.Equal(MaxUint128))

	_, err = ParseAmount(MaxUint128.AddUint64(1).String())
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = ParseAmount("-1")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestParseTime(t *testing.T) {
	ts, err := ParseTime("1700000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), ts)

	_, err = ParseTime("-5")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = ParseTime("18446744073709551616")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCheckedArithmetic(t *testing.T) {
	_, err := checkedAdd(MaxUint128, sdkmath.OneUint())
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = checkedSub(sdkmath.NewUint(1), sdkmath.NewUint(2))
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = checkedMul(MaxUint128, 2)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = checkedDiv(sdkmath.NewUint(1), 0)
	assert.ErrorIs(t, err, ErrArithmetic)

	sum, err := Sum(sdkmath.NewUint(1), sdkmath.NewUint(2), sdkmath.NewUint(3))
	require.NoError(t, err)
	assertUint(t, 6, sum)

	_, err = Sum(MaxUint128, sdkmath.OneUint())
	assert.ErrorIs(t, err, ErrArithmetic)
}
