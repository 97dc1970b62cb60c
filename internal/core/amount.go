package core

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FromBaseUnits converts a chain integer amount into a decimal token
// amount using the token's decimal exponent. Every chain-delivered amount
// goes through this one conversion point.
func FromBaseUnits(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// ToBaseUnits converts a decimal token amount into the chain's integer
// representation. Fractions below the base unit are truncated.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Truncate(0).BigInt()
}
