package types

import (
	"cosmossdk.io/math"
)

// maxAmountBits caps amounts to the token ledger's uint128 range. math.Int
// itself carries 256 bits, so sums are checked explicitly instead of relying
// on its panic bound.
const maxAmountBits = 128

// ValidateAmount rejects nil, negative, or wider-than-uint128 amounts.
func ValidateAmount(amt math.Int) error {
	if amt.IsNil() {
		return ErrOverflow.Wrap("nil amount")
	}
	if amt.IsNegative() || amt.BigInt().BitLen() > maxAmountBits {
		return ErrOverflow.Wrapf("amount %s", amt)
	}
	return nil
}

// AddChecked sums two in-range amounts, failing with ErrOverflow instead of
// exceeding uint128.
func AddChecked(a, b math.Int) (math.Int, error) {
	sum := a.Add(b)
	if sum.BigInt().BitLen() > maxAmountBits {
		return math.Int{}, ErrOverflow.Wrapf("sum of %s and %s", a, b)
	}
	return sum, nil
}
