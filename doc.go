// Package ethunit converts amounts between wei and the named ether
// denominations.
//
// Whole amounts are scaled with exact integer arithmetic. Amounts written
// with a decimal point are split into whole and fractional parts. The whole
// part is scaled exactly. The fractional part is scaled and then divided back
// down using round half to even, independently of the whole part:
//
//  ToWei(amount.FromString("0.0015"), "kwei") == 2 // 1.5 wei
//  ToWei(amount.FromString("0.0025"), "kwei") == 2 // 2.5 wei
//  ToWeiFromDecimals(amount.FromString("1.5"), 0) == 1
//
// Results in wei are *big.Int. Results in larger units are decimal.Decimal
// values with an exact scale, and the *String functions render them with
// trailing fractional zeros removed:
//
//  FromWeiToString(amount.FromString("1001"), "kwei") == "1.001"
//
// FromWei carries as many fractional digits as the unit has zeros plus the
// number of digits written after the point in the input, so a bare integer
// input never gains precision beyond the unit itself.
package ethunit
