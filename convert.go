package ethunit

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/amount"
	"github.com/calebcase/ethunit/unit"
)

// InvalidArgument is returned for unparseable amounts and unknown units.
var InvalidArgument = errs.Class("ethunit: invalid argument")

var (
	wei   = mustLookup(unit.Wei)
	ether = mustLookup(unit.Ether)
)

func mustLookup(name string) unit.Denomination {
	d, err := unit.Lookup(name)
	if err != nil {
		panic(err)
	}

	return d
}

func lookup(name string) (unit.Denomination, error) {
	d, err := unit.Lookup(name)
	if err != nil {
		return d, InvalidArgument.Wrap(err)
	}

	return d, nil
}

func decimals(n int) (unit.Denomination, error) {
	d, err := unit.FromDecimals(n)
	if err != nil {
		return d, InvalidArgument.Wrap(err)
	}

	return d, nil
}

func parse(in amount.Input) (amount.Amount, error) {
	a, err := amount.Parse(in)
	if err != nil {
		return nil, InvalidArgument.Wrap(err)
	}

	return a, nil
}

// scale multiplies a by factor. The fractional part of a Fraction is rounded
// half to even after scaling.
func scale(a amount.Amount, factor *big.Int) *big.Int {
	switch a := a.(type) {
	case amount.Integer:
		return new(big.Int).Mul(a.Value, factor)
	case amount.Fraction:
		out := new(big.Int).Mul(a.Whole, factor)

		fraction := new(big.Int).Mul(a.Fraction, factor)
		rounded := decimal.NewFromBigInt(fraction, -int32(a.Digits)).RoundBank(0)

		out.Add(out, rounded.BigInt())
		if a.Negative {
			out.Neg(out)
		}

		return out
	}

	panic("ethunit: unknown amount variant")
}

// ToWei converts in, denominated in the named unit, to wei.
func ToWei(in amount.Input, unitName string) (*big.Int, error) {
	d, err := lookup(unitName)
	if err != nil {
		return nil, err
	}

	a, err := parse(in)
	if err != nil {
		return nil, err
	}

	return scale(a, d.Big()), nil
}

// ToWeiFromDecimals converts in, denominated in a unit of 10^numberOfDecimals
// wei, to wei. This is how token amounts with a declared precision are
// converted.
func ToWeiFromDecimals(in amount.Input, numberOfDecimals int) (*big.Int, error) {
	d, err := decimals(numberOfDecimals)
	if err != nil {
		return nil, err
	}

	a, err := parse(in)
	if err != nil {
		return nil, err
	}

	return scale(a, d.Big()), nil
}

// ToEther converts in, denominated in the named unit, to ether with 18
// fractional digits.
func ToEther(in amount.Input, unitName string) (decimal.Decimal, error) {
	w, err := ToWei(in, unitName)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromBigInt(w, -int32(ether.Zeros())), nil
}

// FromWei converts in wei to the named unit. The result has the unit's zeros
// plus the input's fractional digits as its scale.
func FromWei(in amount.Input, unitName string) (decimal.Decimal, error) {
	d, err := lookup(unitName)
	if err != nil {
		return decimal.Zero, err
	}

	return fromWei(in, d)
}

// FromWeiToDecimals converts in wei to a unit of 10^numberOfDecimals wei.
func FromWeiToDecimals(in amount.Input, numberOfDecimals int) (decimal.Decimal, error) {
	d, err := decimals(numberOfDecimals)
	if err != nil {
		return decimal.Zero, err
	}

	return fromWei(in, d)
}

func fromWei(in amount.Input, d unit.Denomination) (decimal.Decimal, error) {
	a, err := parse(in)
	if err != nil {
		return decimal.Zero, err
	}

	n, digits := amount.Numerator(a)

	return decimal.NewFromBigInt(n, -int32(d.Zeros()+digits)), nil
}

// ToWeiString is ToWei rendered as a base 10 string.
func ToWeiString(in amount.Input, unitName string) (string, error) {
	w, err := ToWei(in, unitName)
	if err != nil {
		return "", err
	}

	return w.String(), nil
}

// ToWeiStringFromDecimals is ToWeiFromDecimals rendered as a base 10 string.
func ToWeiStringFromDecimals(in amount.Input, numberOfDecimals int) (string, error) {
	w, err := ToWeiFromDecimals(in, numberOfDecimals)
	if err != nil {
		return "", err
	}

	return w.String(), nil
}

// ToEtherString is ToEther rendered without trailing fractional zeros.
func ToEtherString(in amount.Input, unitName string) (string, error) {
	w, err := ToWei(in, unitName)
	if err != nil {
		return "", err
	}

	return render(w, wei, ether), nil
}

// FromWeiToString is FromWei rendered without trailing fractional zeros.
func FromWeiToString(in amount.Input, unitName string) (string, error) {
	d, err := lookup(unitName)
	if err != nil {
		return "", err
	}

	return fromWeiToString(in, d)
}

// FromWeiToDecimalsString is FromWeiToDecimals rendered without trailing
// fractional zeros.
func FromWeiToDecimalsString(in amount.Input, numberOfDecimals int) (string, error) {
	d, err := decimals(numberOfDecimals)
	if err != nil {
		return "", err
	}

	return fromWeiToString(in, d)
}

func fromWeiToString(in amount.Input, d unit.Denomination) (string, error) {
	a, err := parse(in)
	if err != nil {
		return "", err
	}

	n, digits := amount.Numerator(a)

	// Fractional wei widen the destination so the division stays exact.
	destination, err := decimals(d.Zeros() + digits)
	if err != nil {
		return "", err
	}

	return render(n, wei, destination), nil
}

// render divides n, denominated in origin, into destination and formats the
// result.
func render(n *big.Int, origin, destination unit.Denomination) string {
	sign := ""
	if n.Sign() < 0 {
		sign = "-"
	}

	magnitude := new(big.Int).Abs(n)

	shift := destination.Zeros() - origin.Zeros()
	if shift <= 0 {
		magnitude.Mul(magnitude, amount.Pow10(-shift))

		return sign + magnitude.String()
	}

	quotient, remainder := new(big.Int).QuoRem(magnitude, amount.Pow10(shift), new(big.Int))

	return sign + reconstruct(quotient, remainder, origin, destination)
}

// reconstruct joins a quotient and remainder into a decimal string. The
// remainder is left padded so that it occupies the digits between the origin
// and destination factors, then trailing zeros are removed.
func reconstruct(quotient, remainder *big.Int, origin, destination unit.Denomination) string {
	left := quotient.String()

	if remainder.Sign() == 0 {
		return left
	}

	right := remainder.String()

	pad := len(destination.Factor) - len(origin.Factor) - len(right)
	if pad > 0 {
		right = strings.Repeat("0", pad) + right
	}

	right = strings.TrimRight(right, "0")
	if right == "" {
		return left
	}

	return left + "." + right
}
