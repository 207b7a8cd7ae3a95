package amount

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/hexutil"
)

// InvalidArgument is returned for input that cannot be parsed.
var InvalidArgument = errs.Class("amount: invalid argument")

// Amount is either an Integer or a Fraction.
type Amount interface {
	amount()
}

// Integer is a signed whole amount.
type Integer struct {
	Value *big.Int
}

// Fraction is an amount written with a decimal point. The value is
// (Whole + Fraction / 10^Digits), negated if Negative.
type Fraction struct {
	Whole    *big.Int
	Fraction *big.Int
	Digits   int
	Negative bool
}

func (Integer) amount()  {}
func (Fraction) amount() {}

var ten = big.NewInt(10)

// Pow10 returns a newly allocated 10^n.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Numerator returns a as a signed integer n and a scale such that the amount
// equals n / 10^digits. The result never aliases a.
func Numerator(a Amount) (n *big.Int, digits int) {
	switch a := a.(type) {
	case Integer:
		return new(big.Int).Set(a.Value), 0
	case Fraction:
		n = new(big.Int).Mul(a.Whole, Pow10(a.Digits))
		n.Add(n, a.Fraction)
		if a.Negative {
			n.Neg(n)
		}

		return n, a.Digits
	}

	panic("amount: unknown variant")
}

// Parse returns the canonical amount for in.
func Parse(in Input) (Amount, error) {
	switch in.kind {
	case NativeInt:
		return Integer{Value: big.NewInt(in.native)}, nil
	case BigInt:
		return Integer{Value: new(big.Int).Set(in.big)}, nil
	case DecimalString:
		return parseDecimal(in.text)
	case HexString:
		return parseHex(in.text)
	}

	return nil, InvalidArgument.New("must be a big number, string or int: %s", in.kind)
}

// ParseString is shorthand for Parse(FromString(s)).
func ParseString(s string) (Amount, error) {
	return Parse(FromString(s))
}

func parseDecimal(s string) (Amount, error) {
	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		v, err := parseDigits(parts[0], s)
		if err != nil {
			return nil, err
		}
		if negative {
			v.Neg(v)
		}

		return Integer{Value: v}, nil
	case 2:
		whole, err := parseDigits(parts[0], s)
		if err != nil {
			return nil, err
		}

		fraction, err := parseDigits(parts[1], s)
		if err != nil {
			return nil, err
		}

		return Fraction{
			Whole:    whole,
			Fraction: fraction,
			Digits:   len(parts[1]),
			Negative: negative,
		}, nil
	}

	return nil, InvalidArgument.New("must be a valid number, found %d decimal points: %q", len(parts)-1, s)
}

// parseDigits reads an unsigned run of decimal digits. The empty run is zero.
func parseDigits(digits, orig string) (*big.Int, error) {
	if digits == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, InvalidArgument.New("must be a valid number: %q", orig)
	}

	return v, nil
}

func parseHex(s string) (Amount, error) {
	s = strings.ToLower(s)

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	v, err := hexutil.ToBigInt(s)
	if err != nil {
		return nil, InvalidArgument.New("must be a valid hex string: %q", s)
	}

	if negative {
		v.Neg(v)
	}

	return Integer{Value: v}, nil
}
