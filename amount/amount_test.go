package amount_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ethunit/amount"
	"github.com/calebcase/oops"
)

func TestClassify(t *testing.T) {
	type TC struct {
		Input string
		Kind  amount.Kind
	}

	tcs := []TC{
		{Input: "10", Kind: amount.DecimalString},
		{Input: "-10", Kind: amount.DecimalString},
		{Input: "+10", Kind: amount.DecimalString},
		{Input: "1.5", Kind: amount.DecimalString},
		{Input: ".5", Kind: amount.DecimalString},
		{Input: "1.2.3", Kind: amount.DecimalString},
		{Input: "ff", Kind: amount.HexString},
		{Input: "0x10", Kind: amount.HexString},
		{Input: "-0x10", Kind: amount.HexString},
		{Input: "", Kind: amount.HexString},
		{Input: ".", Kind: amount.HexString},
		{Input: "1e3", Kind: amount.HexString},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.Kind, amount.FromString(tc.Input).Kind(), tc.Input)
	}

	require.Equal(t, amount.NativeInt, amount.FromInt64(1).Kind())
	require.Equal(t, amount.BigInt, amount.FromBig(big.NewInt(1)).Kind())
	require.Equal(t, amount.BigInt, amount.FromUint256(uint256.NewInt(1)).Kind())
	require.Equal(t, amount.Invalid, amount.FromBig(nil).Kind())
	require.Equal(t, amount.Invalid, amount.FromUint256(nil).Kind())
	require.Equal(t, amount.Invalid, amount.Input{}.Kind())
}

func TestParseInteger(t *testing.T) {
	type TC struct {
		Input  amount.Input
		Output string
		Mark   error
	}

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	tcs := []TC{
		{Input: amount.FromInt64(42), Output: "42", Mark: oops.New("unexpected")},
		{Input: amount.FromInt64(-42), Output: "-42", Mark: oops.New("unexpected")},
		{Input: amount.FromBig(huge), Output: huge.String(), Mark: oops.New("unexpected")},
		{Input: amount.FromUint256(uint256.NewInt(7)), Output: "7", Mark: oops.New("unexpected")},
		{Input: amount.FromString("1000"), Output: "1000", Mark: oops.New("unexpected")},
		{Input: amount.FromString("-1000"), Output: "-1000", Mark: oops.New("unexpected")},
		{Input: amount.FromString("+5"), Output: "5", Mark: oops.New("unexpected")},
		{Input: amount.FromString("-0"), Output: "0", Mark: oops.New("unexpected")},
		{Input: amount.FromString("0x10"), Output: "16", Mark: oops.New("unexpected")},
		{Input: amount.FromString("0XFF"), Output: "255", Mark: oops.New("unexpected")},
		{Input: amount.FromString("-0x10"), Output: "-16", Mark: oops.New("unexpected")},
		{Input: amount.FromString("ff"), Output: "255", Mark: oops.New("unexpected")},
		{Input: amount.FromString("-AbC"), Output: "-2748", Mark: oops.New("unexpected")},
		{Input: amount.FromString(""), Output: "0", Mark: oops.New("unexpected")},
		{Input: amount.FromString("0x"), Output: "0", Mark: oops.New("unexpected")},
		{Input: amount.FromString("-"), Output: "0", Mark: oops.New("unexpected")},
		{Input: amount.FromString("1e3"), Output: "483", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			a, err := amount.Parse(tc.Input)
			require.NoError(t, err, tc.Mark)

			v, ok := a.(amount.Integer)
			if !ok {
				t.Logf("Amount: %s\n", spew.Sdump(a))
			}
			require.True(t, ok, tc.Mark)
			require.Equal(t, tc.Output, v.Value.String(), tc.Mark)
		})
	}
}

func TestParseFraction(t *testing.T) {
	type TC struct {
		Input    string
		Whole    int64
		Fraction int64
		Digits   int
		Negative bool
	}

	tcs := []TC{
		{Input: "1.5", Whole: 1, Fraction: 5, Digits: 1},
		{Input: "0.01", Whole: 0, Fraction: 1, Digits: 2},
		{Input: "-1.250", Whole: 1, Fraction: 250, Digits: 3, Negative: true},
		{Input: "-0.5", Whole: 0, Fraction: 5, Digits: 1, Negative: true},
		{Input: ".5", Whole: 0, Fraction: 5, Digits: 1},
		{Input: "7.", Whole: 7, Fraction: 0, Digits: 0},
		{Input: "12.000", Whole: 12, Fraction: 0, Digits: 3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			in := amount.FromString(tc.Input)
			require.Equal(t, tc.Digits, in.FractionDigits())

			a, err := amount.Parse(in)
			require.NoError(t, err)

			f, ok := a.(amount.Fraction)
			if !ok {
				t.Logf("Amount: %s\n", spew.Sdump(a))
			}
			require.True(t, ok)
			require.Equal(t, tc.Whole, f.Whole.Int64())
			require.Equal(t, tc.Fraction, f.Fraction.Int64())
			require.Equal(t, tc.Digits, f.Digits)
			require.Equal(t, tc.Negative, f.Negative)
			require.Equal(t, -1, f.Fraction.Cmp(amount.Pow10(f.Digits)))
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []amount.Input{
		amount.FromString("1.2.3"),
		amount.FromString("1..2"),
		amount.FromString("xyz"),
		amount.FromString("0xzz"),
		amount.FromString(" 1"),
		amount.FromString("+ff"),
		amount.FromBig(nil),
		{},
	}

	for i, in := range inputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := amount.Parse(in)
			require.Error(t, err)
			require.True(t, amount.InvalidArgument.Has(err), err.Error())
		})
	}
}

func TestNumerator(t *testing.T) {
	type TC struct {
		Input  string
		N      string
		Digits int
	}

	tcs := []TC{
		{Input: "1001", N: "1001", Digits: 0},
		{Input: "1.5", N: "15", Digits: 1},
		{Input: "-1.250", N: "-1250", Digits: 3},
		{Input: "0.001", N: "1", Digits: 3},
		{Input: "-0x10", N: "-16", Digits: 0},
	}

	for _, tc := range tcs {
		a, err := amount.ParseString(tc.Input)
		require.NoError(t, err, tc.Input)

		n, digits := amount.Numerator(a)
		require.Equal(t, tc.N, n.String(), tc.Input)
		require.Equal(t, tc.Digits, digits, tc.Input)
	}
}

func TestParseDoesNotAlias(t *testing.T) {
	v := big.NewInt(5)
	in := amount.FromBig(v)
	v.SetInt64(6)

	a, err := amount.Parse(in)
	require.NoError(t, err)

	got := a.(amount.Integer).Value
	require.Equal(t, int64(5), got.Int64())

	got.SetInt64(9)

	again, err := amount.Parse(in)
	require.NoError(t, err)
	require.Equal(t, int64(5), again.(amount.Integer).Value.Int64())
}
