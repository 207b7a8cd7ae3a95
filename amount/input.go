package amount

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
)

// Kind identifies the variant held by an Input.
type Kind uint8

// Input kinds.
const (
	Invalid Kind = iota
	NativeInt
	DecimalString
	HexString
	BigInt
)

func (k Kind) String() string {
	switch k {
	case NativeInt:
		return "native int"
	case DecimalString:
		return "decimal string"
	case HexString:
		return "hex string"
	case BigInt:
		return "big int"
	}

	return "invalid"
}

// Input is a value to be parsed. The zero Input is Invalid.
type Input struct {
	kind   Kind
	native int64
	text   string
	big    *big.Int
}

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9.]*[0-9][0-9.]*$`)

// FromInt64 returns a NativeInt input.
func FromInt64(v int64) Input {
	return Input{kind: NativeInt, native: v}
}

// FromBig returns a BigInt input. The value is copied. A nil v yields an
// Invalid input.
func FromBig(v *big.Int) Input {
	if v == nil {
		return Input{}
	}

	return Input{kind: BigInt, big: new(big.Int).Set(v)}
}

// FromUint256 returns a BigInt input. A nil v yields an Invalid input.
func FromUint256(v *uint256.Int) Input {
	if v == nil {
		return Input{}
	}

	return Input{kind: BigInt, big: v.ToBig()}
}

// FromString classifies s as a DecimalString or HexString input.
func FromString(s string) Input {
	if decimalPattern.MatchString(s) {
		return Input{kind: DecimalString, text: s}
	}

	return Input{kind: HexString, text: s}
}

// Kind returns the variant of in.
func (in Input) Kind() Kind {
	return in.kind
}

// FractionDigits returns the number of digits after the decimal point in a
// DecimalString input and zero for every other kind.
func (in Input) FractionDigits() int {
	if in.kind != DecimalString {
		return 0
	}

	i := strings.IndexByte(in.text, '.')
	if i < 0 {
		return 0
	}

	return len(in.text) - i - 1
}

func (in Input) String() string {
	switch in.kind {
	case NativeInt:
		return big.NewInt(in.native).String()
	case BigInt:
		return in.big.String()
	case DecimalString, HexString:
		return in.text
	}

	return "<invalid>"
}
