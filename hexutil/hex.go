package hexutil

import (
	"encoding/hex"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/integer"
)

// Prefix is the zero prefix marker.
const Prefix = "0x"

var (
	// InvalidArgument is returned for malformed or unsupported input.
	InvalidArgument = errs.Class("hexutil: invalid argument")

	// DecodeError is returned when a hex payload cannot be decoded to
	// bytes.
	DecodeError = errs.Class("hexutil: decode")
)

var (
	hexPattern    = regexp.MustCompile(`(?i)^(0x)?[0-9a-f]*$`)
	digitsPattern = regexp.MustCompile(`(?i)^[0-9a-f]+$`)
)

// IsZeroPrefixed returns true if s begins with "0x".
func IsZeroPrefixed(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// StripZeroPrefix removes one leading "0x" if present.
func StripZeroPrefix(s string) string {
	return strings.TrimPrefix(s, Prefix)
}

// AddZeroPrefix returns s unchanged if it is already prefixed. Otherwise the
// leading '0' characters are removed and "0x" is prepended.
func AddZeroPrefix(s string) string {
	if IsZeroPrefixed(s) {
		return s
	}

	return Prefix + strings.TrimLeft(s, "0")
}

// IsHexString returns true if s is an optionally prefixed run of hex digits
// in either case. The empty payload is valid.
func IsHexString(s string) bool {
	return hexPattern.MatchString(s)
}

// ToBinary decodes the hex payload of s to bytes.
func ToBinary(s string) (data []byte, err error) {
	data, err = hex.DecodeString(StripZeroPrefix(s))
	if err != nil {
		return nil, DecodeError.Wrap(err)
	}

	return data, nil
}

// ToInteger parses s as an unsigned 64 bit integer.
func ToInteger(s string) (v uint64, err error) {
	if !IsHexString(s) {
		return 0, InvalidArgument.New("not a valid hex string: %q", s)
	}

	payload := trimPrefix(s)
	if payload == "" {
		return 0, nil
	}

	v, err = strconv.ParseUint(payload, 16, 64)
	if err != nil {
		return 0, InvalidArgument.Wrap(oops.Trace(err))
	}

	return v, nil
}

// ToBigInt parses the payload of s as an unsigned base 16 integer. An empty
// payload is zero.
func ToBigInt(s string) (*big.Int, error) {
	payload := trimPrefix(s)
	if payload == "" {
		return new(big.Int), nil
	}

	// SetString would otherwise accept a sign or underscores.
	if !digitsPattern.MatchString(payload) {
		return nil, InvalidArgument.New("not a valid hex string: %q", s)
	}

	v, ok := new(big.Int).SetString(payload, 16)
	if !ok {
		return nil, InvalidArgument.New("not a valid hex string: %q", s)
	}

	return v, nil
}

// NumberToHex encodes the magnitude of v big-endian with leading zero nibbles
// removed. The sign is dropped. With prefix the result is passed through
// AddZeroPrefix, so zero becomes "0x".
func NumberToHex(v *big.Int, prefix bool) string {
	return blockToHex(integer.FromBig(v), prefix)
}

// BytesToHex encodes every byte of s, after removing one "0x" marker, as two
// hex digits.
func BytesToHex(s string, prefix bool) string {
	out := hex.EncodeToString([]byte(StripZeroPrefix(s)))
	if prefix {
		return AddZeroPrefix(out)
	}

	return out
}

// ToHex encodes value according to its type. Integer kinds, *big.Int,
// *uint256.Int and integer.Block use NumberToHex; string and []byte use
// BytesToHex. Any other type, including floating point, is rejected.
func ToHex(value interface{}, prefix bool) (string, error) {
	switch v := value.(type) {
	case int:
		return blockToHex(integer.FromInt64(int64(v)), prefix), nil
	case int8:
		return blockToHex(integer.FromInt64(int64(v)), prefix), nil
	case int16:
		return blockToHex(integer.FromInt64(int64(v)), prefix), nil
	case int32:
		return blockToHex(integer.FromInt64(int64(v)), prefix), nil
	case int64:
		return blockToHex(integer.FromInt64(v), prefix), nil
	case uint:
		return blockToHex(integer.FromUint64(uint64(v)), prefix), nil
	case uint8:
		return blockToHex(integer.FromUint64(uint64(v)), prefix), nil
	case uint16:
		return blockToHex(integer.FromUint64(uint64(v)), prefix), nil
	case uint32:
		return blockToHex(integer.FromUint64(uint64(v)), prefix), nil
	case uint64:
		return blockToHex(integer.FromUint64(v), prefix), nil
	case *big.Int:
		if v == nil {
			break
		}
		return NumberToHex(v, prefix), nil
	case *uint256.Int:
		if v == nil {
			break
		}
		return blockToHex(integer.FromUint256(v), prefix), nil
	case integer.Block:
		return blockToHex(v, prefix), nil
	case string:
		return BytesToHex(v, prefix), nil
	case []byte:
		return BytesToHex(string(v), prefix), nil
	}

	return "", InvalidArgument.New(
		"unsupported value: value=%v type=%T; only integers, big numbers and strings are allowed",
		value,
		value,
	)
}

func blockToHex(b integer.Block, prefix bool) string {
	out := strings.TrimLeft(hex.EncodeToString(b.Magnitude()), "0")
	if out == "" {
		out = "0"
	}

	if prefix {
		return AddZeroPrefix(out)
	}

	return out
}

// trimPrefix removes a "0x" or "0X" marker.
func trimPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}

	return s
}
