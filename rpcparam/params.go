package rpcparam

import (
	"encoding/json"
	"math/big"
	"regexp"

	"github.com/holiman/uint256"

	"github.com/calebcase/ethunit/hexutil"
)

// ChainID is the key whose value is never rewritten.
const ChainID = "chainId"

var digits = regexp.MustCompile(`^[0-9]+$`)

// ForceAllNumbersHex returns a copy of params with every non-negative numeric
// value replaced by its prefixed hex form. Nested objects are rewritten one
// level deep. Values that are not numbers, negative numbers, and deeper
// nesting are copied unchanged. params is not modified.
func ForceAllNumbersHex(params map[string]interface{}) map[string]interface{} {
	if params == nil {
		return nil
	}

	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if k == ChainID {
			out[k] = v
			continue
		}

		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = forceLevel(nested)
			continue
		}

		out[k] = force(v)
	}

	return out
}

func forceLevel(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if k == ChainID {
			out[k] = v
			continue
		}

		out[k] = force(v)
	}

	return out
}

func force(v interface{}) interface{} {
	n, ok := number(v)
	if !ok || n.Sign() < 0 {
		return v
	}

	return hexutil.NumberToHex(n, true)
}

// number reports the integer value of v for the types treated as numeric.
func number(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return n, true
	case *uint256.Int:
		if n == nil {
			return nil, false
		}
		return n.ToBig(), true
	case json.Number:
		return decimalString(string(n))
	case string:
		return decimalString(n)
	}

	return nil, false
}

func decimalString(s string) (*big.Int, bool) {
	if !digits.MatchString(s) {
		return nil, false
	}

	return new(big.Int).SetString(s, 10)
}
