// Package integer provides a sign and magnitude view of arbitrary precision
// integers.
//
// The magnitude is stored big-endian without any two's complement encoding,
// which is the form hex quantities take on the wire:
//
//  -255 = Block{Value: []byte{0xff}, Negative: true}
//
// Zero is always a single zero byte and is never negative.
package integer

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i. A nil i is treated as zero.
func FromBig(i *big.Int) Block {
	if i == nil {
		return Block{Value: []byte{0}}
	}

	data := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		return Block{Value: []byte{0}}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// FromInt64 returns the block for v.
func FromInt64(v int64) Block {
	return FromBig(big.NewInt(v))
}

// FromUint64 returns the block for v.
func FromUint64(v uint64) Block {
	return FromBig(new(big.Int).SetUint64(v))
}

// FromUint256 returns the block for v. A nil v is treated as zero.
func FromUint256(v *uint256.Int) Block {
	if v == nil {
		return FromBig(nil)
	}

	return FromBig(v.ToBig())
}

// Parse reads s in the given base. An optional leading sign is accepted.
func Parse(s string, base int) (b Block, err error) {
	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		return b, Error.New("invalid base %d integer: %q", base, s)
	}

	return FromBig(i), nil
}

// Big returns a newly allocated big.Int holding the block's value.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// IsZero reports whether the magnitude is zero.
func (b Block) IsZero() bool {
	for _, v := range b.Value {
		if v != 0 {
			return false
		}
	}

	return true
}

// Sign returns -1, 0 or +1.
func (b Block) Sign() int {
	switch {
	case b.IsZero():
		return 0
	case b.Negative:
		return -1
	}

	return 1
}

// Magnitude returns the big-endian absolute value with leading zero bytes
// removed. Zero is returned as a single zero byte.
func (b Block) Magnitude() []byte {
	data := b.Value
	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}

	if len(data) == 0 {
		return []byte{0}
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out
}
