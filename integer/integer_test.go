package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestFromBig(t *testing.T) {
	type TC struct {
		name string
		blk  Block
	}

	tcs := []TC{
		{
			name: "0",
			blk: Block{
				Value: []byte{
					0b0000_0000,
				},
			},
		},
		{
			name: "+1",
			blk: Block{
				Value: []byte{
					0b0000_0001,
				},
			},
		},
		{
			name: "-1",
			blk: Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
		},
		{
			name: "-255",
			blk: Block{
				Value: []byte{
					0b1111_1111,
				},
				Negative: true,
			},
		},
		{
			name: "+32767",
			blk: Block{
				Value: []byte{
					0b0111_1111,
					0b1111_1111,
				},
			},
		},
		{
			name: "+65536",
			blk: Block{
				Value: []byte{
					0b0000_0001,
					0b0000_0000,
					0b0000_0000,
				},
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			v := new(big.Int)
			err := v.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)

			t.Run("from", func(t *testing.T) {
				require.Equal(t, tc.blk, FromBig(v))
			})

			t.Run("big", func(t *testing.T) {
				require.Equal(t, 0, v.Cmp(tc.blk.Big()))
				require.Equal(t, v.Sign(), tc.blk.Sign())
			})

			t.Run("parse", func(t *testing.T) {
				blk, err := Parse(tc.name, 10)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)
			})
		})
	}
}

func TestFromBigDoesNotAlias(t *testing.T) {
	v := big.NewInt(-42)
	blk := FromBig(v)

	blk.Value[0] = 0
	require.Equal(t, int64(-42), v.Int64())

	out := blk.Big()
	out.SetInt64(7)
	require.True(t, blk.IsZero())
}

func TestNil(t *testing.T) {
	require.Equal(t, Block{Value: []byte{0}}, FromBig(nil))
	require.Equal(t, Block{Value: []byte{0}}, FromUint256(nil))
	require.Equal(t, 0, FromBig(nil).Sign())
}

func TestFromUint(t *testing.T) {
	require.Equal(t, []byte{0xff, 0xff}, FromUint64(65535).Value)
	require.Equal(t, FromInt64(-7).Magnitude(), []byte{7})

	u := uint256.NewInt(0).Lsh(uint256.NewInt(1), 200)
	blk := FromUint256(u)
	require.Len(t, blk.Value, 26)
	require.Equal(t, byte(1), blk.Value[0])
	require.False(t, blk.Negative)
}

func TestMagnitude(t *testing.T) {
	type TC struct {
		blk  Block
		want []byte
	}

	tcs := []TC{
		{blk: Block{}, want: []byte{0}},
		{blk: Block{Value: []byte{0, 0}}, want: []byte{0}},
		{blk: Block{Value: []byte{0, 0, 1, 0}}, want: []byte{1, 0}},
		{blk: Block{Value: []byte{0x80}, Negative: true}, want: []byte{0x80}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.blk.Magnitude())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("0xzz", 16)
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = Parse("", 10)
	require.Error(t, err)
}

func BenchmarkFromBig(b *testing.B) {
	v, _ := new(big.Int).SetString("-1000000000000000000000000", 10)

	for n := 0; n < b.N; n++ {
		blk := FromBig(v)
		if blk.Sign() != -1 {
			b.Fatalf("unexpected sign: %d", blk.Sign())
		}
	}
}
