package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/calebcase/ethunit/hexutil"
)

// NullHash is the Keccak-256 digest of empty input.
const NullHash = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

// Keccak256 returns the Keccak-256 digest of the concatenated data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}

	return h.Sum(nil)
}

// Sha3 returns the prefixed Keccak-256 hash of value. A "0x" prefixed value
// is decoded to bytes first, otherwise the text itself is hashed. If the
// digest is NullHash, ok is false and hash is empty.
func Sha3(value string) (hash string, ok bool, err error) {
	data := []byte(value)
	if hexutil.IsZeroPrefixed(value) {
		data, err = hexutil.ToBinary(value)
		if err != nil {
			return "", false, err
		}
	}

	hash, ok = Sha3Bytes(data)

	return hash, ok, nil
}

// Sha3Bytes is Sha3 over raw bytes.
func Sha3Bytes(data []byte) (hash string, ok bool) {
	digest := hex.EncodeToString(Keccak256(data))
	if digest == NullHash {
		return "", false
	}

	return hexutil.Prefix + digest, true
}
