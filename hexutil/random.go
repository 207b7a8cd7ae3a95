package hexutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/calebcase/oops"
)

// RandomHex returns byteLength bytes from the system CSPRNG as an unprefixed
// hex string of 2*byteLength characters.
func RandomHex(byteLength int) (string, error) {
	if byteLength < 0 {
		return "", InvalidArgument.New("negative length: %d", byteLength)
	}

	buf := make([]byte, byteLength)

	_, err := rand.Read(buf)
	if err != nil {
		return "", oops.Trace(err)
	}

	return hex.EncodeToString(buf), nil
}
