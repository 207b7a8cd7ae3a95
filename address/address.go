package address

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/hexutil"
)

// InvalidArgument is returned for text that is not 40 hex digits.
var InvalidArgument = errs.Class("address: invalid argument")

// Length is the number of bytes in an address.
const Length = 20

var (
	anyCase   = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
	lowerCase = regexp.MustCompile(`^[0-9a-f]{40}$`)
	upperCase = regexp.MustCompile(`^[0-9A-F]{40}$`)
)

// Address is a 20 byte account address.
type Address [Length]byte

// ParseAddress decodes s, with or without prefix, in any case. The checksum
// is not verified; use IsAddress for that.
func ParseAddress(s string) (a Address, err error) {
	digits := strip(s)
	if !anyCase.MatchString(digits) {
		return a, InvalidArgument.New("expected 40 hex digits: %q", s)
	}

	_, err = hex.Decode(a[:], []byte(digits))
	if err != nil {
		return a, hexutil.DecodeError.Wrap(err)
	}

	return a, nil
}

// Hex returns the checksummed, prefixed form of a.
func (a Address) Hex() string {
	return checksum(hex.EncodeToString(a[:]))
}

func (a Address) String() string {
	return a.Hex()
}

// ToChecksumAddress returns the checksummed, prefixed form of s.
func ToChecksumAddress(s string) (string, error) {
	digits := strip(s)
	if !anyCase.MatchString(digits) {
		return "", InvalidArgument.New("expected 40 hex digits: %q", s)
	}

	return checksum(strings.ToLower(digits)), nil
}

// IsAddressChecksum returns true if the case of every letter in s matches the
// checksum of its lowercase form.
func IsAddressChecksum(s string) bool {
	digits := strip(s)
	if !anyCase.MatchString(digits) {
		return false
	}

	return checksum(strings.ToLower(digits))[len(hexutil.Prefix):] == digits
}

// IsAddress returns true if s is 40 hex digits, optionally prefixed, and is
// either single case or carries a valid checksum.
func IsAddress(s string) bool {
	digits := strip(s)

	switch {
	case !anyCase.MatchString(digits):
		return false
	case lowerCase.MatchString(digits), upperCase.MatchString(digits):
		return true
	}

	return IsAddressChecksum(s)
}

// checksum applies the case rule to lower, which must be 40 lowercase hex
// digits.
func checksum(lower string) string {
	hash := hex.EncodeToString(Keccak256([]byte(lower)))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}

	return hexutil.Prefix + string(out)
}

// strip removes a "0x" or "0X" prefix.
func strip(s string) string {
	if strings.HasPrefix(s, "0X") {
		return s[2:]
	}

	return hexutil.StripZeroPrefix(s)
}
