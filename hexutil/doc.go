// Package hexutil converts between hex strings, raw bytes and arbitrary
// precision integers.
//
// Zero Prefix
//
// A hex string may carry a single leading "0x" marker. StripZeroPrefix
// removes at most one marker and AddZeroPrefix adds one. AddZeroPrefix also
// trims leading '0' characters from the payload, so the result is a hex
// quantity rather than fixed width data:
//
//  AddZeroPrefix("000a") == "0xa"
//  AddZeroPrefix("0")    == "0x"
//
// Numbers vs Bytes
//
// There are two distinct encoders and they are not interchangeable:
//
//  NumberToHex(big.NewInt(255), false) == "ff"
//  BytesToHex("255", false)            == "323535"
//
// ToHex dispatches on the Go type of its argument: integer kinds use
// NumberToHex and strings use BytesToHex. A numeric looking string is never
// interpreted as a number by ToHex; parse it first and call NumberToHex.
package hexutil
