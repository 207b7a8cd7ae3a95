// Package address implements the mixed case address checksum.
//
// The checksum of a 20 byte address is carried in the case of its 40 hex
// digits. The lowercase hex text (without prefix) is hashed with Keccak-256
// and, for each position i, the address digit is uppercased when hex digit i
// of the hash is 8 or greater:
//
//  5aeda56215b167893e80b4fe645ba6d5bab767de
//  0x5AEDA56215b167893e80B4fE645BA6d5Bab767DE
//
// Digits 0-9 have no case and are unaffected. An address written entirely
// in lowercase or entirely in uppercase carries no checksum and is accepted
// by IsAddress without verification.
package address
