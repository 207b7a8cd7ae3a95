// Package commands defines the ethunit CLI.
//
// Commands
//
//   - to-wei       Convert an amount in a unit (or token decimals) to wei
//   - from-wei     Convert an amount of wei to a unit (or token decimals)
//   - to-ether     Convert an amount in a unit to ether
//   - checksum     Print the mixed case checksum form of an address
//   - is-address   Report whether text is a valid address
//   - hex          Hex encode a number or the bytes of a string
//   - sha3         Print the Keccak-256 hash of a value
//   - random-hex   Print random bytes as hex
//   - units        List the known denominations
//
// # Configuration
//
// An optional .env file (see --env-file) is loaded before any command runs.
// ETHUNIT_UNIT sets the default unit for the conversion commands and
// ETHUNIT_LOG_LEVEL the log level. Flags override both.
package commands
