// Package rpcparam prepares values for JSON-RPC requests.
//
// Node APIs expect quantities as 0x prefixed hex strings. ForceAllNumbersHex
// rewrites a parameter object so every numeric field uses that encoding,
// leaving the chainId field as the caller provided it.
package rpcparam
