// Package amount parses user supplied values into a canonical integer or
// fixed point fraction.
//
// Inputs
//
// An Input is one of four kinds:
//
//  NativeInt      FromInt64(42)
//  BigInt         FromBig(v), FromUint256(v)
//  DecimalString  FromString("-1.25")
//  HexString      FromString("0xff"), FromString("ff")
//
// FromString classifies its argument once: a run of decimal digits with an
// optional sign and decimal points is a DecimalString, anything else is a
// HexString candidate. A string such as "10" is therefore always ten, never
// sixteen; use the "0x" prefix to force hex.
//
// Amounts
//
// Parse produces either an Integer or, when a decimal string contains a
// decimal point, a Fraction:
//
//  "-1.250" = Fraction{Whole: 1, Fraction: 250, Digits: 3, Negative: true}
//
// Digits is the number of digits written after the point, including trailing
// zeros, so that Fraction / 10^Digits is exactly the written value.
package amount
