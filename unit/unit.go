// Package unit is the fixed table of ether denominations.
//
// Every denomination is a power of ten relative to wei. Names are matched
// exactly and several names share a factor (for example "kwei", "Kwei",
// "babbage" and "femtoether" are all 10^3).
package unit

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// UnsupportedUnit is returned when a name is absent from the table.
var UnsupportedUnit = errs.Class("unsupported unit")

// PriceDecimalPrecision is the number of decimals used when quoting gas
// prices in gwei.
const PriceDecimalPrecision = 9

// Commonly used names.
const (
	Wei   = "wei"
	Gwei  = "gwei"
	Ether = "ether"
)

// Denomination is a named scale factor. Factor is "1" followed by zero or more
// "0" characters.
type Denomination struct {
	Name   string
	Factor string
}

var table = []Denomination{
	{"wei", "1"},
	{"kwei", "1000"},
	{"Kwei", "1000"},
	{"babbage", "1000"},
	{"femtoether", "1000"},
	{"mwei", "1000000"},
	{"Mwei", "1000000"},
	{"lovelace", "1000000"},
	{"picoether", "1000000"},
	{"gwei", "1000000000"},
	{"Gwei", "1000000000"},
	{"shannon", "1000000000"},
	{"nanoether", "1000000000"},
	{"nano", "1000000000"},
	{"szabo", "1000000000000"},
	{"microether", "1000000000000"},
	{"micro", "1000000000000"},
	{"finney", "1000000000000000"},
	{"milliether", "1000000000000000"},
	{"milli", "1000000000000000"},
	{"ether", "1000000000000000000"},
	{"kether", "1000000000000000000000"},
	{"grand", "1000000000000000000000"},
	{"mether", "1000000000000000000000000"},
	{"gether", "1000000000000000000000000000"},
	{"tether", "1000000000000000000000000000000"},
}

var index = func() map[string]Denomination {
	m := make(map[string]Denomination, len(table))
	for _, d := range table {
		m[d.Name] = d
	}

	return m
}()

// Lookup returns the denomination for name.
func Lookup(name string) (d Denomination, err error) {
	d, ok := index[name]
	if !ok {
		return d, UnsupportedUnit.New(
			"unit %q doesn't exist, please use one of the following units: %s",
			name,
			strings.Join(Names(), ","),
		)
	}

	return d, nil
}

// Names returns every denomination name in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, d := range table {
		names[i] = d.Name
	}

	return names
}

// All returns a copy of the table.
func All() []Denomination {
	out := make([]Denomination, len(table))
	copy(out, table)

	return out
}

// FromDecimals returns an unnamed denomination of 10^decimals, used for
// tokens that declare their own precision.
func FromDecimals(decimals int) (d Denomination, err error) {
	if decimals < 0 {
		return d, UnsupportedUnit.New("negative decimals: %d", decimals)
	}

	return Denomination{
		Factor: "1" + strings.Repeat("0", decimals),
	}, nil
}

// Zeros returns the base 10 exponent of the factor.
func (d Denomination) Zeros() int {
	return strings.Count(d.Factor, "0")
}

// Big returns a newly allocated big.Int holding the factor.
func (d Denomination) Big() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Zeros())), nil)
}

func (d Denomination) String() string {
	if d.Name == "" {
		return "1e" + strconv.Itoa(d.Zeros())
	}

	return d.Name
}
