// Package randompkg provides functionality for generating random ledger items in tests.
package randompkg

import (
	"crypto/rand"
	"math/big"

	"github.com/shopspring/decimal"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

// ClientID generates a random client id.
func ClientID() uint16 {
	return uint16(Intn(1 << 16))
}

// MoneyAmountBetween generates a random amount of money between min and max
// with up to 4 decimal places, as text.
func MoneyAmountBetween(min, max int64) string {
	units := IntBetween(int(min*10_000), int(max*10_000))
	return decimal.New(int64(units), -4).String()
}

// Pick returns a random element of items.
func Pick[T any](items []T) T {
	return items[Intn(len(items))]
}
