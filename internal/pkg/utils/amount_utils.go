package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseBaseUnits parses a non-negative integer string in token base units.
// Example: "1000000000000000000" is 1 unit of an 18-decimals token.
func ParseBaseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("amount is empty")
	}
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("amount %q is not a base-10 integer", s)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("amount %q is negative", s)
	}
	return amount, nil
}

// pow10 returns 10^decimals as a big.Float.
func pow10(decimals uint8) *big.Float {
	return new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
}

// BaseUnitsToHuman converts an integer base-unit amount to a human amount:
// human = integer / 10^decimals.
// Example: amount=1234500000000000000, decimals=18 => 1.2345
func BaseUnitsToHuman(amount *big.Int, decimals uint8) float64 {
	if amount == nil {
		return 0
	}
	value := new(big.Float).Quo(new(big.Float).SetInt(amount), pow10(decimals))
	f, _ := value.Float64()
	return f
}

// HumanToBaseUnitsFloor converts a human amount to integer base units,
// flooring toward zero. Floor, never round: a quote must not overpay by a
// fraction of a base unit.
func HumanToBaseUnitsFloor(human float64, decimals uint8) *big.Int {
	if human <= 0 {
		return big.NewInt(0)
	}
	scaled := new(big.Float).Mul(big.NewFloat(human), pow10(decimals))
	out, _ := scaled.Int(nil) // truncates toward zero
	return out
}
