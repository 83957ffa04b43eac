package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda valores monetários para 2 casas (meio para longe do zero)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// ParseAmount converte um total textual ("100.00") em float64.
// Valores vazios ou não numéricos retornam ok=false.
func ParseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, false
	}

	return amount.InexactFloat64(), true
}

// AmountOrZero é ParseAmount com zero para entradas inválidas
func AmountOrZero(raw string) float64 {
	amount, _ := ParseAmount(raw)
	return amount
}
