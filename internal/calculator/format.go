package calculator

import "github.com/shopspring/decimal"

// Direction says whether a member should receive or pay.
type Direction string

const (
	DirectionReceive Direction = "receive"
	DirectionPay     Direction = "pay"
)

// DirectionOf returns the direction for a net balance. Zero counts as receive.
func DirectionOf(net float64) Direction {
	if net >= 0 {
		return DirectionReceive
	}
	return DirectionPay
}

// FormatAmount rounds v to whole currency units for display, half away from
// zero, and renders it without a sign.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Abs().Round(0).StringFixed(0)
}
