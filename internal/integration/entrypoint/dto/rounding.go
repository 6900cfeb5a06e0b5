package dto

import "github.com/shopspring/decimal"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// round1 rounds a kg CO2e figure to one decimal place for display.
func round1(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return rounded
}
