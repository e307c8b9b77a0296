// Package pricing converts between tax-exclusive (HT) and tax-inclusive
// (TTC) amounts. All computation is float64; rounding happens only when
// formatting for display.
package pricing

import "fmt"

// Line is the minimal shape the calculator needs from a cart line.
type Line struct {
	UnitPriceHT float64
	TVA         float64 // percent, e.g. 20 for 20%
	Quantity    int
}

func LineTotalHT(l Line) float64 {
	return l.UnitPriceHT * float64(l.Quantity)
}

func LineTotalTTC(l Line) float64 {
	return l.UnitPriceHT * (1 + l.TVA/100) * float64(l.Quantity)
}

func CartTotalHT(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += LineTotalHT(l)
	}
	return total
}

func CartTotalTTC(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += LineTotalTTC(l)
	}
	return total
}

// FormatEUR renders an amount for display, rounded to 2 decimals.
func FormatEUR(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}
