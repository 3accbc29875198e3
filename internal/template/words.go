package template

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	smallNumbers = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
		"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tensNames = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	scales    = []struct {
		value int64
		name  string
	}{
		{1_000_000_000, "Billion"},
		{1_000_000, "Million"},
		{1_000, "Thousand"},
		{100, "Hundred"},
	}
)

// AmountInWords spells an amount the way invoices print it, for example
// "One Thousand Five Hundred and 50/100 UAE Dirhams".
func AmountInWords(amount decimal.Decimal, currency string) string {
	var prefix string
	if amount.IsNegative() {
		prefix = "Minus "
		amount = amount.Abs()
	}
	amount = amount.Round(2)
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Shift(2).IntPart()

	words := "Zero"
	if n := whole.IntPart(); n > 0 {
		words = strings.Join(spell(n), " ")
	}
	if cents > 0 {
		words += fmt.Sprintf(" and %02d/100", cents)
	}
	if currency != "" {
		words += " " + currency
	}
	return prefix + words
}

func spell(n int64) []string {
	for _, scale := range scales {
		if n >= scale.value {
			words := append(spell(n/scale.value), scale.name)
			return append(words, spell(n%scale.value)...)
		}
	}
	if n >= 20 {
		words := []string{tensNames[n/10]}
		if n%10 > 0 {
			words = append(words, smallNumbers[n%10])
		}
		return words
	}
	if n == 0 {
		return nil
	}
	return []string{smallNumbers[n]}
}
