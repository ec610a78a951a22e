package utils

import (
	"math"
	"strings"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian grouping: hundred, thousand, lakh, crore.
var wordScales = []struct {
	value int
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// NumberToWords spells num in the Indian numbering system. Zero yields "".
func NumberToWords(num int) string {
	switch {
	case num <= 0:
		return ""
	case num < 20:
		return wordOnes[num]
	case num < 100:
		return strings.TrimSpace(wordTens[num/10] + " " + wordOnes[num%10])
	}
	for _, scale := range wordScales {
		if num >= scale.value {
			head := NumberToWords(num/scale.value) + " " + scale.name
			if rem := num % scale.value; rem != 0 {
				return head + " " + NumberToWords(rem)
			}
			return head
		}
	}
	return ""
}

// NumberToCurrencyWords spells a rupee amount for the PDF footer, e.g.
// "One Lakh Three Thousand Five Hundred Rupees Only". Negative amounts are
// prefixed with "Minus" so a negative balance still reads correctly.
func NumberToCurrencyWords(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "Minus "
		amount = -amount
	}

	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, NumberToWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, NumberToWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return prefix + strings.Join(parts, " and ") + " Only"
}
