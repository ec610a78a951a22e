package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := map[int]string{
		0:        "",
		7:        "Seven",
		19:       "Nineteen",
		45:       "Forty Five",
		100:      "One Hundred",
		103500:   "One Lakh Three Thousand Five Hundred",
		10000000: "One Crore",
	}
	for num, want := range cases {
		assert.Equal(t, want, NumberToWords(num), "num=%d", num)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", NumberToCurrencyWords(0))
	assert.Equal(t, "One Lakh Three Thousand Five Hundred Rupees Only", NumberToCurrencyWords(103500))
	assert.Equal(t, "Fifty Rupees and Fifty Paise Only", NumberToCurrencyWords(50.50))
	assert.Equal(t, "Minus Five Thousand Rupees Only", NumberToCurrencyWords(-5000))
}
