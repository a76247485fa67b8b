package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCurrency(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"empty text", "", "$"},
		{"no markers", "Chicken Biryani 250\nNaan 45", "$"},
		{"dollar symbol", "Burger $8.50\nFries $3", "$"},
		{"rupee symbol dominates", "Biryani ₹250\nNaan ₹45\nCoke $2", "₹"},
		{"euro", "Espresso €2.50", "€"},
		{"code at word boundary", "Biryani INR 250\nNaan INR 45", "INR"},
		{"rs abbreviation", "Biryani Rs. 250\nNaan Rs 45", "Rs"},
		{"rs inside word ignored", "Opening Hours 9-5\nBurger 8", "$"},
		{"iso code outside lexicon", "Set menu CHF 24\nSoup CHF 9", "CHF"},
		{"uppercase word not a currency", "THE daily special 12", "$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DetectCurrency(c.text))
		})
	}
}

func TestDetectCurrencyTieBreaksByLexiconOrder(t *testing.T) {
	// One of each; the symbol listed first wins.
	assert.Equal(t, "$", DetectCurrency("a $5 and b €5"))
}
