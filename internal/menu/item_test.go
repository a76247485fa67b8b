package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		item  Item
		valid bool
	}{
		{"ok", Item{Name: "Chicken Biryani", Price: 250}, true},
		{"zero price", Item{Name: "Chicken Biryani", Price: 0}, false},
		{"negative price", Item{Name: "Chicken Biryani", Price: -5}, false},
		{"price above cap", Item{Name: "Chicken Biryani", Price: 200000}, false},
		{"price at cap", Item{Name: "Chicken Biryani", Price: 100000}, true},
		{"name too short", Item{Name: "ab", Price: 10}, false},
		{"name at min length", Item{Name: "Pie", Price: 10}, true},
		{"name too long", Item{Name: string(make([]byte, 101)), Price: 10}, false},
		{"stoplist total", Item{Name: "Total", Price: 340}, false},
		{"stoplist subtotal", Item{Name: "subtotal", Price: 300}, false},
		{"stoplist padded", Item{Name: "  Tax  ", Price: 18}, false},
		{"stoplist substring ok", Item{Name: "Total Bliss Sundae", Price: 90}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.valid, IsValid(c.item))
		})
	}
}

func TestKeyCollapsesPhrasings(t *testing.T) {
	a := Key("Paneer Tikka", 120)
	b := Key("paneer  tikka", 120.0)
	c := Key("PaneerTikka", 120.004)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	assert.NotEqual(t, Key("Paneer Tikka", 120), Key("Paneer Tikka", 125))
	assert.NotEqual(t, Key("Paneer Tikka", 120), Key("Chicken Tikka", 120))
}

func TestCleanName(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"  Chicken Biryani  ", "Chicken Biryani"},
		{"Chicken Biryani ....", "Chicken Biryani"},
		{"- Samosa -", "Samosa"},
		{"Margherita   Pizza", "Margherita Pizza"},
		{"Naan 2", "Naan 2"}, // trailing variant digits are kept
		{"*** Chai ***", "Chai"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, CleanName(c.in), "input %q", c.in)
	}
}
