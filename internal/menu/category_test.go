package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Chicken Biryani", "Rice"},
		{"Butter Naan", "Breads"},
		{"Masala Chai Tea", "Beverages"},
		{"Gulab Jamun", "Desserts"},
		{"Veg Spring Roll", "Starters"},
		{"Paneer Butter Masala", "Main Course"},
		{"Mystery Special", "General"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, InferCategory(c.name), "name %q", c.name)
	}
}

func TestInferCategoryOrderMatters(t *testing.T) {
	// "biryani" wins over "chicken" because Rice precedes Main Course.
	assert.Equal(t, "Rice", InferCategory("chicken biryani"))
	// "lassi" wins over "sweet" because Beverages precedes Desserts.
	assert.Equal(t, "Beverages", InferCategory("Sweet Lassi"))
}
