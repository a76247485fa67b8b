package menu

import "strings"

// DefaultCategory is assigned when no lexicon keyword matches.
const DefaultCategory = "General"

// categoryLexicon maps lowercase keywords to menu categories. First
// match in lexiconOrder wins, so more specific sections are listed
// before broader ones.
var categoryLexicon = map[string][]string{
	"Beverages":  {"coffee", "tea", "juice", "soda", "cola", "shake", "smoothie", "lassi", "water", "beer", "wine", "latte", "espresso", "cappuccino"},
	"Desserts":   {"cake", "ice cream", "icecream", "kulfi", "gulab", "pastry", "brownie", "pudding", "dessert", "sweet", "halwa"},
	"Breads":     {"naan", "roti", "paratha", "kulcha", "chapati", "bread", "bun"},
	"Starters":   {"soup", "salad", "starter", "appetizer", "tikka", "pakora", "samosa", "spring roll", "fries", "wings", "kebab"},
	"Rice":       {"biryani", "rice", "pulao", "fried rice", "risotto"},
	"Main Course": {
		"curry", "masala", "paneer", "chicken", "mutton", "fish", "prawn",
		"noodles", "pasta", "pizza", "burger", "sandwich", "wrap", "dal", "thali", "steak",
	},
}

var lexiconOrder = []string{"Beverages", "Desserts", "Breads", "Starters", "Rice", "Main Course"}

// InferCategory assigns a category from the keyword lexicon, falling
// back to DefaultCategory when the item name matches nothing.
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range lexiconOrder {
		for _, kw := range categoryLexicon[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return DefaultCategory
}
