package fakers

// CategoryNames maps each root category to its subcategories.
var CategoryNames = map[string][]string{
	"Electronics": {"Phones", "Laptops", "Audio"},
	"Fashion":     {"Men", "Women", "Shoes"},
	"Home":        {"Kitchen", "Furniture"},
	"Hobbies":     {"Books", "Sports"},
}
