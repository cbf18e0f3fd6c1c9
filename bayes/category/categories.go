package category

// Categories holds every trained category in first-seen order.
type Categories struct {
	categories map[string]*Category // Map of category names to categories
	order      []string
}

// NewCategories returns a pointer to a instance of type Categories
func NewCategories() *Categories {
	return &Categories{
		categories: make(map[string]*Category),
	}
}

// Train adds one document to the named category, creating the category at
// the end of the order if needed. It returns the words the category had not
// seen before, in document order.
func (cats *Categories) Train(name string, words []string) []string {
	cat := cats.getCategory(name)
	cat.tally += len(words)

	var fresh []string
	for _, word := range words {
		if cat.trainToken(word) {
			fresh = append(fresh, word)
		}
	}
	return fresh
}

func (cats *Categories) getCategory(name string) *Category {
	if val, ok := cats.categories[name]; ok {
		return val
	}

	cat := NewCategory(name)
	cats.categories[name] = cat
	cats.order = append(cats.order, name)

	return cat
}

// LookupCategory returns a category without creating it
func (cats *Categories) LookupCategory(name string) (*Category, bool) {
	cat, ok := cats.categories[name]
	return cat, ok
}

// Names returns the category names in the order they were first seen
func (cats *Categories) Names() []string {
	names := make([]string, len(cats.order))
	copy(names, cats.order)
	return names
}

// Len returns the number of categories
func (cats *Categories) Len() int {
	return len(cats.order)
}
