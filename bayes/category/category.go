package category

// Category represents a single trained text category. Its counts only change
// through Categories.Train.
type Category struct {
	name   string         // Name of this category
	tokens map[string]int // Map of tokens to their count
	tally  int            // Total tokens in this category
}

// NewCategory returns a pointer to a instance of type Category
func NewCategory(name string) *Category {
	return &Category{
		name:   name,
		tokens: make(map[string]int),
	}
}

// Name returns the category label
func (cat *Category) Name() string {
	return cat.name
}

// trainToken counts one occurrence of word and reports whether it is new to
// this category.
func (cat *Category) trainToken(word string) bool {
	count, seen := cat.tokens[word]
	cat.tokens[word] = count + 1
	return !seen
}

// TokenCount returns a token's count in this category and whether it was seen
func (cat *Category) TokenCount(word string) (int, bool) {
	count, ok := cat.tokens[word]
	return count, ok
}

// GetTally returns the total of all tokens for this category
func (cat *Category) GetTally() int {
	return cat.tally
}

// Len returns the number of distinct tokens in this category
func (cat *Category) Len() int {
	return len(cat.tokens)
}
