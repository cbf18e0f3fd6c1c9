package bayes

import (
	"github.com/hickeroar/nbclassify/bayes/category"
	"github.com/hickeroar/nbclassify/corpus"
)

// Vocabulary is the word statistics model learned from a training corpus.
// It is read-only once Train returns.
type Vocabulary struct {
	categories *category.Categories
	total      int
	docFreq    map[string]int // word -> number of categories containing it
}

// Train builds a Vocabulary from labeled records. Records with a label and
// no words still register their category.
func Train(records []corpus.Record) *Vocabulary {
	v := &Vocabulary{
		categories: category.NewCategories(),
		docFreq:    make(map[string]int),
	}
	for _, rec := range records {
		v.learn(rec.Label, rec.Tokens)
	}
	return v
}

func (v *Vocabulary) learn(label string, words []string) {
	for _, word := range v.categories.Train(label, words) {
		v.docFreq[word]++
	}
	v.total += len(words)
}

// Categories returns category names in first-seen order.
func (v *Vocabulary) Categories() []string {
	return v.categories.Names()
}

// Category returns a trained category. The returned value only exposes
// read accessors.
func (v *Vocabulary) Category(name string) (*category.Category, bool) {
	return v.categories.LookupCategory(name)
}

// CategoryCount returns the number of trained categories.
func (v *Vocabulary) CategoryCount() int {
	return v.categories.Len()
}

// TotalWords returns the number of words across all training records.
func (v *Vocabulary) TotalWords() int {
	return v.total
}

// Size returns the number of distinct words seen in training.
func (v *Vocabulary) Size() int {
	return len(v.docFreq)
}

// DocumentFrequency returns how many categories contain word.
func (v *Vocabulary) DocumentFrequency(word string) (int, bool) {
	df, ok := v.docFreq[word]
	return df, ok
}

// Prior returns a category's share of all training words.
func (v *Vocabulary) Prior(name string) float64 {
	cat, ok := v.categories.LookupCategory(name)
	if !ok || v.total == 0 {
		return 0
	}
	return float64(cat.GetTally()) / float64(v.total)
}
