package bayes

import (
	"errors"
	"fmt"
	"math"

	"github.com/hickeroar/nbclassify/bayes/category"
)

// ErrUnknownEstimator is returned for a selector outside raw, mest and tfidf.
var ErrUnknownEstimator = errors.New("unknown probability estimator")

// Estimator selects how P(word|category) is estimated.
type Estimator int

const (
	// Raw is the relative frequency of a word in a category.
	Raw Estimator = iota
	// MEstimate adds one to every count (Laplace smoothing).
	MEstimate
	// TFIDF weights term frequency by inverse category frequency.
	TFIDF
)

var estimatorNames = map[Estimator]string{
	Raw:       "raw",
	MEstimate: "mest",
	TFIDF:     "tfidf",
}

// EstimatorNames lists the accepted selectors.
func EstimatorNames() []string {
	return []string{"raw", "mest", "tfidf"}
}

// ParseEstimator maps a selector to its Estimator.
func ParseEstimator(name string) (Estimator, error) {
	for e, n := range estimatorNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEstimator, name)
}

func (e Estimator) String() string {
	if name, ok := estimatorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Estimator(%d)", int(e))
}

// MarshalText lets reports encode an Estimator by its selector.
func (e Estimator) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Estimate returns the estimator's value for word in the named category.
// Unknown categories score zero.
func (v *Vocabulary) Estimate(e Estimator, word, name string) float64 {
	cat, ok := v.categories.LookupCategory(name)
	if !ok {
		return 0
	}
	return v.estimate(e, word, cat)
}

func (v *Vocabulary) estimate(e Estimator, word string, cat *category.Category) float64 {
	switch e {
	case MEstimate:
		return v.mestProb(word, cat)
	case TFIDF:
		return v.tfidfProb(word, cat)
	default:
		return v.rawProb(word, cat)
	}
}

func (v *Vocabulary) rawProb(word string, cat *category.Category) float64 {
	count, ok := cat.TokenCount(word)
	if !ok {
		return 0
	}
	return float64(count) / float64(cat.GetTally())
}

func (v *Vocabulary) mestProb(word string, cat *category.Category) float64 {
	denom := float64(cat.GetTally() + v.Size())
	count, _ := cat.TokenCount(word)
	return float64(count+1) / denom
}

func (v *Vocabulary) tfidfProb(word string, cat *category.Category) float64 {
	var idf float64
	if df, ok := v.docFreq[word]; ok {
		// The +2 keeps idf above zero for words found in every category.
		idf = math.Log(float64(v.CategoryCount()+2) / float64(1+df))
	} else {
		idf = math.Log(float64(v.CategoryCount()))
	}

	var tf float64
	if count, ok := cat.TokenCount(word); ok {
		tf = (float64(count) + 0.1) / float64(cat.GetTally())
	} else {
		tf = 0.1 / float64(cat.GetTally()+v.Size())
	}

	return math.Abs(idf * tf)
}
