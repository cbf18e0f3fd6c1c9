package bayes

// Classifier assigns documents to the category with the highest score.
type Classifier struct {
	vocab     *Vocabulary
	estimator Estimator
	score     ScoreFunc
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithScoreFunc replaces the estimator's default score combination.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.score = fn
		}
	}
}

// NewClassifier returns a pointer to a instance of type Classifier
func NewClassifier(vocab *Vocabulary, estimator Estimator, opts ...Option) *Classifier {
	c := &Classifier{
		vocab:     vocab,
		estimator: estimator,
		score:     DefaultScoreFunc(estimator),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classification is the result of classifying a document.
type Classification struct {
	Category string
	Score    float64
}

// CategoryScore is one category's score for a document.
type CategoryScore struct {
	Category string
	Score    float64
}

// Estimator returns the estimator the classifier scores with.
func (c *Classifier) Estimator() Estimator {
	return c.estimator
}

// Vocabulary returns the model the classifier reads from.
func (c *Classifier) Vocabulary() *Vocabulary {
	return c.vocab
}

// Score returns every category's score for words, in category order.
func (c *Classifier) Score(words []string) []CategoryScore {
	scores := make([]CategoryScore, 0, c.vocab.CategoryCount())
	estimates := make([]float64, len(words))

	for _, name := range c.vocab.Categories() {
		cat, _ := c.vocab.Category(name)
		for i, word := range words {
			estimates[i] = c.vocab.estimate(c.estimator, word, cat)
		}
		scores = append(scores, CategoryScore{
			Category: name,
			Score:    c.score(c.vocab.Prior(name), estimates),
		})
	}

	return scores
}

// Classify returns the highest scoring category. Ties go to the category
// seen first in training. An empty vocabulary yields an empty Classification.
func (c *Classifier) Classify(words []string) Classification {
	var result Classification

	for i, s := range c.Score(words) {
		if i == 0 || s.Score > result.Score {
			result = Classification(s)
		}
	}

	return result
}
