package bayes

import (
	"github.com/hickeroar/nbclassify/corpus"
)

// Outcome counts test documents of one true category and how many of them
// were classified correctly.
type Outcome struct {
	Category    string
	Occurrences int
	Correct     int
}

// Accuracy returns the percentage of correct classifications. ok is false
// when the category had no test documents, in which case the accuracy is 0.
func (o Outcome) Accuracy() (pct float64, ok bool) {
	if o.Occurrences == 0 {
		return 0, false
	}
	return 100 * float64(o.Correct) / float64(o.Occurrences), true
}

// Misclassification records a test document whose prediction was wrong.
type Misclassification struct {
	Document  int // 1-based position in the test set
	Actual    string
	Predicted string
	Scores    []CategoryScore
}

// Evaluation is the result of classifying a labeled test set.
type Evaluation struct {
	Estimator Estimator
	Outcomes  []Outcome
	Documents int
	Correct   int

	index map[string]int
}

// Observer is told about every misclassified document during Evaluate.
type Observer func(Misclassification)

// Evaluate classifies every record and tallies outcomes per true category.
// Categories appear in training order; labels never seen in training are
// appended in the order they occur.
func (c *Classifier) Evaluate(records []corpus.Record, observers ...Observer) *Evaluation {
	eval := &Evaluation{
		Estimator: c.estimator,
		index:     make(map[string]int),
	}
	for _, name := range c.vocab.Categories() {
		eval.outcome(name)
	}

	for i, rec := range records {
		out := eval.outcome(rec.Label)
		out.Occurrences++
		eval.Documents++

		predicted := c.Classify(rec.Tokens)
		if predicted.Category == rec.Label {
			out.Correct++
			eval.Correct++
			continue
		}

		if len(observers) == 0 {
			continue
		}
		miss := Misclassification{
			Document:  i + 1,
			Actual:    rec.Label,
			Predicted: predicted.Category,
			Scores:    c.Score(rec.Tokens),
		}
		for _, observe := range observers {
			observe(miss)
		}
	}

	return eval
}

func (e *Evaluation) outcome(name string) *Outcome {
	if i, ok := e.index[name]; ok {
		return &e.Outcomes[i]
	}
	e.index[name] = len(e.Outcomes)
	e.Outcomes = append(e.Outcomes, Outcome{Category: name})
	return &e.Outcomes[len(e.Outcomes)-1]
}

// Outcome returns the outcome for a category.
func (e *Evaluation) Outcome(name string) (Outcome, bool) {
	i, ok := e.index[name]
	if !ok {
		return Outcome{}, false
	}
	return e.Outcomes[i], true
}

// AverageAccuracy is the mean per-category accuracy over the categories that
// had test documents. It is 0 when none did.
func (e *Evaluation) AverageAccuracy() float64 {
	sum, n := 0.0, 0
	for _, out := range e.Outcomes {
		if pct, ok := out.Accuracy(); ok {
			sum += pct
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// OverallAccuracy is the percentage of all test documents classified
// correctly.
func (e *Evaluation) OverallAccuracy() float64 {
	if e.Documents == 0 {
		return 0
	}
	return 100 * float64(e.Correct) / float64(e.Documents)
}
