// Package report summarizes a training and evaluation run and renders it as
// a text table, JSON or YAML.
package report

import (
	"time"

	"github.com/hickeroar/nbclassify/bayes"
)

// Report is the summary of one run.
type Report struct {
	Training Training `json:"training" yaml:"training"`
	Test     Test     `json:"test" yaml:"test"`
	RunTime  Duration `json:"run_time" yaml:"run_time"`
}

// Training summarizes the trained vocabulary.
type Training struct {
	TotalWords     int                `json:"total_words" yaml:"total_words"`
	VocabularySize int                `json:"vocabulary_size" yaml:"vocabulary_size"`
	Categories     []TrainingCategory `json:"categories" yaml:"categories"`
}

// TrainingCategory is one row of the training table.
type TrainingCategory struct {
	Name     string  `json:"name" yaml:"name"`
	Words    int     `json:"words" yaml:"words"`
	Distinct int     `json:"distinct_words" yaml:"distinct_words"`
	Prior    float64 `json:"prior" yaml:"prior"`
}

// Test summarizes an evaluation.
type Test struct {
	Estimator       bayes.Estimator `json:"estimator" yaml:"estimator"`
	Scoring         string          `json:"scoring" yaml:"scoring"`
	Documents       int             `json:"documents" yaml:"documents"`
	Categories      []TestCategory  `json:"categories" yaml:"categories"`
	AverageAccuracy float64         `json:"average_accuracy" yaml:"average_accuracy"`
	OverallAccuracy float64         `json:"overall_accuracy" yaml:"overall_accuracy"`
}

// TestCategory is one row of the test table. Accuracy is nil for a category
// without test documents.
type TestCategory struct {
	Name        string   `json:"name" yaml:"name"`
	Correct     int      `json:"correct" yaml:"correct"`
	Occurrences int      `json:"occurrences" yaml:"occurrences"`
	Accuracy    *float64 `json:"accuracy" yaml:"accuracy"`
}

// Duration encodes as seconds.
type Duration time.Duration

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 {
	return time.Duration(d).Seconds()
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(formatFloat(d.Seconds())), nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Seconds(), nil
}

// New builds a Report from a trained vocabulary and its evaluation.
func New(vocab *bayes.Vocabulary, eval *bayes.Evaluation, scoring string, runTime time.Duration) *Report {
	r := &Report{
		Training: Training{
			TotalWords:     vocab.TotalWords(),
			VocabularySize: vocab.Size(),
		},
		Test: Test{
			Estimator:       eval.Estimator,
			Scoring:         scoring,
			Documents:       eval.Documents,
			AverageAccuracy: eval.AverageAccuracy(),
			OverallAccuracy: eval.OverallAccuracy(),
		},
		RunTime: Duration(runTime),
	}

	for _, name := range vocab.Categories() {
		cat, _ := vocab.Category(name)
		r.Training.Categories = append(r.Training.Categories, TrainingCategory{
			Name:     name,
			Words:    cat.GetTally(),
			Distinct: cat.Len(),
			Prior:    vocab.Prior(name),
		})
	}

	for _, out := range eval.Outcomes {
		row := TestCategory{
			Name:        out.Category,
			Correct:     out.Correct,
			Occurrences: out.Occurrences,
		}
		if pct, ok := out.Accuracy(); ok {
			row.Accuracy = &pct
		}
		r.Test.Categories = append(r.Test.Categories, row)
	}

	return r
}
