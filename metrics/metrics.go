// Package metrics describes a classification run with Prometheus collectors
// and writes them as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hickeroar/nbclassify/bayes"
)

const namespace = "nbclassify"

// Recorder holds the collectors for one run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	VocabularySize   prometheus.Gauge
	TrainingWords    prometheus.Gauge
	CategoryPrior    *prometheus.GaugeVec
	CategoryAccuracy *prometheus.GaugeVec
	AverageAccuracy  *prometheus.GaugeVec
	DocumentsTotal   *prometheus.CounterVec
	PhaseDuration    *prometheus.GaugeVec
}

// NewRecorder creates and registers all collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "vocabulary_size",
				Help:      "Distinct words seen in training.",
			},
		),
		TrainingWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "training_words",
				Help:      "Words across all training documents.",
			},
		),
		CategoryPrior: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "category_prior",
				Help:      "Share of training words per category.",
			},
			[]string{"category"},
		),
		CategoryAccuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "category_accuracy_percent",
				Help:      "Percentage of test documents classified correctly, by true category.",
			},
			[]string{"estimator", "category"},
		),
		AverageAccuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "average_accuracy_percent",
				Help:      "Mean per-category accuracy over categories present in the test set.",
			},
			[]string{"estimator"},
		),
		DocumentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_classified_total",
				Help:      "Test documents classified, by result (correct, incorrect).",
			},
			[]string{"estimator", "result"},
		),
		PhaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Wall time per run phase (train, test, total).",
			},
			[]string{"phase"},
		),
	}

	r.registry.MustRegister(
		r.VocabularySize,
		r.TrainingWords,
		r.CategoryPrior,
		r.CategoryAccuracy,
		r.AverageAccuracy,
		r.DocumentsTotal,
		r.PhaseDuration,
	)

	return r
}

// ObserveTraining records vocabulary statistics.
func (r *Recorder) ObserveTraining(vocab *bayes.Vocabulary) {
	r.VocabularySize.Set(float64(vocab.Size()))
	r.TrainingWords.Set(float64(vocab.TotalWords()))
	for _, name := range vocab.Categories() {
		r.CategoryPrior.WithLabelValues(name).Set(vocab.Prior(name))
	}
}

// ObserveEvaluation records accuracy figures. Categories without test
// documents get no accuracy sample.
func (r *Recorder) ObserveEvaluation(eval *bayes.Evaluation) {
	estimator := eval.Estimator.String()
	for _, out := range eval.Outcomes {
		if pct, ok := out.Accuracy(); ok {
			r.CategoryAccuracy.WithLabelValues(estimator, out.Category).Set(pct)
		}
	}
	r.AverageAccuracy.WithLabelValues(estimator).Set(eval.AverageAccuracy())
	r.DocumentsTotal.WithLabelValues(estimator, "correct").Add(float64(eval.Correct))
	r.DocumentsTotal.WithLabelValues(estimator, "incorrect").Add(float64(eval.Documents - eval.Correct))
}

// ObservePhase records how long a phase took.
func (r *Recorder) ObservePhase(phase string, d time.Duration) {
	r.PhaseDuration.WithLabelValues(phase).Set(d.Seconds())
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
