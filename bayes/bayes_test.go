package bayes

import (
	"math"
	"testing"
)

func TestClassifyRawPicksCategoryWithoutZeroes(t *testing.T) {
	vocab := trainLines(t, "sports ball game win", "politics vote law win")
	classifier := NewClassifier(vocab, Raw)

	scores := classifier.Score(words("ball win"))
	if len(scores) != 2 {
		t.Fatalf("expected a score per category, got %d", len(scores))
	}
	if scores[0].Category != "sports" || scores[0].Score <= 0 {
		t.Fatalf("expected non-zero sports score, got %+v", scores[0])
	}
	if scores[1].Category != "politics" || scores[1].Score != 0 {
		t.Fatalf("expected politics to collapse to zero, got %+v", scores[1])
	}
	if want := 0.5 * (1.0 / 3.0) * (1.0 / 3.0); !almostEqual(scores[0].Score, want) {
		t.Fatalf("unexpected sports score: got %f, want %f", scores[0].Score, want)
	}

	classification := classifier.Classify(words("ball win"))
	if classification.Category != "sports" {
		t.Fatalf("unexpected classification category: got %q, want %q", classification.Category, "sports")
	}
}

func TestClassifySmoothedUsesMixedScale(t *testing.T) {
	vocab := trainLines(t, "sports ball game win", "politics vote law win")
	classifier := NewClassifier(vocab, MEstimate)

	scores := classifier.Score(words("ball"))
	want := 0.5 + math.Log(2.0/8.0)
	if !almostEqual(scores[0].Score, want) {
		t.Fatalf("unexpected mixed-scale sports score: got %f, want %f", scores[0].Score, want)
	}

	if got := classifier.Classify(words("vote law")).Category; got != "politics" {
		t.Fatalf("unexpected classification: got %q, want politics", got)
	}
}

func TestClassifyTFIDF(t *testing.T) {
	vocab := trainLines(t,
		"sports ball game win team",
		"politics vote law win senate",
		"weather rain sun wind",
	)
	classifier := NewClassifier(vocab, TFIDF)

	if got := classifier.Classify(words("rain wind cold")).Category; got != "weather" {
		t.Fatalf("unexpected classification: got %q, want weather", got)
	}
	if got := classifier.Classify(words("team ball")).Category; got != "sports" {
		t.Fatalf("unexpected classification: got %q, want sports", got)
	}
}

func TestClassifyTieBreaksByTrainingOrder(t *testing.T) {
	for _, tt := range []struct {
		first, second string
	}{
		{first: "alpha", second: "zeta"},
		{first: "zeta", second: "alpha"},
	} {
		vocab := trainLines(t, tt.first+" shared", tt.second+" shared")

		for _, e := range []Estimator{Raw, MEstimate, TFIDF} {
			got := NewClassifier(vocab, e).Classify(words("shared"))
			if got.Category != tt.first {
				t.Fatalf("%s: expected tie to resolve to %q, got %q", e, tt.first, got.Category)
			}
		}
	}
}

func TestClassifyUnknownWordsOnly(t *testing.T) {
	vocab := trainLines(t, "big a b c", "small d")

	got := NewClassifier(vocab, Raw).Classify(words("zzz yyy"))
	if got.Category != "big" {
		t.Fatalf("expected all-zero raw scores to resolve to the first category, got %q", got.Category)
	}

	got = NewClassifier(vocab, MEstimate).Classify(words("zzz yyy"))
	if got.Category == "" {
		t.Fatal("expected a category for unknown words")
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	vocab := trainLines(t,
		"a x y z",
		"b y z q",
		"c q q x",
	)

	for _, e := range []Estimator{Raw, MEstimate, TFIDF} {
		classifier := NewClassifier(vocab, e)
		first := classifier.Classify(words("x q z"))
		for i := 0; i < 10; i++ {
			if again := classifier.Classify(words("x q z")); again != first {
				t.Fatalf("%s: classification changed between runs: %+v vs %+v", e, first, again)
			}
		}
	}
}

func TestClassifyEmptyVocabulary(t *testing.T) {
	classification := NewClassifier(Train(nil), MEstimate).Classify(words("anything"))
	if classification.Category != "" {
		t.Fatalf("expected empty category for empty vocabulary, got %q", classification.Category)
	}
}

func TestWithScoreFuncOverridesDefault(t *testing.T) {
	vocab := trainLines(t, "big a b c d", "small e")

	inverse := func(prior float64, _ []float64) float64 { return -prior }
	classifier := NewClassifier(vocab, MEstimate, WithScoreFunc(inverse))
	if got := classifier.Classify(words("a")).Category; got != "small" {
		t.Fatalf("expected custom score func to be used, got %q", got)
	}

	classifier = NewClassifier(vocab, MEstimate, WithScoreFunc(nil))
	if got := classifier.Classify(words("a")).Category; got != "big" {
		t.Fatalf("expected nil score func to keep the default, got %q", got)
	}
}

func TestClassifierAccessors(t *testing.T) {
	vocab := trainLines(t, "a x")
	classifier := NewClassifier(vocab, TFIDF)

	if classifier.Estimator() != TFIDF {
		t.Fatalf("unexpected estimator: %s", classifier.Estimator())
	}
	if classifier.Vocabulary() != vocab {
		t.Fatal("expected classifier to share the trained vocabulary")
	}
}
