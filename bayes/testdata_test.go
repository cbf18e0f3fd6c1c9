package bayes

import (
	"strings"
	"testing"

	"github.com/hickeroar/nbclassify/corpus"
)

// records parses corpus lines for tests.
func records(t testing.TB, lines ...string) []corpus.Record {
	t.Helper()
	recs, err := corpus.Read(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("parse records: %v", err)
	}
	return recs
}

func trainLines(t testing.TB, lines ...string) *Vocabulary {
	t.Helper()
	return Train(records(t, lines...))
}

func words(s string) []string {
	return strings.Fields(s)
}

func almostEqual(a, b float64) bool {
	const eps = 1e-12
	d := a - b
	return d < eps && d > -eps
}
