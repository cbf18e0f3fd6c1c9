package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		label  string
		tokens []string
	}{
		{name: "label and words", line: "sports ball game win", ok: true, label: "sports", tokens: []string{"ball", "game", "win"}},
		{name: "extra whitespace", line: "  politics\tvote   law \r", ok: true, label: "politics", tokens: []string{"vote", "law"}},
		{name: "label only", line: "sports", ok: true, label: "sports", tokens: []string{}},
		{name: "case kept", line: "News Ball ball", ok: true, label: "News", tokens: []string{"Ball", "ball"}},
		{name: "punctuation kept", line: "x hello, world!", ok: true, label: "x", tokens: []string{"hello,", "world!"}},
		{name: "blank", line: "   ", ok: false},
		{name: "empty", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("unexpected ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if rec.Label != tt.label {
				t.Fatalf("unexpected label: got %q, want %q", rec.Label, tt.label)
			}
			if strings.Join(rec.Tokens, "|") != strings.Join(tt.tokens, "|") {
				t.Fatalf("unexpected tokens: got %q, want %q", rec.Tokens, tt.tokens)
			}
		})
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	input := "sports ball game win\n\npolitics vote law win\n   \nsports\n"

	records, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("unexpected record count: got %d, want 3", len(records))
	}
	if got := WordCount(records); got != 6 {
		t.Fatalf("unexpected word count: got %d, want 6", got)
	}
	if len(records[2].Tokens) != 0 {
		t.Fatalf("expected label-only record to carry no tokens, got %q", records[2].Tokens)
	}
}

func TestReadHandlesLongLines(t *testing.T) {
	line := "long " + strings.Repeat("word ", 200000)

	records, err := Read(strings.NewReader(line))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 1 || len(records[0].Tokens) != 200000 {
		t.Fatalf("unexpected long line parse: %d records", len(records))
	}
}

func TestReadRejectsNilReader(t *testing.T) {
	if _, err := Read(nil); err == nil {
		t.Fatal("expected error for nil reader")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.txt")
	if err := os.WriteFile(path, []byte("a x y\nb z\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("unexpected record count: got %d, want 2", len(records))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRequireRecords(t *testing.T) {
	if err := RequireRecords("train.txt", nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
	if err := RequireRecords("train.txt", []Record{{Label: "a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
