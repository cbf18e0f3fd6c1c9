package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown report format")

// Options controls rendering.
type Options struct {
	Format  string
	NoColor bool
}

// Render writes the report in the requested format.
func (r *Report) Render(w io.Writer, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return r.renderText(w, opts.NoColor)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, opts.Format)
	}
}

func (r *Report) renderText(w io.Writer, noColor bool) error {
	heading := color.New(color.Bold)
	muted := color.New(color.FgHiBlack)
	summary := color.New(color.FgGreen, color.Bold)
	if noColor {
		heading.DisableColor()
		muted.DisableColor()
		summary.DisableColor()
	}

	p := message.NewPrinter(language.English)
	tw := &errWriter{w: w}

	tw.printf("%s\n", heading.Sprint("############### TRAIN OUTPUT #########################"))
	tw.printf("%s", p.Sprintf("Total # Words: %d\n", r.Training.TotalWords))
	tw.printf("%s", p.Sprintf("Vocab Size: %d\n", r.Training.VocabularySize))
	tw.printf("%-24s|%8s|%8s\n", "Category", "NWords", "P(cat)")
	for _, cat := range r.Training.Categories {
		tw.printf("%s", p.Sprintf("%-24s|%8d|%8.3f\n", cat.Name, cat.Words, cat.Prior))
	}

	tw.printf("\n%s\n", heading.Sprint("############### TEST OUTPUT #########################"))
	tw.printf("Probability Type: %s (scoring: %s)\n", r.Test.Estimator, r.Test.Scoring)
	tw.printf("%-24s|%8s|%6s|%8s\n", "Category", "NCorrect", "N", "%Correct")
	for _, cat := range r.Test.Categories {
		row := p.Sprintf("%-24s|%8d|%6d|", cat.Name, cat.Correct, cat.Occurrences)
		if cat.Accuracy == nil {
			tw.printf("%s%s\n", row, muted.Sprintf("%8s", "n/a"))
			continue
		}
		tw.printf("%s%8.3f\n", row, *cat.Accuracy)
	}
	tw.printf("%s\n", summary.Sprintf("Average Accuracy: %.3f", r.Test.AverageAccuracy))
	tw.printf("%s", p.Sprintf("Overall Accuracy: %.3f (%d documents)\n", r.Test.OverallAccuracy, r.Test.Documents))

	tw.printf("\nRUN TIME: %.6fs\n", r.RunTime.Seconds())
	return tw.err
}

// errWriter keeps the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
