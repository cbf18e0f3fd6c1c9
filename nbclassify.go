package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hickeroar/nbclassify/bayes"
	"github.com/hickeroar/nbclassify/config"
	"github.com/hickeroar/nbclassify/corpus"
	"github.com/hickeroar/nbclassify/metrics"
	"github.com/hickeroar/nbclassify/report"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

var usageLine = fmt.Sprintf("Usage: nbclassify [flags] TRAIN_FILE TEST_FILE {%s}", strings.Join(bayes.EstimatorNames(), "|"))

var (
	osExit  = os.Exit
	runMain = func(args []string) error {
		cmd := newRootCommand(os.Stdout, os.Stderr)
		cmd.SetArgs(args)
		return cmd.ExecuteContext(context.Background())
	}
)

// classifierApp carries the state shared between the command's hooks.
type classifierApp struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	stderr  io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	app := &classifierApp{
		v:      config.New(),
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "nbclassify [flags] TRAIN_FILE TEST_FILE {raw|mest|tfidf}",
		Short: "Train a naive Bayes text classifier and report its test accuracy",
		Long: `nbclassify learns per-category word statistics from TRAIN_FILE, classifies
every document of TEST_FILE and prints per-category accuracy.

Each line of both files is one document: the first whitespace-separated field
is its category and the remaining fields are its words.

Estimators:
  raw    relative word frequency
  mest   add-one smoothed frequency
  tfidf  term frequency weighted by inverse category frequency`,
		Args:              validateArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE:              app.run,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&app.cfgFile, "config", "", "config file (YAML)")
	config.MustRegisterFlags(app.v, cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	return cmd
}

// validateArgs runs before any file is touched.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, len(args))
	}
	if _, err := bayes.ParseEstimator(args[2]); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func (a *classifierApp) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	var out io.Writer = a.stderr
	if cfg.Output == report.FormatText {
		out = zerolog.ConsoleWriter{Out: a.stderr, NoColor: cfg.NoColor, TimeFormat: time.TimeOnly}
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	return nil
}

func (a *classifierApp) run(cmd *cobra.Command, args []string) error {
	log := zerolog.Ctx(cmd.Context())
	trainPath, testPath := args[0], args[1]
	estimator, _ := bayes.ParseEstimator(args[2])

	recorder := metrics.NewRecorder()
	start := time.Now()

	trainRecords, err := corpus.ReadFile(trainPath)
	if err != nil {
		return err
	}
	if err := corpus.RequireRecords(trainPath, trainRecords); err != nil {
		return err
	}
	vocab := bayes.Train(trainRecords)
	recorder.ObservePhase("train", time.Since(start))
	recorder.ObserveTraining(vocab)
	log.Info().
		Str("file", trainPath).
		Int("documents", len(trainRecords)).
		Int("categories", vocab.CategoryCount()).
		Int("vocabulary", vocab.Size()).
		Int("words", vocab.TotalWords()).
		Msg("trained vocabulary")

	testStart := time.Now()
	testRecords, err := corpus.ReadFile(testPath)
	if err != nil {
		return err
	}
	classifier := bayes.NewClassifier(vocab, estimator, classifierOptions(a.cfg, estimator)...)
	eval := classifier.Evaluate(testRecords, misclassificationLogger(log)...)
	recorder.ObservePhase("test", time.Since(testStart))
	recorder.ObserveEvaluation(eval)
	log.Info().
		Str("file", testPath).
		Stringer("estimator", estimator).
		Int("documents", eval.Documents).
		Int("words", corpus.WordCount(testRecords)).
		Float64("average_accuracy", eval.AverageAccuracy()).
		Msg("evaluated test set")

	runTime := time.Since(start)
	recorder.ObservePhase("total", runTime)

	if a.cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.cfg.MetricsFile); err != nil {
			return err
		}
		log.Debug().Str("file", a.cfg.MetricsFile).Msg("wrote metrics")
	}

	r := report.New(vocab, eval, a.cfg.Scoring, runTime)
	return r.Render(cmd.OutOrStdout(), report.Options{Format: a.cfg.Output, NoColor: a.cfg.NoColor})
}

func classifierOptions(cfg *config.Config, e bayes.Estimator) []bayes.Option {
	if cfg.Scoring == config.ScoringLog && e != bayes.Raw {
		return []bayes.Option{bayes.WithScoreFunc(bayes.LogScore)}
	}
	return nil
}

// misclassificationLogger returns an observer only when debug logging is on.
func misclassificationLogger(log *zerolog.Logger) []bayes.Observer {
	if log.GetLevel() > zerolog.DebugLevel {
		return nil
	}
	return []bayes.Observer{func(m bayes.Misclassification) {
		scores := zerolog.Dict()
		for _, s := range m.Scores {
			scores.Float64(s.Category, s.Score)
		}
		log.Debug().
			Int("document", m.Document).
			Str("actual", m.Actual).
			Str("predicted", m.Predicted).
			Dict("scores", scores).
			Msg("misclassified")
	}}
}

func exitCode(err error) int {
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return exitFailure
}

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "nbclassify: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageLine)
		}
		osExit(exitCode(err))
	}
}
