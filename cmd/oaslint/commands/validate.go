package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/parser"
	"github.com/erraggy/oaslint/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// ErrValidationFailed is returned when the document has at least one issue.
// The CLI exits with status 1 without printing it.
var ErrValidationFailed = errors.New("validation failed")

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Strict                  bool
	AllowFutureVersions     bool
	RequireRateLimitHeaders bool
	Quiet                   bool
	Format                  string
	Output                  string
	NoCache                 bool
	CacheSize               int
	Metrics                 bool
	Debug                   bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "detect ambiguous path templates and duplicate parameters")
	fs.BoolVar(&flags.AllowFutureVersions, "allow-future-versions", false, "accept openapi versions newer than 3.1")
	fs.BoolVar(&flags.RequireRateLimitHeaders, "require-rate-limit-headers", false, "require X-RateLimit-* headers on 2XX responses")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output issues, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output issues, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the report to a file instead of stdout")
	fs.BoolVar(&flags.NoCache, "no-cache", false, "disable result, reference and schema caching")
	fs.IntVar(&flags.CacheSize, "cache-size", cache.DefaultMaxSize, "entries kept per cache; 0 or less disables caching")
	fs.BoolVar(&flags.Metrics, "metrics", false, "print cache metrics in Prometheus text format to stderr")
	fs.BoolVar(&flags.Debug, "debug", false, "log debug output to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate an OpenAPI 3.x document (JSON or YAML) from a file or stdin.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  One line per issue: line:col: path: message [CODE]\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint validate openapi.yaml\n")
		Writef(fs.Output(), "  oaslint validate --strict api-spec.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oaslint validate -q -\n")
		Writef(fs.Output(), "  oaslint validate --format json -o report.json openapi.yaml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No issues\n")
		Writef(fs.Output(), "  1    Issues found, or the document could not be read or parsed\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	return runValidate(args, os.Stdin, os.Stdout, os.Stderr)
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupValidateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	text, err := ReadInput(specPath, stdin)
	if err != nil {
		return err
	}

	var logger parser.Logger = parser.NopLogger{}
	if flags.Debug {
		logger = parser.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	startTime := time.Now()
	result, err := validator.ValidateDocumentText(text,
		validator.WithStrict(flags.Strict),
		validator.WithAllowFutureVersions(flags.AllowFutureVersions),
		validator.WithRequireRateLimitHeaders(flags.RequireRateLimitHeaders),
		validator.WithCache(!flags.NoCache, flags.CacheSize),
		validator.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	report, err := renderReport(result, flags.Format)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := WriteOutputFile(flags.Output, report); err != nil {
			return err
		}
	} else {
		Writef(stdout, "%s", report)
	}

	if !flags.Quiet {
		Writef(stderr, "oaslint version: %s\n", oaslint.Version())
		Writef(stderr, "Specification: %s\n", FormatSpecPath(specPath))
		Writef(stderr, "Resolved References: %d\n", len(result.ResolvedRefs))
		Writef(stderr, "Total Time: %v\n", totalTime)
		if result.Valid {
			Writef(stderr, "✓ Validation passed\n")
		} else {
			Writef(stderr, "✗ Validation failed: %d issue(s)\n", len(result.Issues))
		}
	}

	if flags.Metrics {
		if err := writeMetrics(stderr, cache.Default()); err != nil {
			return err
		}
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// renderReport formats result for output.
func renderReport(result *validator.Result, format string) ([]byte, error) {
	if format == FormatJSON || format == FormatYAML {
		data, err := MarshalStructured(result, format)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	for _, issue := range result.Issues {
		Writef(&buf, "%s\n", FormatIssue(issue))
	}
	return buf.Bytes(), nil
}

// FormatIssue renders an issue as "line:col: path: message [CODE]", dropping
// the position when the issue has no source range.
func FormatIssue(issue validator.Issue) string {
	if issue.Range == nil {
		return issue.String()
	}
	path := issue.PathString()
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("%s: %s: %s [%s]", issue.Location(), path, issue.Message, issue.Code)
}

// writeMetrics writes the cache counters of set in the Prometheus text format.
func writeMetrics(w io.Writer, set *cache.Set) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(cache.NewCollector(set)); err != nil {
		return fmt.Errorf("registering cache metrics: %w", err)
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering cache metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing cache metrics: %w", err)
		}
	}
	return nil
}
