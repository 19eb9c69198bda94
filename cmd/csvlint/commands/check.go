package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"csvlint/config"
	"csvlint/errors"
	"csvlint/logger"
	"csvlint/report"
	"csvlint/rfc4180"
	"csvlint/watch"
)

var (
	checkDelimiter  string
	checkLazyQuotes bool
	checkRFC4180    bool
	checkJSON       bool
	checkWatch      bool
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a CSV file against RFC 4180",
	Long: `Validate the structure of a CSV file against RFC 4180.

Every structural deviation is reported, not just the first: field counts
are checked against the header, quoting is verified, and in strict mode
every line terminator must be CRLF.

Examples:
  csvlint check data.csv                 # comma-delimited validation
  csvlint check -d '\t' data.tsv         # tab-delimited
  csvlint check -l ragged.csv            # tolerate malformed quoting
  csvlint check --rfc4180 export.csv     # full strict compliance
  csvlint check --json data.csv          # machine-readable report
  csvlint check --watch data.csv         # re-validate on every change

Exit status: 0 when the file is valid, 1 when the scan halted or the file
could not be read, 2 when errors were found but the scan completed.`,

	Args: cobra.ExactArgs(1),
	RunE: runCheckCommand,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkDelimiter, "delimiter", "d", ",", `Field delimiter (e.g. ',' '\t' '|' ':' ';')`)
	CheckCmd.Flags().BoolVarP(&checkLazyQuotes, "lazyquotes", "l", false, "Try to parse improperly escaped quotes")
	CheckCmd.Flags().BoolVar(&checkRFC4180, "rfc4180", false, "Strict RFC 4180 compliance mode (implies comma delimiter and CRLF line endings)")
	CheckCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "Output the report as JSON")
	CheckCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Stay resident and re-validate when the file changes")
}

// ExitError carries the process exit status chosen from the validation
// outcome; main unwraps it instead of printing.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func runCheckCommand(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		logger.Warnw("Failed to load configuration, using defaults",
			"error", err)
		cfg = config.Default()
	}

	// Flags win over config; config supplies the value when the flag was
	// left untouched.
	delimiter := cfg.Check.Delimiter
	if cmd.Flags().Changed("delimiter") {
		delimiter = checkDelimiter
	}
	lazyQuotes := cfg.Check.LazyQuotes
	if cmd.Flags().Changed("lazyquotes") {
		lazyQuotes = checkLazyQuotes
	}
	strictMode := cfg.Check.RFC4180
	if cmd.Flags().Changed("rfc4180") {
		strictMode = checkRFC4180
	}
	jsonOutput := cfg.Output.JSON
	if cmd.Flags().Changed("json") {
		jsonOutput = checkJSON
	}

	var delim byte
	if strictMode {
		// Strict compliance pins the dialect; warn when flags conflict.
		if delimiter != "," {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --rfc4180 mode requires comma delimiter, ignoring --delimiter option")
		}
		if lazyQuotes {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --rfc4180 mode disables lazy quotes, ignoring --lazyquotes option")
		}
		delim, lazyQuotes = ',', false
	} else {
		delim, err = ParseDelimiter(delimiter)
		if err != nil {
			return err
		}
		if delimiter != "," || lazyQuotes {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: not using defaults, may not validate CSV to RFC 4180")
		}
	}

	vcfg := rfc4180.Config{
		Delimiter:        delim,
		LazyQuotes:       lazyQuotes,
		StrictCompliance: strictMode,
	}

	if strictMode && !jsonOutput {
		report.RenderStrictModeBanner()
	}

	result, err := validateFile(path, vcfg)
	if err != nil {
		return err
	}
	render(path, result, jsonOutput, strictMode)

	if checkWatch {
		return runWatch(path, vcfg, jsonOutput, strictMode)
	}

	if code := exitCodeFor(result); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// validateFile opens the file and runs one validation pass over it.
func validateFile(path string, vcfg rfc4180.Config) (*rfc4180.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrFileNotFound, "file %q", path)
		}
		return nil, errors.Wrapf(err, "error opening file %q", path)
	}
	defer f.Close()

	result, err := rfc4180.Validate(f, vcfg)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Scan complete",
		"file", path,
		"errors", len(result.Errors),
		"halted", result.Halted)
	return result, nil
}

func render(path string, result *rfc4180.Result, jsonOutput, strictMode bool) {
	if jsonOutput {
		if err := report.OutputJSON(report.New(path, result)); err != nil {
			logger.Errorw("Failed to render JSON report",
				"file", path,
				"error", err)
		}
		return
	}
	report.Render(result, strictMode)
}

// runWatch re-validates the file on every settled change until the
// process is interrupted. Watch mode always exits 0; the per-run exit
// statuses apply to one-shot runs only.
func runWatch(path string, vcfg rfc4180.Config, jsonOutput, strictMode bool) error {
	fw, err := watch.New(path)
	if err != nil {
		return errors.Wrapf(err, "failed to watch %q", path)
	}
	defer fw.Stop()

	fw.OnChange(func(p string) error {
		result, err := validateFile(p, vcfg)
		if err != nil {
			return err
		}
		render(p, result, jsonOutput, strictMode)
		return nil
	})
	fw.Start()

	logger.Infof("Watching %s for changes, interrupt to stop", path)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// exitCodeFor maps a validation outcome onto the process exit status:
// 0 valid, 1 halted, 2 errors found but scan completed.
func exitCodeFor(result *rfc4180.Result) int {
	switch {
	case result.Halted:
		return 1
	case len(result.Errors) > 0:
		return 2
	default:
		return 0
	}
}

// ParseDelimiter resolves a delimiter argument to exactly one byte. Tab
// may be escaped as the two characters `\t`; anything longer than one
// character is rejected.
func ParseDelimiter(s string) (byte, error) {
	if s == `\t` {
		return '\t', nil
	}
	if len(s) == 1 {
		return s[0], nil
	}
	return 0, errors.NewBadDelimiterError(s)
}
