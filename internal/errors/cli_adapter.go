package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// exitCodes maps error categories to process exit codes. Unclassified errors exit 1.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryConfig:     7,
	CategoryVCS:        8,
	CategoryInternal:   10,
	CategoryRender:     11,
	CategoryFileSystem: 11,
	CategoryRuntime:    12,
}

// ExitCodeFor returns the process exit code for err; 0 for nil.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	se, ok := As(err)
	if !ok {
		return 1
	}
	if code, known := exitCodes[se.Category]; known {
		return code
	}
	return 1
}

// CLIErrorAdapter presents command errors on stderr and picks the exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr, exit: os.Exit}
}

// ExitCodeFor is the package-level ExitCodeFor.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int { return ExitCodeFor(err) }

// FormatError renders err as the single line shown to the user.
// Quiet mode shows only the message for problems the user can fix in the settings file.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	var verrs ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 && !a.verbose {
		return fmt.Sprintf("validation: %d problem(s) found: %s", len(verrs), verrs[0].Message)
	}
	se, ok := As(err)
	switch {
	case !ok:
		return fmt.Sprintf("Error: %v", err)
	case a.verbose:
		return se.Error()
	case se.Category == CategoryConfig || se.Category == CategoryValidation:
		return se.Message
	default:
		return fmt.Sprintf("%s: %s", se.Category, se.Message)
	}
}

// HandleError reports err and terminates the process with its exit code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(ExitCodeFor(err))
}

// shouldLog keeps quiet runs terse: only fatal or internal problems reach the log.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	se, ok := As(err)
	if !ok {
		return true
	}
	return se.Severity == SeverityFatal || se.Category == CategoryInternal || se.Category == CategoryRuntime
}

func (a *CLIErrorAdapter) logError(err error) {
	var verrs ValidationErrors
	if stderrors.As(err, &verrs) {
		for _, problem := range verrs {
			a.logSettingsError(problem)
		}
		return
	}
	if se, ok := As(err); ok {
		a.logSettingsError(se)
		return
	}
	a.logger.Error("Unclassified error", slog.String("error", err.Error()))
}

func (a *CLIErrorAdapter) logSettingsError(se *SettingsError) {
	attrs := make([]slog.Attr, 0, len(se.Context)+2)
	attrs = append(attrs, slog.String("category", string(se.Category)))
	for k, v := range se.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if se.Cause != nil {
		attrs = append(attrs, slog.String("cause", se.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), levelFor(se.Severity), se.Message, attrs...)
}

func levelFor(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
