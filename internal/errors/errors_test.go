package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestSettingsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SettingsError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestSettingsError_WithContext(t *testing.T) {
	err := New(CategoryValidation, SeverityWarning, "bad id").
		WithContext("id", "Root_1").
		WithContext("project", "Root")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["id"] != "Root_1" {
		t.Errorf("Context[id] = %v, want Root_1", err.Context["id"])
	}
	if err.Context["project"] != "Root" {
		t.Errorf("Context[project] = %v, want Root", err.Context["project"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	vcsErr := New(CategoryVCS, SeverityWarning, "vcs error")
	wrapped := fmt.Errorf("outer: %w", configErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		want     bool
	}{
		{"config matches", configErr, CategoryConfig, true},
		{"vcs does not match config", vcsErr, CategoryConfig, false},
		{"wrapped config matches", wrapped, CategoryConfig, true},
		{"standard error never matches", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsCategory(test.err, test.category); got != test.want {
				t.Errorf("IsCategory() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(New(CategoryRender, SeverityError, "x")); got != CategoryRender {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryRender)
	}
	if got := GetCategory(stdErrors.New("plain")); got != CategoryInternal {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryInternal)
	}
}

func TestValidationErrors(t *testing.T) {
	var none ValidationErrors
	if none.OrNil() != nil {
		t.Fatal("empty ValidationErrors should collapse to nil")
	}

	dup := DuplicateID("Root_Compile")
	verrs := ValidationErrors{InvalidID("1x", "must start with a letter"), dup}
	err := verrs.OrNil()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !stdErrors.Is(err, dup) {
		t.Error("errors.Is should find the duplicate id problem")
	}
	if !IsCategory(err, CategoryValidation) {
		t.Error("aggregated error should classify as validation")
	}
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"validation", ValidationFailed("project.id", "required"), 2},
		{"config", ConfigNotFound("settings.yaml"), 7},
		{"vcs", VCSDetectError(".", fmt.Errorf("no repo")), 8},
		{"render", RenderError("yaml", fmt.Errorf("boom")), 11},
		{"internal", InternalError("oops", nil), 10},
		{"aggregated validation", ValidationErrors{DuplicateID("A")}, 2},
		{"plain", fmt.Errorf("plain"), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := a.ExitCodeFor(test.err); got != test.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	cfgErr := ConfigRequired("project.id")
	if got := quiet.FormatError(cfgErr); got != "required configuration missing" {
		t.Errorf("quiet FormatError() = %q", got)
	}
	if got := verbose.FormatError(cfgErr); got != cfgErr.Error() {
		t.Errorf("verbose FormatError() = %q", got)
	}
	if got := quiet.FormatError(RenderError("html", fmt.Errorf("x"))); got != "render: settings export failed" {
		t.Errorf("quiet render FormatError() = %q", got)
	}
	if got := quiet.FormatError(ValidationErrors{DuplicateID("A"), DuplicateID("B")}); got != "validation: 2 problem(s) found: duplicate id" {
		t.Errorf("quiet validation FormatError() = %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out, logs bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(nil)
	if code != -1 || out.Len() != 0 {
		t.Fatal("nil error must not exit or print")
	}

	a.HandleError(fmt.Errorf("evaluate: %w", ValidationErrors{DuplicateID("A"), InvalidID("1x", "must start with a letter")}))
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if got := strings.TrimSpace(out.String()); got != "validation: 2 problem(s) found: duplicate id" {
		t.Errorf("stderr = %q", got)
	}
	if n := strings.Count(logs.String(), "category=validation"); n != 2 {
		t.Errorf("expected one log record per problem, got %d", n)
	}
}

func TestCLIErrorAdapter_QuietSkipsNonFatalLog(t *testing.T) {
	var logs bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = io.Discard
	a.exit = func(int) {}

	a.HandleError(New(CategoryVCS, SeverityWarning, "remote missing"))
	if logs.Len() != 0 {
		t.Errorf("non-fatal error should not be logged in quiet mode: %s", logs.String())
	}
}
