package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyProject     = "project"
	KeyBuildTypeID = "build_type_id"
	KeyBuildType   = "build_type"
	KeyOS          = "os"
	KeyPath        = "path"
	KeyFormat      = "format"
	KeyURL         = "url"
	KeyBranch      = "branch"
	KeyCount       = "count"
	KeyDurationMS  = "duration_ms"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Project(id string) slog.Attr     { return slog.String(KeyProject, id) }
func BuildTypeID(id string) slog.Attr { return slog.String(KeyBuildTypeID, id) }
func BuildType(n string) slog.Attr    { return slog.String(KeyBuildType, n) }
func OS(name string) slog.Attr        { return slog.String(KeyOS, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Branch(b string) slog.Attr       { return slog.String(KeyBranch, b) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
