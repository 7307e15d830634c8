package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID = "build_id"
	KeySection = "section"
	KeyPath    = "path"
	KeyCount   = "count"
	KeyRule    = "rule"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Section(s string) slog.Attr  { return slog.String(KeySection, s) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Rule(r string) slog.Attr     { return slog.String(KeyRule, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
