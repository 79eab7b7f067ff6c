package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFile       = "file"
	KeyPath       = "path"
	KeyTheme      = "theme"
	KeyBaseURL    = "base_url"
	KeyPort       = "port"
	KeyURL        = "url"
	KeyIssues     = "issues"
	KeyStrict     = "strict_issues"
	KeyDurationMS = "duration_ms"
	KeyStatus     = "status"
	KeyMethod     = "method"
	KeyRemoteAddr = "remote_addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func File(p string) slog.Attr         { return slog.String(KeyFile, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func BaseURL(u string) slog.Attr      { return slog.String(KeyBaseURL, u) }
func Port(p int) slog.Attr            { return slog.Int(KeyPort, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Issues(n int) slog.Attr          { return slog.Int(KeyIssues, n) }
func StrictIssues(n int) slog.Attr    { return slog.Int(KeyStrict, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
