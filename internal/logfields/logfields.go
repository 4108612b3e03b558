package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent = "component"
	KeyDirective = "directive"
	KeyElement   = "element"
	KeyReason    = "reason"
	KeySymbol    = "symbol"
	KeyDocument  = "document"
	KeyPath      = "path"
	KeyRunID     = "run_id"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Directive(name string) slog.Attr { return slog.String(KeyDirective, name) }
func Element(name string) slog.Attr   { return slog.String(KeyElement, name) }
func Reason(r string) slog.Attr       { return slog.String(KeyReason, r) }
func Symbol(s string) slog.Attr       { return slog.String(KeySymbol, s) }
func Document(uri string) slog.Attr   { return slog.String(KeyDocument, uri) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
