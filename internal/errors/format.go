package errors

import (
	stderrors "errors"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format renders the error for a terminal.
func (e *SiteError) Format() string {
	var b strings.Builder

	b.WriteString(color(colorRed+colorBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(" " + color(colorBold, e.Code))
	}
	b.WriteString(": " + e.Message + "\n")

	if e.Detail != "" {
		b.WriteString("  " + e.Detail + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("  " + color(colorGray, "cause: "+e.Wrapped.Error()) + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("  " + color(colorYellow, "hint: ") + e.Suggestion + "\n")
	}
	return b.String()
}

// FormatError formats any error, using the SiteError layout when err
// carries one.
func FormatError(err error) string {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Format()
	}
	return color(colorRed+colorBold, "ERROR") + ": " + err.Error() + "\n"
}
