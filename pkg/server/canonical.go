package server

import (
	"errors"
	"net/http"
	"strings"
)

// Path canonicalization errors.
var (
	errBackslash     = errors.New("path contains backslash")
	errNullByte      = errors.New("path contains null byte")
	errPercentEscape = errors.New("invalid percent escape sequence")
	errEscapesRoot   = errors.New("path escapes root via ..")
)

// canonicalPath normalizes an escaped URL path: it collapses repeated
// slashes, drops "." segments, resolves "..", and removes a trailing slash
// except on the root. Backslashes, NUL bytes, malformed escapes and ".."
// above the root are rejected.
func canonicalPath(p string) (string, error) {
	if p == "" {
		return "/", nil
	}
	if strings.Contains(p, `\`) {
		return "", errBackslash
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return "", errNullByte
	}
	if !validEscapes(p) {
		return "", errPercentEscape
	}

	out := make([]string, 0, strings.Count(p, "/"))
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(out) == 0 {
				return "", errEscapesRoot
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}
	return "/" + strings.Join(out, "/"), nil
}

func validEscapes(p string) bool {
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		if i+2 >= len(p) || !isHex(p[i+1]) || !isHex(p[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// canonicalize redirects requests for non-canonical paths to their
// canonical form and answers 400 for paths that cannot be normalized.
func canonicalize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.EscapedPath()
		clean, err := canonicalPath(raw)
		if err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if clean == raw {
			next.ServeHTTP(w, r)
			return
		}

		target := clean
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		code := http.StatusMovedPermanently
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			code = http.StatusPermanentRedirect
		}
		http.Redirect(w, r, target, code)
	})
}
