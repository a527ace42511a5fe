package server

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, r, "page", s.site.WritePage)
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, r, "features", s.site.WriteSection)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// renderView renders into a buffer first so a failed render never sends a
// partial document.
func (s *Server) renderView(w http.ResponseWriter, r *http.Request, view string, write func(io.Writer) error) {
	ctx, span := s.tracer.Start(r.Context(), "render "+view,
		trace.WithAttributes(attribute.String("site.view", view)))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := write(&buf)
	s.metrics.renderDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.renderErrors.WithLabelValues(view).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "render failed", "view", view, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("site.bytes", buf.Len()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleStatic(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel, ok := staticRelPath(strings.TrimPrefix(r.URL.Path, prefix))
		if !ok {
			http.NotFound(w, r)
			return
		}

		static := s.site.Static()
		info, err := fs.Stat(static, rel)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeFileFS(w, r, static, rel)
	}
}

// staticRelPath sanitizes a request path relative to the static root. It
// rejects traversal, absolute paths, backslashes and NUL bytes rather than
// cleaning them into something else.
func staticRelPath(rel string) (string, bool) {
	if rel == "" || strings.HasPrefix(rel, "/") {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}
