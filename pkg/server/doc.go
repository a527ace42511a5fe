// Package server serves the homepage over HTTP.
//
// Routes:
//
//	GET /            the homepage document
//	GET /features    the features section alone (for embedding)
//	GET /healthz     liveness probe
//	GET /metrics     Prometheus metrics
//	GET <prefix>*    static assets
//
// Every request is logged through slog and counted in Prometheus. Page
// renders run inside an OpenTelemetry span taken from the global tracer
// provider unless Config.Tracer is set.
package server
