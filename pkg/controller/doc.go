// Package controller contains HTTP middlewares and helper handlers used by
// the API server.
//
// Provided middlewares:
//   - WithCORS: adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: attaches a request-scoped logger and request ID to the
//     context and logs access info.
//   - WithMetrics: records request counts and latencies through an
//     OpenTelemetry meter.
//
// Provided helpers:
//   - PprofMux: returns a ServeMux exposing net/http/pprof handlers.
package controller
