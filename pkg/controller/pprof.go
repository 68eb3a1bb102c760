package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a mux serving the runtime profiling endpoints under
// /debug/pprof/. Registering the full paths keeps the links on the index page
// working when the mux is mounted in the main server.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
