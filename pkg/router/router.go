package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// ANSI color codes for the access log.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a small method-aware mux with `*` path segments and a
// colored access log.
type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  []string               // registration order, most specific first
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
	}

	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		r.dispatch(lrw, req)

		log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
			colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
			methodColor(req.Method), req.Method, colorReset,
			req.URL.Path,
			statusColor(lrw.statusCode), lrw.statusCode, colorReset,
			colorBlue, time.Since(start), colorReset,
		)
	})

	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	pathMatched := false
	for _, pattern := range r.paths {
		if !matchPattern(req.URL.Path, pattern) {
			continue
		}
		pathMatched = true
		if h, ok := r.routes[req.Method+":"+pattern]; ok {
			h(w, req)
			return
		}
	}
	if pathMatched {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

// matchPattern checks a request path against a registered pattern.
// A `*` segment matches exactly one path segment.
func matchPattern(path, pattern string) bool {
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	if len(pathSegs) != len(patSegs) {
		return false
	}
	for i, seg := range patSegs {
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return true
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	for _, p := range r.paths {
		if p == path {
			return
		}
	}
	r.paths = append(r.paths, path)
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)    { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc)  { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.register(http.MethodDelete, path, handler) }

// Mount attaches a plain http.Handler under a path prefix, bypassing the
// access log.
func (r *Router) Mount(prefix string, h http.Handler) { r.mux.Handle(prefix, h) }

// Handler exposes the underlying mux, mainly for tests.
func (r *Router) Handler() http.Handler { return r.mux }

// Start runs the server until it fails.
func (r *Router) Start(addr string) {
	log.Printf("Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r.mux))
}

// loggingResponseWriter captures the status code for the access log.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
