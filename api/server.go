/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID, RealIP:  Request identity for logs and rate limiting
  2. RequestLogger:      httplog, ECS schema
  3. Recoverer:          Panic recovery (500 instead of crash)
  4. CleanPath:          Collapses duplicate slashes
  5. Secure headers:     CSP, nosniff, frame deny; HTTPS redirect in production
  6. CORS:               Cross-origin requests for the frontend dev server
  7. Heartbeat:          /healthz
  8. Rate limit:         Per client IP, /api only

ROUTE GROUPS:
  /api/municipalities/*   Tax table
  /api/counties/*         County lookups
  /api/tax-rate           Rate resolution
  /api/tax-stats          National statistics
  /api/examples/*         Example plans
  /*                      Static files (frontend)

STATIC FILE SERVING:
  Serves the built frontend from Options.StaticDir. Unknown paths fall
  back to index.html for client-side routing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

// Options configures the router.
type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// RateLimit is requests per minute per client IP; zero disables it.
	RateLimit  int
	StaticDir  string
	Production bool
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(secureHeaders(opts.Production))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(httprate.Limit(opts.RateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					writeError(w, http.StatusTooManyRequests, "Too many requests", nil)
				}),
			))
		}

		r.Route("/municipalities", func(r chi.Router) {
			r.Get("/", h.ListMunicipalities)
			r.Get("/{name}", h.GetMunicipality)
		})
		r.Get("/counties", h.ListCounties)
		r.Get("/tax-rate", h.GetTaxRate)
		r.Get("/tax-stats", h.GetTaxStats)

		r.Route("/examples", func(r chi.Router) {
			r.Get("/", h.ListExamples)
			r.Get("/{key}", h.GetExample)
		})
	})

	r.Get("/*", staticHandler(opts.StaticDir))

	return r
}

func secureHeaders(production bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	}).Handler
}

func staticHandler(staticDir string) http.HandlerFunc {
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			fileServer := http.FileServer(http.Dir(staticDir))
			return func(w http.ResponseWriter, r *http.Request) {
				fullPath := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
				if _, err := os.Stat(fullPath); os.IsNotExist(err) {
					// SPA routing: serve index.html
					http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
					return
				}
				fileServer.ServeHTTP(w, r)
			}
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<!DOCTYPE html>
<html lang="sv">
<head><title>Föräldrapengen</title></head>
<body>
<h1>Föräldrapengen</h1>
<p>The frontend is not built yet. Run <code>cd web && npm install && npm run build</code></p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/municipalities">/api/municipalities</a> - Municipal tax rates</li>
<li><a href="/api/counties">/api/counties</a> - Counties</li>
<li><a href="/api/tax-rate?municipality=Stockholm">/api/tax-rate</a> - Tax rate lookup</li>
<li><a href="/api/examples">/api/examples</a> - Example plans</li>
</ul>
</body>
</html>`))
	}
}
