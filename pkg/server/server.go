// Package server serves rendered app pages over HTTP.
//
// Routes:
//
//	GET /                          index of apps
//	GET /apps/{name}               full page, stylesheet linked
//	GET /apps/{name}/styles.css    the app's CSS
//
// Every request renders a fresh app instance. The engine runs one session
// at a time, so rendering is serialized.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/config"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/grugui/pkg/page"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server is an http.Handler over one engine
type Server struct {
	cfg     *config.Config
	catalog *apps.Catalog
	logger  zerolog.Logger
	mux     *http.ServeMux

	mu  sync.Mutex
	eng *core.Engine
}

// New creates the handler
func New(cfg *config.Config, eng *core.Engine, catalog *apps.Catalog) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		eng:     eng,
		logger:  logging.GetLogger("server"),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /apps/{name}", s.handleApp)
	s.mux.HandleFunc("GET /apps/{name}/styles.css", s.handleCSS)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	s.logger.Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Int("bytes", rec.bytes).
		Dur("duration", time.Since(start)).
		Msg("Request")
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.cfg.Server.Addr,
		Handler:     s,
		ReadTimeout: s.cfg.Server.ReadTimeout,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("Listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrapf(err, errors.ErrInternal, "server on %s failed", srv.Addr).
				WithDetail("addr", srv.Addr)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	descs := s.catalog.Describe()
	entries := make([]page.Entry, 0, len(descs))
	for _, name := range s.catalog.Names() {
		entries = append(entries, page.Entry{Name: name, Description: descs[name], Href: "/apps/" + name})
	}

	s.mu.Lock()
	doc, err := page.Index(s.eng, entries, s.pageOptions())
	s.mu.Unlock()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, "text/html; charset=utf-8", doc.HTML)
}

func (s *Server) handleApp(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	opts := s.pageOptions()
	opts.Title = opts.Title + " | " + name
	opts.StylesheetHref = "/apps/" + name + "/styles.css"

	doc, err := s.render(name, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, "text/html; charset=utf-8", doc.HTML)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	doc, err := s.render(r.PathValue("name"), s.pageOptions())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, "text/css; charset=utf-8", doc.CSS)
}

func (s *Server) render(name string, opts page.Options) (page.Document, error) {
	app, err := s.catalog.Lookup(name)
	if err != nil {
		return page.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return page.Render(s.eng, app, opts)
}

func (s *Server) pageOptions() page.Options {
	return page.Options{Lang: s.cfg.Render.Lang, Title: s.cfg.Render.Title}
}

func (s *Server) write(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to write response")
	}
}

// fail maps error codes to statuses
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Warn().
		Err(err).
		Str("path", r.URL.Path).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Request failed")
	http.Error(w, err.Error(), status)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
