// Package dashboard serves the live dashboard: server-rendered pages, a JSON
// render API and a websocket that streams render instructions per session.
package dashboard

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

// SocketPath is the websocket endpoint of the view sessions.
const SocketPath = "/ws/view"

// Dashboard holds the document loaded once at startup. The document is
// never mutated, so handlers and sessions share it without locking.
type Dashboard struct {
	doc    *analysis.Document
	opts   view.Options
	title  string
	logger *zap.Logger
}

// New creates a new Dashboard. doc is nil when loading failed; pages then
// show the load error and every interaction reports it.
func New(doc *analysis.Document, opts view.Options, title string, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		doc:    doc,
		opts:   opts,
		title:  title,
		logger: logger,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.handlePage)
	r.Get("/texts/{id}", d.handlePage)
	r.Get("/comparison", d.handlePage)
	r.Get("/api/render", d.handleRender)
	r.Get("/"+analysis.DefaultPath, d.handleData)
	r.Get(SocketPath, d.handleWebSocket)
}

// stateFromRequest reads the requested selection. The text id comes from
// the path when present, otherwise from the "text" query parameter.
func (d *Dashboard) stateFromRequest(r *http.Request) view.State {
	q := r.URL.Query()
	s := view.State{
		TextID:  d.opts.DefaultText,
		ThemeID: d.opts.DefaultTheme,
		Mode:    view.ModeText,
	}

	textID := chi.URLParam(r, "id")
	if textID == "" {
		textID = q.Get("text")
	}
	if r.URL.Path == "/comparison" || textID == view.ComparisonID || q.Get("mode") == string(view.ModeComparison) {
		s.Mode = view.ModeComparison
		textID = q.Get("text")
	}
	if textID != "" {
		s.TextID = textID
	}
	if theme := q.Get("theme"); theme != "" {
		s.ThemeID = theme
	}
	return s
}

func stateQuery(s view.State) string {
	v := url.Values{}
	v.Set("text", s.TextID)
	v.Set("theme", s.ThemeID)
	v.Set("mode", string(s.Mode))
	return v.Encode()
}

// statusFor maps controller errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, view.ErrNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, view.ErrUnknownControl),
		errors.Is(err, analysis.ErrUnknownText),
		errors.Is(err, analysis.ErrUnknownTheme):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
