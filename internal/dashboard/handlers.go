package dashboard

import (
	"bytes"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

// renderResponse is the JSON response of the render endpoint.
type renderResponse struct {
	State        view.State           `json:"state"`
	Instructions []render.Instruction `json:"instructions"`
}

// handlePage serves the dashboard with the requested selection already
// applied, so the page is complete without the websocket.
func (d *Dashboard) handlePage(w http.ResponseWriter, r *http.Request) {
	state := d.stateFromRequest(r)

	layout := page.NewLayout(d.title, d.doc, d.opts.Texts, d.opts.Themes, d.opts.Pair,
		func(id string) string {
			if id == view.ComparisonID {
				return pageHref("/comparison", url.Values{"text": {state.TextID}, "theme": {state.ThemeID}})
			}
			return pageHref("/texts/"+url.PathEscape(id), url.Values{"theme": {state.ThemeID}})
		},
		func(id string) string {
			return pageHref("/texts/"+url.PathEscape(state.TextID), url.Values{"theme": {id}})
		},
	)
	layout.Live = d.doc != nil
	layout.SocketPath = SocketPath + "?" + stateQuery(state)

	doc, err := page.Build(layout)
	if err != nil {
		d.logger.Error("Building page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if d.doc != nil {
		ctrl := view.NewController(d.doc, d.opts)
		instructions, err := ctrl.Restore(state)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		if err := doc.Apply(instructions...); err != nil {
			d.logger.Error("Applying render pass", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		d.logger.Error("Rendering page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleRender returns the instruction list that brings a fresh page to the
// requested selection.
func (d *Dashboard) handleRender(w http.ResponseWriter, r *http.Request) {
	state := d.stateFromRequest(r)
	ctrl := view.NewController(d.doc, d.opts)
	instructions, err := ctrl.Restore(state)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{
		State:        ctrl.State(),
		Instructions: instructions,
	})
}

// handleData serves the analysis document exactly as it was loaded.
func (d *Dashboard) handleData(w http.ResponseWriter, r *http.Request) {
	if d.doc == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": page.LoadErrorMessage})
		return
	}
	data, err := d.doc.Raw()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func pageHref(path string, q url.Values) string {
	return path + "?" + q.Encode()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
