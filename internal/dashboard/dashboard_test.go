package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/dom"
	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/testutil"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setupRouter(d *Dashboard) chi.Router {
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return r
}

func setupTest(t *testing.T) chi.Router {
	t.Helper()
	return setupRouter(New(testutil.SampleDocument(), view.DefaultOptions(), "Distant Reading", nil))
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parsePage(t *testing.T, w *httptest.ResponseRecorder) *dom.Document {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	doc, err := dom.Parse(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}

func dialView(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + SocketPath + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) viewResponse {
	t.Helper()
	var resp viewResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func TestServeIndex(t *testing.T) {
	doc := parsePage(t, get(t, setupTest(t), "/"))

	if title, _ := doc.Text(render.IDTextTitle); title != "A Modern Utopia" {
		t.Errorf("text-title = %q, want %q", title, "A Modern Utopia")
	}
	if ok, _ := doc.HasClass(render.NavID("wells"), render.ClassActive); !ok {
		t.Error("expected the wells control to be active")
	}
	if ok, _ := doc.HasClass(render.ThemeTabID("socialism"), render.ClassActive); !ok {
		t.Error("expected the socialism tab to be active")
	}
	if ok, _ := doc.HasClass(render.IDSingleTextView, render.ClassActive); !ok {
		t.Error("expected the single-text view to be visible")
	}
}

func TestServeTextWithTheme(t *testing.T) {
	doc := parsePage(t, get(t, setupTest(t), "/texts/dostoyevsky?theme=utopia"))

	if author, _ := doc.Text(render.IDTextAuthor); !strings.Contains(author, "Dostoyevsky") {
		t.Errorf("text-author = %q", author)
	}
	if count, _ := doc.Text(render.IDThemeCount); count != "40" {
		t.Errorf("theme-count = %q, want %q", count, "40")
	}
	if v, _ := doc.Text(render.SentimentValueID("positive")); v != "45.7%" {
		t.Errorf("positive value = %q, want %q", v, "45.7%")
	}
	if ok, _ := doc.HasClass(render.ThemeTabID("utopia"), render.ClassActive); !ok {
		t.Error("expected the utopia tab to be active")
	}
}

func TestServeComparison(t *testing.T) {
	doc := parsePage(t, get(t, setupTest(t), "/comparison"))

	if ok, _ := doc.HasClass(render.IDComparisonView, render.ClassActive); !ok {
		t.Error("expected the comparison view to be visible")
	}
	if ok, _ := doc.HasClass(render.IDSingleTextView, render.ClassActive); ok {
		t.Error("single-text view should be hidden")
	}
	rows, err := doc.Elements(render.IDComparisonTableBody)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if len(rows) != 9 {
		t.Errorf("expected 9 comparison rows, got %d", len(rows))
	}
}

func TestServeUnknownText(t *testing.T) {
	w := get(t, setupTest(t), "/texts/tolstoy")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestServeLoadError(t *testing.T) {
	r := setupRouter(New(nil, view.DefaultOptions(), "Distant Reading", nil))
	doc := parsePage(t, get(t, r, "/"))

	alert, err := doc.Text("load-error")
	if err != nil {
		t.Fatalf("expected the load-error banner: %v", err)
	}
	if alert != page.LoadErrorMessage {
		t.Errorf("load-error = %q", alert)
	}

	w := get(t, r, "/api/render")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("render API: expected 503, got %d", w.Code)
	}
	w = get(t, r, "/analysis_results.json")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("data: expected 503, got %d", w.Code)
	}
}

func TestRenderEndpoint(t *testing.T) {
	w := get(t, setupTest(t), "/api/render?text=dostoyevsky&theme=state")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp renderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	want := view.State{TextID: "dostoyevsky", ThemeID: "state", Mode: view.ModeText}
	if resp.State != want {
		t.Errorf("state = %+v, want %+v", resp.State, want)
	}
	if len(resp.Instructions) == 0 {
		t.Error("expected instructions")
	}
}

func TestRenderEndpointUnknownTheme(t *testing.T) {
	w := get(t, setupTest(t), "/api/render?theme=anarchy")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDataEndpoint(t *testing.T) {
	w := get(t, setupTest(t), "/analysis_results.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	texts, ok := body["texts"].(map[string]any)
	if !ok || len(texts) != 2 {
		t.Errorf("expected two texts, got %v", body["texts"])
	}
}

func TestDataEndpointServesSourceBytes(t *testing.T) {
	src := testutil.ProducerJSON(t)
	doc, err := analysis.Parse(src)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	w := get(t, setupRouter(New(doc, view.DefaultOptions(), "Distant Reading", nil)), "/analysis_results.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	if got := w.Body.String(); got != string(src) {
		t.Errorf("served data differs from source:\n%s", got)
	}
}

func TestWebSocketSession(t *testing.T) {
	server := httptest.NewServer(setupTest(t))
	defer server.Close()

	conn := dialView(t, server, "")
	defer conn.Close()

	first := readResponse(t, conn)
	if first.Type != "render" {
		t.Fatalf("expected initial render, got %q: %s", first.Type, first.Content)
	}
	if first.SessionID == "" {
		t.Error("expected a session id")
	}

	if err := conn.WriteJSON(viewRequest{Type: "select_text", ID: "dostoyevsky"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	resp := readResponse(t, conn)
	if resp.Type != "render" {
		t.Fatalf("expected render, got %q: %s", resp.Type, resp.Content)
	}
	if resp.SessionID != first.SessionID {
		t.Errorf("session id changed: %q -> %q", first.SessionID, resp.SessionID)
	}
	if resp.State == nil || resp.State.TextID != "dostoyevsky" {
		t.Errorf("unexpected state %+v", resp.State)
	}

	if err := conn.WriteJSON(viewRequest{Type: "select_theme", ID: "utopia"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	resp = readResponse(t, conn)
	for _, ins := range resp.Instructions {
		if ins.Target == render.IDTextTitle {
			t.Errorf("theme selection should not touch %s", ins.Target)
		}
	}
}

func TestWebSocketStartsFromQuery(t *testing.T) {
	server := httptest.NewServer(setupTest(t))
	defer server.Close()

	conn := dialView(t, server, "?mode=comparison&text=dostoyevsky&theme=state")
	defer conn.Close()

	resp := readResponse(t, conn)
	want := view.State{TextID: "dostoyevsky", ThemeID: "state", Mode: view.ModeComparison}
	if resp.State == nil || *resp.State != want {
		t.Errorf("state = %+v, want %+v", resp.State, want)
	}
}

func TestWebSocketErrors(t *testing.T) {
	server := httptest.NewServer(setupTest(t))
	defer server.Close()

	conn := dialView(t, server, "")
	defer conn.Close()
	readResponse(t, conn)

	tests := []struct {
		msg  string
		want string
	}{
		{`not json`, "invalid message format"},
		{`{"type":"select_text"}`, "id is required"},
		{`{"type":"zoom","id":"wells"}`, "unknown message type"},
		{`{"type":"select_text","id":"tolstoy"}`, "unknown control"},
	}
	for _, tt := range tests {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
			t.Fatalf("write: %v", err)
		}
		resp := readResponse(t, conn)
		if resp.Type != "error" {
			t.Errorf("%s: expected error type, got %q", tt.msg, resp.Type)
		}
		if !strings.Contains(resp.Content, tt.want) {
			t.Errorf("%s: expected %q in %q", tt.msg, tt.want, resp.Content)
		}
	}
}

func TestWebSocketNotLoaded(t *testing.T) {
	server := httptest.NewServer(setupRouter(New(nil, view.DefaultOptions(), "T", nil)))
	defer server.Close()

	conn := dialView(t, server, "")
	defer conn.Close()

	resp := readResponse(t, conn)
	if resp.Type != "error" {
		t.Errorf("expected error type, got %q", resp.Type)
	}
	if resp.Content != page.LoadErrorMessage {
		t.Errorf("expected load error message, got %q", resp.Content)
	}
}
