package dashboard

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// viewRequest is the incoming WebSocket message format.
type viewRequest struct {
	Type string `json:"type"` // "select_text" or "select_theme"
	ID   string `json:"id"`
}

// viewResponse is the outgoing WebSocket message format.
type viewResponse struct {
	Type         string               `json:"type"` // "render" or "error"
	SessionID    string               `json:"session_id"`
	State        *view.State          `json:"state,omitempty"`
	Instructions []render.Instruction `json:"instructions,omitempty"`
	Content      string               `json:"content,omitempty"`
}

// handleWebSocket runs one view session. The session starts from the
// selection in the query string and owns its Controller; messages are
// handled one at a time, so each render pass completes before the next
// interaction is read.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	log := d.logger.With(zap.String("session", sessionID))
	log.Debug("View session started")

	ctrl := view.NewController(d.doc, d.opts)
	instructions, err := ctrl.Restore(d.stateFromRequest(r))
	if err != nil {
		d.sendError(conn, log, sessionID, err)
		return
	}
	d.sendRender(conn, log, sessionID, ctrl.State(), instructions)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Websocket read failed", zap.Error(err))
			}
			log.Debug("View session ended")
			return
		}

		var req viewRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.sendError(conn, log, sessionID, errors.New("invalid message format"))
			continue
		}
		if req.ID == "" {
			d.sendError(conn, log, sessionID, errors.New("id is required"))
			continue
		}

		var out []render.Instruction
		switch req.Type {
		case "select_text":
			out, err = ctrl.SelectText(req.ID)
		case "select_theme":
			out, err = ctrl.SelectTheme(req.ID)
		default:
			err = errors.New("unknown message type: " + req.Type)
		}
		if err != nil {
			d.sendError(conn, log, sessionID, err)
			continue
		}
		d.sendRender(conn, log, sessionID, ctrl.State(), out)
	}
}

func (d *Dashboard) sendRender(conn *websocket.Conn, log *zap.Logger, sessionID string, state view.State, instructions []render.Instruction) {
	resp := viewResponse{
		Type:         "render",
		SessionID:    sessionID,
		State:        &state,
		Instructions: instructions,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Warn("Websocket write failed", zap.Error(err))
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, log *zap.Logger, sessionID string, err error) {
	content := err.Error()
	if errors.Is(err, view.ErrNotLoaded) {
		content = page.LoadErrorMessage
	}
	resp := viewResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   content,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Warn("Websocket write failed", zap.Error(err))
	}
}
