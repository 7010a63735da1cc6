package playback

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// request is the incoming WebSocket message format from the wish page.
type request struct {
	Type string `json:"type"` // "begin", "manual_play" or "result"
	OK   bool   `json:"ok"`   // outcome, for "result"
}

// response is the outgoing WebSocket message format.
type response struct {
	Type      string `json:"type"` // "ready", "state", "celebrate", "show_play_button" or "playback_failed"
	SessionID string `json:"session_id"`
	State     State  `json:"state"`
	Message   string `json:"message,omitempty"`
}

// RegisterRoutes mounts the playback WebSocket endpoint. Each connection
// gets its own controller; a page drives exactly one connection.
func RegisterRoutes(r chi.Router) {
	r.Get("/ws/playback", handleWebSocket)
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("playback: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	ctrl := NewController(nil)

	send(conn, response{Type: "ready", SessionID: sessionID, State: ctrl.State()})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("playback: websocket read: %v", err)
			}
			return
		}

		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			send(conn, response{Type: "playback_failed", SessionID: sessionID, State: ctrl.State(), Message: "invalid message format"})
			continue
		}

		switch req.Type {
		case "begin":
			res := ctrl.Begin()
			send(conn, response{Type: "state", SessionID: sessionID, State: res.State})
		case "manual_play":
			res := ctrl.ManualPlay()
			send(conn, response{Type: "state", SessionID: sessionID, State: res.State})
		case "result":
			res := ctrl.ReportResult(req.OK)
			switch {
			case res.Celebrate:
				send(conn, response{Type: "celebrate", SessionID: sessionID, State: res.State})
			case res.SurfaceError:
				send(conn, response{Type: "playback_failed", SessionID: sessionID, State: res.State,
					Message: "Playback failed — please check your browser or tap to allow audio."})
			case res.State == StateBlocked:
				send(conn, response{Type: "show_play_button", SessionID: sessionID, State: res.State})
			default:
				send(conn, response{Type: "state", SessionID: sessionID, State: res.State})
			}
		default:
			send(conn, response{Type: "state", SessionID: sessionID, State: ctrl.State(), Message: "unknown message type: " + req.Type})
		}
	}
}

func send(conn *websocket.Conn, resp response) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("playback: websocket write: %v", err)
	}
}
