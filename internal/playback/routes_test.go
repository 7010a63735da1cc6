package playback

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func dialTestSocket(t *testing.T) *websocket.Conn {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/playback"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) response {
	t.Helper()
	var resp response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return resp
}

func write(t *testing.T, conn *websocket.Conn, req request) {
	t.Helper()
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("writing request: %v", err)
	}
}

func TestSessionHandshake(t *testing.T) {
	conn := dialTestSocket(t)

	ready := read(t, conn)
	if ready.Type != "ready" || ready.SessionID == "" {
		t.Fatalf("got %+v", ready)
	}
	if ready.State != StateIdle {
		t.Errorf("initial state: %s", ready.State)
	}
}

func TestAutoplaySuccessOverSocket(t *testing.T) {
	conn := dialTestSocket(t)
	ready := read(t, conn)

	write(t, conn, request{Type: "begin"})
	if resp := read(t, conn); resp.State != StateAttempting {
		t.Fatalf("after begin: %+v", resp)
	}

	write(t, conn, request{Type: "result", OK: true})
	resp := read(t, conn)
	if resp.Type != "celebrate" || resp.State != StatePlaying {
		t.Fatalf("got %+v", resp)
	}
	if resp.SessionID != ready.SessionID {
		t.Errorf("session changed: %s vs %s", resp.SessionID, ready.SessionID)
	}
}

func TestBlockedThenManualFailure(t *testing.T) {
	conn := dialTestSocket(t)
	read(t, conn)

	write(t, conn, request{Type: "begin"})
	read(t, conn)

	// Automatic failure surfaces the play button, no error message.
	write(t, conn, request{Type: "result", OK: false})
	resp := read(t, conn)
	if resp.Type != "show_play_button" || resp.State != StateBlocked {
		t.Fatalf("auto failure: %+v", resp)
	}

	// Manual retry that fails again is loud.
	write(t, conn, request{Type: "manual_play"})
	if resp := read(t, conn); resp.State != StateAttempting {
		t.Fatalf("after manual_play: %+v", resp)
	}
	write(t, conn, request{Type: "result", OK: false})
	resp = read(t, conn)
	if resp.Type != "playback_failed" || resp.Message == "" {
		t.Fatalf("manual failure: %+v", resp)
	}
	if resp.State != StateBlocked {
		t.Errorf("state after manual failure: %s", resp.State)
	}
}

func TestUnknownMessageKeepsSession(t *testing.T) {
	conn := dialTestSocket(t)
	read(t, conn)

	write(t, conn, request{Type: "confetti"})
	resp := read(t, conn)
	if resp.Type != "state" || !strings.Contains(resp.Message, "unknown message type") {
		t.Fatalf("got %+v", resp)
	}

	// The session is still usable afterwards.
	write(t, conn, request{Type: "begin"})
	if resp := read(t, conn); resp.State != StateAttempting {
		t.Fatalf("after begin: %+v", resp)
	}
}
