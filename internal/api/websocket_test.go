package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWordMessage(t *testing.T, conn *websocket.Conn) WSWordMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg WSWordMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return msg
}

func TestWebSocketStreamCompute(t *testing.T) {
	srv := newTestServer(t)
	conn := dialTestServer(t, srv)

	req := WSComputeRequest{Text: "בראשית ברא", Method: "standard"}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write: %v", err)
	}

	first := readWordMessage(t, conn)
	if first.Type != "word" || first.Position != 1 || first.Value != 913 {
		t.Errorf("first = %+v", first)
	}
	second := readWordMessage(t, conn)
	if second.Type != "word" || second.Position != 2 || second.Value != 203 {
		t.Errorf("second = %+v", second)
	}
	total := readWordMessage(t, conn)
	if total.Type != "total" || total.Value != 913+203 {
		t.Errorf("total = %+v", total)
	}
	if total.Method != "mispar-hechrachi" {
		t.Errorf("method = %q", total.Method)
	}
}

func TestWebSocketUnknownMethod(t *testing.T) {
	srv := newTestServer(t)
	conn := dialTestServer(t, srv)

	if err := conn.WriteJSON(WSComputeRequest{Text: "ברא", Method: "bogus"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := readWordMessage(t, conn)
	if msg.Type != "error" {
		t.Errorf("got %+v, want error message", msg)
	}
}

func TestWebSocketMalformedRequest(t *testing.T) {
	srv := newTestServer(t)
	conn := dialTestServer(t, srv)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{broken")); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := readWordMessage(t, conn)
	if msg.Type != "error" {
		t.Errorf("got %+v, want error message", msg)
	}
}
