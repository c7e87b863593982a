package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/internal/demo"
	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/match"
)

func newTestServer(t *testing.T, metrics bool) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	cfg.Name = "demo"
	cfg.Metrics.Enabled = metrics

	s := New(cfg, demo.App, demo.Table())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, false)

	code, body := get(t, ts.URL+"/healthz")
	if code != http.StatusOK || body != "ok" {
		t.Errorf("GET /healthz = %d %q, want 200 ok", code, body)
	}
}

func TestRoutes(t *testing.T) {
	_, ts := newTestServer(t, false)

	_, body := get(t, ts.URL+"/routes")
	var table []match.TableEntry
	if err := json.Unmarshal([]byte(body), &table); err != nil {
		t.Fatalf("decode table: %v", err)
	}
	if len(table) != len(demo.Table()) {
		t.Errorf("table entries = %d, want %d", len(table), len(demo.Table()))
	}

	_, body = get(t, ts.URL+"/routes?path=/profile/settings/delete")
	var steps []match.Step
	if err := json.Unmarshal([]byte(body), &steps); err != nil {
		t.Fatalf("decode steps: %v", err)
	}
	if len(steps) != 3 || steps[2].Name != "ProfileSettingsDelete" || steps[2].Realpath != "profile/settings/delete" {
		t.Errorf("steps = %+v", steps)
	}

	_, body = get(t, ts.URL+"/routes?path=/missing")
	if strings.TrimSpace(body) != "[]" {
		t.Errorf("unmatched steps = %q, want []", body)
	}
}

func TestPage(t *testing.T) {
	_, ts := newTestServer(t, false)

	code, body := get(t, ts.URL+"/users/5?tab=likes")
	if code != http.StatusOK {
		t.Fatalf("GET page = %d", code)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>demo</title>", `data-view="User"`, "User 5", "Tab: likes"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q:\n%s", want, body)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, true)

	code, body := get(t, ts.URL+"/metrics")
	if code != http.StatusOK || !strings.Contains(body, "go_goroutines") {
		t.Errorf("GET /metrics = %d, want Go runtime metrics", code)
	}

	_, ts = newTestServer(t, false)
	if _, body := get(t, ts.URL+"/metrics"); strings.Contains(body, "go_goroutines") {
		t.Error("metrics served while disabled")
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) history.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg history.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	return msg
}

func TestBridgeSession(t *testing.T) {
	s, ts := newTestServer(t, true)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/history?path=/about"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer conn.Close()

	msg := readFrame(t, conn)
	if msg.Op != history.OpRender || msg.Path != "/about" || !strings.Contains(msg.HTML, `data-view="About"`) {
		t.Fatalf("initial frame = %+v", msg)
	}
	if s.Sessions() != 1 {
		t.Errorf("Sessions() = %d, want 1", s.Sessions())
	}

	if err := conn.WriteJSON(history.Message{Op: history.OpPop, Path: "/profile/settings"}); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	msg = readFrame(t, conn)
	if msg.Op != history.OpRender || msg.Path != "/profile/settings" {
		t.Fatalf("frame after pop = %+v", msg)
	}
	for _, want := range []string{`data-view="Profile"`, `data-view="ProfileSettings"`, `data-view="ProfileSettingsIndex"`} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("render frame missing %s", want)
		}
	}

	// The observer runs after the notification pass that sent the frame.
	want := `vroute_navigations_total{kind="pop"} 1`
	var body string
	for deadline := time.Now().Add(2 * time.Second); time.Now().Before(deadline); time.Sleep(10 * time.Millisecond) {
		if _, body = get(t, ts.URL+"/metrics"); strings.Contains(body, want) {
			return
		}
	}
	t.Errorf("metrics missing %s:\n%s", want, body)
}

func TestBridgeRejectsInvalidPath(t *testing.T) {
	_, ts := newTestServer(t, false)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/history?path=//evil.example"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %v, want 400", resp)
	}
}
