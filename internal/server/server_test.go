package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"SmartSaver/internal/agent"
	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/session"
	"SmartSaver/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sm, err := session.NewManager("")
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	srv := New(sm, agent.NewRegistry(heuristic.DefaultPolicy()), st, 30)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/sessions", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session: status %d", resp.StatusCode)
	}
	var body struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)
	if body.ID == "" {
		t.Fatal("expected a session id")
	}
	return body.ID
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
}

func TestAgentsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/agents")
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Agents       []string `json:"agents"`
		DefaultOrder []string `json:"default_order"`
	}
	decodeBody(t, resp, &body)
	if len(body.Agents) != 6 {
		t.Errorf("expected 6 registered agents, got %v", body.Agents)
	}
	if len(body.DefaultOrder) != 6 {
		t.Errorf("expected a 6-step default order, got %v", body.DefaultOrder)
	}
}

func TestRunPipeline(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/run", "application/json",
		bytes.NewBufferString(`{"agents":["budget","debt","savings","goals","alerts","advice"]}`))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Messages []struct {
			Agent   string `json:"agent"`
			Content string `json:"content"`
		} `json:"messages"`
		Warnings []string       `json:"warnings"`
		State    map[string]any `json:"state"`
	}
	decodeBody(t, resp, &body)

	if len(body.Messages) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(body.Messages))
	}
	if len(body.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", body.Warnings)
	}
	for _, m := range body.Messages {
		if strings.HasPrefix(m.Content, "⚠️ Error:") {
			t.Errorf("%s failed: %s", m.Agent, m.Content)
		}
	}
	budget, ok := body.State["budget"].(map[string]any)
	if !ok {
		t.Fatalf("state budget missing: %v", body.State["budget"])
	}
	if budget["savings"] == 0.0 {
		t.Error("budget step should have filled the savings envelope")
	}
}

func TestRunPipeline_UnknownAgentWarns(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/run", "application/json",
		bytes.NewBufferString(`{"agents":["budget","bogus"]}`))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Messages []any    `json:"messages"`
		Warnings []string `json:"warnings"`
	}
	decodeBody(t, resp, &body)
	if len(body.Messages) != 1 {
		t.Errorf("expected 1 message, got %d", len(body.Messages))
	}
	if len(body.Warnings) != 1 || !strings.Contains(body.Warnings[0], "bogus") {
		t.Errorf("expected a warning naming the unknown agent, got %v", body.Warnings)
	}
}

func TestRunPipeline_UnknownSession(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/sessions/nope/run", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", resp.StatusCode)
	}
}

func TestResetSession(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	// Run once so state diverges from defaults.
	resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/run", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Post(ts.URL+"/api/sessions/"+id+"/reset", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		State map[string]any `json:"state"`
	}
	decodeBody(t, resp, &body)
	goals, _ := body.State["goals"].([]any)
	if len(goals) != 0 {
		t.Errorf("reset state should have no goals, got %v", goals)
	}
}

func TestSeedAndTransactions(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/seed", "application/json",
		bytes.NewBufferString(`{"user_id":"demo","days":30}`))
	if err != nil {
		t.Fatal(err)
	}
	var seeded struct {
		Inserted int `json:"inserted"`
	}
	decodeBody(t, resp, &seeded)
	if seeded.Inserted != 30 {
		t.Errorf("expected 30 seeded rows, got %d", seeded.Inserted)
	}

	resp, err = http.Get(ts.URL + "/api/transactions?user=demo&limit=10")
	if err != nil {
		t.Fatal(err)
	}
	var txns struct {
		Transactions []any `json:"transactions"`
	}
	decodeBody(t, resp, &txns)
	if len(txns.Transactions) != 10 {
		t.Errorf("expected 10 transactions, got %d", len(txns.Transactions))
	}
}
