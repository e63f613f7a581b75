package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mindcampus/internal/app/bridge"
	"mindcampus/internal/app/content"
	"mindcampus/internal/app/session"
	"mindcampus/internal/app/storage"
	"mindcampus/internal/configs"
)

// memSlot is an in-memory durable slot so handler tests avoid a database file.
type memSlot struct {
	mu      sync.Mutex
	payload []byte
}

func (m *memSlot) Write(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = append([]byte(nil), payload...)
	return nil
}

func (m *memSlot) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return nil, storage.ErrSlotEmpty
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *memSlot) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = nil
	return nil
}

// stubAsker answers every chat message with a fixed reply.
type stubAsker struct {
	reply string
}

func (s *stubAsker) Ask(ctx context.Context, message string) string {
	return s.reply
}

func newTestDeps(t *testing.T) *AppDeps {
	t.Helper()

	cfg := &configs.AppConfig{
		Environment: "development",
		Port:        8080,
		JWTSecret:   "handler-test-secret",
		ChatAPIURL:  "http://example.invalid/chat",
	}

	store := session.NewStore(&memSlot{})
	store.Init(context.Background())

	catalog := content.NewCatalog()

	return &AppDeps{
		Config:     cfg,
		Sessions:   store,
		Bridge:     &stubAsker{reply: "I hear you. Tell me more."},
		Transcript: bridge.NewTranscript(catalog.AIResponses.Greeting),
		Catalog:    catalog,
		Board:      content.NewBoard(catalog.SeedForumPosts),
		Moods:      content.NewMoodLog(),
	}
}

func newTestRouter(t *testing.T) (*AppDeps, http.Handler) {
	t.Helper()

	deps := newTestDeps(t)
	return deps, Router(deps)
}

// doJSON performs a request with a JSON body against the handler under test.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the standard JSON response body.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Zero(t, env.Code, "expected success envelope, got code %d (%s)", env.Code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func signIn(t *testing.T, deps *AppDeps, role session.Role) *session.Identity {
	t.Helper()

	identity, customErr := deps.Sessions.Login(context.Background(), "tester@campus.edu", "pw", string(role))
	require.Nil(t, customErr)
	return identity
}
