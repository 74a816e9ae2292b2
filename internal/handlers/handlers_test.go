package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/adapta-ai/backend/internal/config"
	"github.com/adapta-ai/backend/internal/documents"
	"github.com/adapta-ai/backend/internal/history"
	"github.com/adapta-ai/backend/internal/payments"
	"github.com/adapta-ai/backend/internal/profile"
	"github.com/adapta-ai/backend/internal/supabase"
	"github.com/adapta-ai/backend/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSupabase is a minimal PostgREST stand-in shared by the handler tests.
// It serves a fixed profile row set on GET and records PATCH bodies.
type fakeSupabase struct {
	mu       sync.Mutex
	profiles string
	requests int
	patches  []map[string]interface{}
}

func (f *fakeSupabase) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests++
		switch r.Method {
		case http.MethodGet:
			rows := f.profiles
			if rows == "" {
				rows = "[]"
			}
			fmt.Fprint(w, rows)
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			var patch map[string]interface{}
			json.Unmarshal(body, &patch)
			f.patches = append(f.patches, patch)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, "[]")
		}
	}
}

func (f *fakeSupabase) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeSupabase) patchBodies() []map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]interface{}{}, f.patches...)
}

type testEnv struct {
	handlers *Handlers
	supabase *fakeSupabase
	ai       *testutil.MockTextGenerator
	images   *testutil.MockImageGenerator
	captions *testutil.MockTranscriptFetcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fake := &fakeSupabase{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	db, err := supabase.New(srv.URL, "test-key")
	require.NoError(t, err)

	ai := &testutil.MockTextGenerator{
		GenerateFunc: func(_ context.Context, _ string) (string, error) {
			return "resposta gerada", nil
		},
	}
	images := &testutil.MockImageGenerator{}
	captions := &testutil.MockTranscriptFetcher{}

	h := &Handlers{
		Config:    &config.Config{FrontendURL: "http://localhost:5173"},
		AI:        ai,
		Images:    images,
		Captions:  captions,
		Profiles:  profile.NewStore(db),
		History:   history.NewStore(db),
		Documents: documents.NewStore(db, nopEmbedder{}),
		Payments:  payments.NewService("sk_test_x", "price_x", "whsec_test", "http://localhost:5173"),
	}
	return &testEnv{handlers: h, supabase: fake, ai: ai, images: images, captions: captions}
}

type nopEmbedder struct{}

func (nopEmbedder) Embed(context.Context, string) ([]float32, error) {
	return []float32{0}, nil
}

// postJSON runs one handler against a JSON body and returns the recorder.
func postJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(encoded))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
