package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "http://example.com"

func newTestHandler() http.Handler {
	return NewServer(profile.Default(), spanner.DefaultFilter{}, 2, nil).Handler([]string{origin})
}

func renderBody(t *testing.T, extra map[string]any) *bytes.Reader {
	data, err := os.ReadFile(etudePath)
	require.NoError(t, err)
	body := map[string]any{"score": json.RawMessage(data)}
	for k, v := range extra {
		body[k] = v
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestHandler(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok", "profile": "generic"}`, w.Body.String())
}

func TestRender(t *testing.T) {
	w := serve(newTestHandler(), httptest.NewRequest(http.MethodPost, "/render", renderBody(t, nil)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp renderOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert := assert.New(t)
	assert.Equal(w.Header().Get("X-Request-ID"), resp.RequestID)
	assert.Equal("etude", resp.Title)
	require.Len(t, resp.Chords, 6)
	assert.Equal([]string{"legato", "tremolo_16th", "acciaccatura"}, resp.types(1))
	assert.Equal([]string{"crescendo"}, resp.types(5))
}

func TestRenderWithMutedStaff(t *testing.T) {
	body := renderBody(t, map[string]any{"muted_staves": []int{1}})
	w := serve(newTestHandler(), httptest.NewRequest(http.MethodPost, "/render", body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp renderOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.types(4))
	assert.Equal(t, []string{"legato", "pizzicato", "staccato", "accent"}, resp.types(0))
}

func TestRenderRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "no score", body: `{}`},
		{name: "bad score", body: `{"score": {"spanners": [{"id": "x", "kind": "slur", "tick": 5, "tick2": 1}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(tt.body))
			w := serve(newTestHandler(), req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var e model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Error)
			assert.Equal(t, w.Header().Get("X-Request-ID"), e.RequestID)
		})
	}
}

func TestRenderRequiresPost(t *testing.T) {
	w := serve(newTestHandler(), httptest.NewRequest(http.MethodGet, "/render", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPattern(t *testing.T) {
	h := newTestHandler()

	w := serve(h, httptest.NewRequest(http.MethodGet, "/profile/staccato", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var pattern model.ArticulationPattern
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pattern))
	assert.Equal(t, profile.Default().Pattern(model.Staccato), pattern)

	w = serve(h, httptest.NewRequest(http.MethodGet, "/profile/bogus", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatternMissingFromProfile(t *testing.T) {
	h := NewServer(profile.New("empty"), spanner.DefaultFilter{}, 0, nil).Handler(nil)
	w := serve(h, httptest.NewRequest(http.MethodGet, "/profile/staccato", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/render", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(newTestHandler(), req)

	assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/render", nil)
	req.Header.Set("Origin", "http://elsewhere.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = serve(newTestHandler(), req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
