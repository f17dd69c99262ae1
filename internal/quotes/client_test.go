package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.QuotesConfig{
		URL:            url,
		TimeoutSeconds: 1,
		Fallback:       "Could not load tip (offline demo).",
	}, zap.NewNop())
}

func TestRandomReturnsContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":"Stay curious."}`))
	}))
	defer server.Close()

	got := newTestClient(server.URL).Random(context.Background())
	assert.Equal(t, "Stay curious.", got)
}

func TestRandomFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	got := newTestClient(server.URL).Random(context.Background())
	assert.Equal(t, "Could not load tip (offline demo).", got)
}

func TestRandomFallsBackOnUnreachableEndpoint(t *testing.T) {
	got := newTestClient("http://127.0.0.1:1").Random(context.Background())
	assert.Equal(t, "Could not load tip (offline demo).", got)
}

func TestRandomFallsBackOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"quote":"wrong shape"}`))
	}))
	defer server.Close()

	got := newTestClient(server.URL).Random(context.Background())
	assert.Equal(t, "Could not load tip (offline demo).", got)
}
