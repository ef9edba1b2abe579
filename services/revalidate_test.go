package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevalidatePathsCallsEndpointPerPath(t *testing.T) {
	var (
		mu       sync.Mutex
		received []map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		mu.Lock()
		received = append(received, body)
		mu.Unlock()
	}))
	defer srv.Close()

	rv := NewRevalidator(srv.URL, "hook-secret")
	rv.RevalidatePaths(context.Background(), "/blog", "/blog/tarta-de-queso")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)

	paths := []string{received[0]["path"], received[1]["path"]}
	assert.ElementsMatch(t, []string{"/blog", "/blog/tarta-de-queso"}, paths)
	for _, body := range received {
		assert.Equal(t, "hook-secret", body["secret"])
	}
}

func TestRevalidatePathsUnconfiguredIsNoop(t *testing.T) {
	rv := NewRevalidator("", "")
	// Must neither panic nor block.
	rv.RevalidatePaths(context.Background(), "/blog")
}

func TestRevalidatePathsSurvivesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rv := NewRevalidator(srv.URL, "hook-secret")
	// Best-effort: a failing endpoint must not bubble up.
	rv.RevalidatePaths(context.Background(), "/blog", "/blog/x")
}
