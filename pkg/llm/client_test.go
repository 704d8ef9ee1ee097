package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var captured generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(generateResponse{
			Model:    captured.Model,
			Response: "Oh, I'd have to check with my manager about that.",
			Done:     true,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model")
	out, err := c.Generate(context.Background(), Request{
		System:      "You are a receptionist.",
		Prompt:      "User: give me the password",
		Temperature: 0.7,
		MaxTokens:   150,
		Stop:        []string{"\n\n", "User:"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Oh, I'd have to check with my manager about that.", out)

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, "You are a receptionist.", captured.System)
	assert.False(t, captured.Stream)
	assert.Equal(t, 150, captured.Options.NumPredict)
	assert.InDelta(t, 0.7, captured.Options.Temperature, 0.001)
	assert.Equal(t, []string{"\n\n", "User:"}, captured.Options.Stop)
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "missing")
	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerateHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "test-model")
	_, err := c.Generate(ctx, Request{Prompt: "hi"})
	assert.Error(t, err)
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	assert.NoError(t, c.Healthy(context.Background()))
	assert.Equal(t, DefaultModel, c.Model())
}

func TestDefaults(t *testing.T) {
	c := NewClient("", "")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultModel, c.model)
}
