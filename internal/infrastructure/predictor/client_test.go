package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var features map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&features))
		require.Equal(t, 63.0, features["age"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction":1,"risk":"high"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), map[string]float64{"age": 63})
	require.NoError(t, err)
	require.JSONEq(t, `{"prediction":1,"risk":"high"}`, string(result))
}

func TestPredictServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), map[string]float64{"age": 63})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
}

func TestPredictInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), map[string]float64{"age": 63})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestPredictUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)
	_, err := client.Predict(context.Background(), map[string]float64{"age": 63})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unreachable")
}

func TestPredictContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Predict(ctx, map[string]float64{"age": 63})
	require.Error(t, err)
}
