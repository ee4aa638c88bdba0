package nickname

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ml", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("id"))
		assert.Equal(t, "678", r.URL.Query().Get("zone"))
		_, _ = io.WriteString(w, `{"success":true,"name":" Player One "}`)
	}))
	defer srv.Close()

	name, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "ML", "12345", "678")
	require.NoError(t, err)
	assert.Equal(t, "Player One", name)
}

func TestClient_Lookup_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("zone"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"message":"Invalid ID"}`)
	}))
	defer srv.Close()

	name, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "ff", "1", "")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestClient_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "ff", "1", "")
	assert.Error(t, err)
}
