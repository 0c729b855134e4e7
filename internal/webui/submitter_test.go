package webui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sellForm() url.Values {
	return url.Values{
		"name":        {"  Chaqueta de cuero  "},
		"description": {" Talla M, buen estado "},
		"category":    {"ropa"},
		"price":       {"45.5"},
		"image":       {" https://example.com/ch.jpg "},
	}
}

func TestSubmitterSuccess(t *testing.T) {
	var received NewProduct
	var gotAuth, gotContentType string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Producto agregado","product":{"id":7}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, StaticToken("token123"))
	s := &ProductSubmitter{Client: client, Log: discardLogger()}

	outcome := s.Submit(context.Background(), sellForm())

	require.True(t, outcome.OK)
	require.Equal(t, SuccessMessage, outcome.Message)
	require.Equal(t, ListingPage, outcome.Redirect)

	require.Equal(t, "Bearer token123", gotAuth)
	require.Equal(t, "application/json", gotContentType)

	// name, description and image trimmed; category and price verbatim
	require.Equal(t, "Chaqueta de cuero", received.Name)
	require.Equal(t, "Talla M, buen estado", received.Description)
	require.Equal(t, "https://example.com/ch.jpg", received.Image)
	require.Equal(t, "ropa", received.Category)
	require.Equal(t, "45.5", received.Price)
}

func TestSubmitterEmptyTokenStillSent(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil)
	s := &ProductSubmitter{Client: client, Log: discardLogger()}

	outcome := s.Submit(context.Background(), sellForm())

	require.False(t, outcome.OK)
	require.Equal(t, "Unauthorized", outcome.Message)
	// credential attached even when empty; the server does the rejecting
	require.Equal(t, "Bearer", strings.TrimSpace(gotAuth))
}

func TestSubmitterServerErrorMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Nombre requerido"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, StaticToken("t"))
	s := &ProductSubmitter{Client: client, Log: discardLogger()}

	outcome := s.Submit(context.Background(), sellForm())

	require.False(t, outcome.OK)
	require.Equal(t, "Nombre requerido", outcome.Message)
	require.Empty(t, outcome.Redirect)
}

func TestSubmitterEmptyErrorBodyFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, StaticToken("t"))
	s := &ProductSubmitter{Client: client, Log: discardLogger()}

	outcome := s.Submit(context.Background(), sellForm())

	require.False(t, outcome.OK)
	require.Equal(t, FallbackMessage, outcome.Message)
}

func TestSubmitterNetworkErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close()

	client := NewClient(srv.URL, StaticToken("t"))
	s := &ProductSubmitter{Client: client, Log: discardLogger()}

	outcome := s.Submit(context.Background(), sellForm())

	require.False(t, outcome.OK)
	require.Equal(t, FallbackMessage, outcome.Message)
}
