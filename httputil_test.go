package frontier

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDiskCacheRoundTripper(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/quote", func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"price": 42}`)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := &http.Client{Transport: &diskCache{http.DefaultTransport}}
	// The cache key is the request URL plus the current day; a nonce keeps
	// this run independent from any earlier one.
	nonce := time.Now().UnixNano()
	addr := fmt.Sprintf("%s/quote?nonce=%d", server.URL, nonce)

	var payload struct {
		Price float64 `json:"price"`
	}
	if err := jwget(client, addr, &payload); err != nil {
		t.Fatalf("first jwget: %v", err)
	}
	if payload.Price != 42 {
		t.Fatalf("first read price = %v, want 42", payload.Price)
	}

	payload.Price = 0
	if err := jwget(client, addr, &payload); err != nil {
		t.Fatalf("second jwget: %v", err)
	}
	if payload.Price != 42 {
		t.Errorf("cached read price = %v, want 42", payload.Price)
	}
	if hits != 1 {
		t.Errorf("server served %d requests, want 1 (second read must come from the cache)", hits)
	}

	// Error responses are not cached: every retry reaches the server.
	missing := fmt.Sprintf("%s/missing?nonce=%d", server.URL, nonce)
	for i := 0; i < 2; i++ {
		if err := jwget(client, missing, &payload); err == nil {
			t.Fatal("jwget on a 404 must fail")
		}
	}
	if hits != 3 {
		t.Errorf("server served %d requests, want 3 (404s must not be cached)", hits)
	}
}
