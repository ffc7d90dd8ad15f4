package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewPromMux_ServesMetrics(t *testing.T) {
	srv := httptest.NewServer(NewPromMux())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected scrape output")
	}
}
