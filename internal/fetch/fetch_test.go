package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{"plain", "https://example.com/pkg/htop_3.2.deb", "htop_3.2.deb", false},
		{"query string ignored", "https://example.com/htop.rpm?token=abc", "htop.rpm", false},
		{"no path", "https://example.com", "", true},
		{"trailing slash", "https://example.com/pkg/", "pkg", false},
		{"root path", "https://example.com/", "", true},
		{"invalid url", "://nope", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileName(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("FileName(%q) expected error", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("FileName(%q) error: %v", tt.url, err)
			}
			if got != tt.expected {
				t.Errorf("FileName(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	payload := []byte("not really a deb")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := New(10*time.Second, false)

	path, err := c.Fetch(context.Background(), srv.URL+"/htop_3.2_amd64.deb", dir)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if filepath.Base(path) != "htop_3.2_amd64.deb" {
		t.Errorf("written file = %q, want htop_3.2_amd64.deb", filepath.Base(path))
	}
	if filepath.Dir(path) != dir {
		t.Errorf("file written outside destDir: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("content = %q, want %q", data, payload)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(10*time.Second, false)
	if _, err := c.Fetch(context.Background(), srv.URL+"/missing.deb", t.TempDir()); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("slow"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(10*time.Second, false)
	if _, err := c.Fetch(ctx, srv.URL+"/x.deb", t.TempDir()); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestFetchBadURL(t *testing.T) {
	c := New(time.Second, false)
	if _, err := c.Fetch(context.Background(), "https://example.com/", t.TempDir()); err == nil {
		t.Error("expected error for url without a file name")
	}
}
