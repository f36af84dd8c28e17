package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaik-1036/delhi-metro-data-analysis/internal/logging"
)

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		realIP     string
		forwarded  string
		want       string
	}{
		{"no trusted proxies", nil, "10.0.0.1:5000", "203.0.113.9", "", "10.0.0.1:5000"},
		{"untrusted source ignores header", []string{"10.0.0.0/8"}, "192.0.2.1:5000", "203.0.113.9", "", "192.0.2.1:5000"},
		{"trusted cidr uses X-Real-IP", []string{"10.0.0.0/8"}, "10.0.0.1:5000", "203.0.113.9", "", "203.0.113.9"},
		{"trusted bare ip", []string{"10.0.0.1"}, "10.0.0.1:5000", "203.0.113.9", "", "203.0.113.9"},
		{"first forwarded entry", []string{"10.0.0.0/8"}, "10.0.0.1:5000", "", "203.0.113.9, 10.0.0.2", "203.0.113.9"},
		{"real ip wins over forwarded", []string{"10.0.0.0/8"}, "10.0.0.1:5000", "203.0.113.9", "198.51.100.7", "203.0.113.9"},
		{"invalid header kept out", []string{"10.0.0.0/8"}, "10.0.0.1:5000", "not-an-ip", "", "10.0.0.1:5000"},
		{"ipv6 proxy", []string{"::1"}, "[::1]:5000", "2001:db8::1", "", "2001:db8::1"},
		{"invalid trusted entry skipped", []string{"bogus", "10.0.0.0/8"}, "10.0.0.1:5000", "203.0.113.9", "", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "hello", "INFO"},
		{"not found", http.StatusNotFound, "", "WARN"},
		{"server error", http.StatusServiceUnavailable, "down", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(logging.New(&buf, "debug", "json"))
			defer slog.SetDefault(prev)

			h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log is not JSON: %v (%s)", err, buf.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["bytes"] != float64(len(tt.body)) {
				t.Errorf("bytes = %v, want %d", entry["bytes"], len(tt.body))
			}
			if entry["path"] != "/api/summary" {
				t.Errorf("path = %v", entry["path"])
			}
		})
	}
}
