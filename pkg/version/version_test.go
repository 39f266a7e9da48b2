package version

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.10.0", "1.9.3", true},
		{"1.9.3", "1.10.0", false},
		{"v2.0.0", "1.99.99", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"1.3", "1.2.9", true},
		{"garbage", "0.0.1", false},
	}

	for _, tt := range tests {
		if got := IsNewer(tt.latest, tt.current); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

func TestFetchLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.4.2"}`))
	}))
	defer srv.Close()

	got, err := fetchLatestVersion(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetchLatestVersion() error = %v", err)
	}
	if got != "1.4.2" {
		t.Errorf("version = %q, want 1.4.2", got)
	}
}

func TestFetchLatestVersion_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := fetchLatestVersion(srv.Client(), srv.URL); err == nil {
		t.Error("expected error for 403")
	}
}

func TestFormatVersion(t *testing.T) {
	oldV, oldC, oldB := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldV, oldC, oldB }()

	Version, Commit, BuildTime = "1.0.0", "", ""
	if got := FormatVersion(); got != "1.0.0 (development)" {
		t.Errorf("FormatVersion() = %q", got)
	}

	Version, Commit, BuildTime = "1.0.0", "abc1234", "2025-06-01T00:00:00Z"
	if got := FormatVersion(); got != "1.0.0 (commit: abc1234, built at: 2025-06-01T00:00:00Z)" {
		t.Errorf("FormatVersion() = %q", got)
	}
}
