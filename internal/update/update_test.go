package update

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewerVersion(t *testing.T) {
	cases := []struct {
		remote, current string
		want            bool
	}{
		{"1.0.1", "1.0.0", true},
		{"1.0.0", "1.0.0", false},
		{"0.9.9", "1.0.0", false},
		{"1.10.0", "1.9.0", true},
		{"2.0", "1.9.9", true},
		{"1.0.0.1", "1.0.0", true},
	}
	for _, tc := range cases {
		if got := newerVersion(tc.remote, tc.current); got != tc.want {
			t.Errorf("newerVersion(%q, %q) = %v, want %v", tc.remote, tc.current, got, tc.want)
		}
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version": "2.0.0", "url": "https://example.com/download"}`))
	}))
	defer srv.Close()

	rel, newer, err := check(srv.Client(), srv.URL, "1.0.0")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !newer {
		t.Fatal("2.0.0 not reported as newer than 1.0.0")
	}
	if rel.URL != "https://example.com/download" {
		t.Errorf("URL = %q", rel.URL)
	}

	_, newer, err = check(srv.Client(), srv.URL, "2.0.0")
	if err != nil || newer {
		t.Fatalf("same version: newer=%v err=%v", newer, err)
	}
}

func TestCheckHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, _, err := check(srv.Client(), srv.URL, "1.0.0"); err == nil {
		t.Fatal("404 response accepted")
	}
}
