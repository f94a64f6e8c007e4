package ifsc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

func TestFetchDetails(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotUA = r.URL.Path, r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"BANK":"State Bank of India","BRANCH":"Kolkata Main","CITY":"KOLKATA","STATE":"WEST BENGAL","IFSC":"SBIN0000001"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", WithUserAgent("ifsc-enricher-test"))
	d, err := c.FetchDetails(context.Background(), "sbin0000001")
	if err != nil {
		t.Fatalf("FetchDetails error: %v", err)
	}

	if gotPath != "/SBIN0000001" {
		t.Errorf("path = %q, want /SBIN0000001", gotPath)
	}
	if gotUA != "ifsc-enricher-test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	want := types.Details{Institution: "State Bank of India", Branch: "Kolkata Main", City: "KOLKATA", State: "WEST BENGAL", Code: "SBIN0000001"}
	if d != want {
		t.Errorf("details = %+v, want %+v", d, want)
	}
}

func TestFetchDetailsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `"Not Found"`},
		{"server error", http.StatusInternalServerError, "oops"},
		{"bad json", http.StatusOK, "{"},
		{"missing bank", http.StatusOK, `{"BRANCH":"X"}`},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(tt.body))
		}))

		_, err := NewClient(srv.URL).FetchDetails(context.Background(), "SBIN0000001")
		srv.Close()

		var le *types.LookupError
		if !errors.As(err, &le) {
			t.Errorf("%s: err = %v, want *types.LookupError", tt.name, err)
			continue
		}
		if le.Service != "ifsc" || le.Subject != "SBIN0000001" {
			t.Errorf("%s: LookupError = %+v", tt.name, le)
		}
		if tt.status != http.StatusOK && le.StatusCode != tt.status {
			t.Errorf("%s: StatusCode = %d, want %d", tt.name, le.StatusCode, tt.status)
		}
	}
}

func TestFetchDetailsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).FetchDetails(context.Background(), "SBIN0000001")
	var le *types.LookupError
	if !errors.As(err, &le) || le.StatusCode != 0 {
		t.Fatalf("err = %v, want LookupError without status", err)
	}
}

func TestFetchDetailsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient("http://127.0.0.1:1", WithRateLimit(1)).FetchDetails(ctx, "SBIN0000001")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"BANK":"HDFC Bank","BRANCH":"Sandoz House"}`))
	}))
	defer srv.Close()

	r := NewResolver(NewValidator(NewRegistry(Bank{Code: "HDFC"})), NewClient(srv.URL))
	if !r.Validate("HDFC0000001") || r.Validate("HDFC1000001") {
		t.Fatal("Resolver.Validate disagrees with Validator")
	}
	d, err := r.FetchDetails(context.Background(), "HDFC0000001")
	if err != nil || d.Branch != "Sandoz House" {
		t.Errorf("FetchDetails = %+v, %v", d, err)
	}
}

func TestResolverNamesBankOfUnknownBranch(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	r := NewResolver(NewValidator(NewRegistry(Bank{Code: "SBIN", Name: "State Bank of India"})), NewClient(srv.URL))

	tests := []struct {
		code     string
		wantName bool
	}{
		{"SBIN0999999", true},
		{"KLGB0999999", false},
	}
	for _, tt := range tests {
		_, err := r.FetchDetails(context.Background(), tt.code)
		var le *types.LookupError
		if !errors.As(err, &le) || !le.NotFound() {
			t.Fatalf("%s: err = %v, want not-found *types.LookupError", tt.code, err)
		}
		if got := strings.Contains(err.Error(), "State Bank of India"); got != tt.wantName {
			t.Errorf("%s: error %q names bank = %v, want %v", tt.code, err, got, tt.wantName)
		}
	}
}
