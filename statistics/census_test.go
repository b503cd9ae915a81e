// File: /statistics/census_test.go
package statistics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestClient_FetchField(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if got := r.URL.Query().Get("get"); got != FieldVolunteered {
			t.Errorf("expected get=%s, got %q", FieldVolunteered, got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[["PES16"],["1"],["1"],["2"]]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, newTestLogger())

	f, err := client.FetchField(context.Background(), FieldVolunteered)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if f["1"] != 2 || f["2"] != 1 {
		t.Fatalf("unexpected frequencies: %v", f)
	}

	// Second fetch must come from the cache
	if _, err := client.FetchField(context.Background(), FieldVolunteered); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("expected 1 upstream request, got %d", got)
	}
}

func TestClient_FetchField_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such variable", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, newTestLogger())

	if _, err := client.FetchField(context.Background(), "BOGUS"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestClient_FailureIsNotCached(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&hits, 1) == 1 {
			http.Error(w, "temporarily unavailable", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[["PTS16E"],["10"]]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, newTestLogger())

	if _, err := client.FetchField(context.Background(), FieldAnnualHours); err == nil {
		t.Fatal("expected first fetch to fail")
	}

	f, err := client.FetchField(context.Background(), FieldAnnualHours)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if f["10"] != 1 {
		t.Fatalf("unexpected frequencies: %v", f)
	}
}

func TestService_DegradesToZeroWhenUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	service := NewService(NewClient(server.URL, newTestLogger()), newTestLogger())

	summary := service.Summarize(context.Background())
	if summary.VolunteerFrequency != 0 || summary.AverageHours != 0 || summary.MedianHours != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestService_Summarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body string
		switch r.URL.Query().Get("get") {
		case FieldVolunteered:
			body = `[["PES16"],["1"],["2"],["2"],["2"]]`
		case FieldYouthActivity:
			body = `[["PES13"],["1"],["2"]]`
		case FieldOnlineShare:
			body = `[["PES16A"],["5"],["5"]]`
		case FieldAnnualHours:
			body = `[["PTS16E"],["1"],["1"],["5"],["10"]]`
		default:
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	service := NewService(NewClient(server.URL, newTestLogger()), newTestLogger())

	summary := service.Summarize(context.Background())
	if !almostEqual(summary.VolunteerFrequency, 0.25) {
		t.Errorf("volunteer frequency: expected 0.25, got %v", summary.VolunteerFrequency)
	}
	if !almostEqual(summary.YouthActivityFrequency, 0.5) {
		t.Errorf("youth activity frequency: expected 0.5, got %v", summary.YouthActivityFrequency)
	}
	if !almostEqual(summary.OnlineFrequency, 1) {
		t.Errorf("online frequency: expected 1, got %v", summary.OnlineFrequency)
	}
	if !almostEqual(summary.AverageHours, 4.25) {
		t.Errorf("average hours: expected 4.25, got %v", summary.AverageHours)
	}
	if summary.MedianHours != 5 {
		t.Errorf("median hours: expected 5, got %d", summary.MedianHours)
	}
}
