package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() == name {
			return fam
		}
	}
	return nil
}

func TestObserveRequestRecordsCountAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/menu-items", "200", 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/menu-items", "200", 40*time.Millisecond)

	counter := findMetric(t, reg, "http_requests_total")
	if counter == nil {
		t.Fatal("expected http_requests_total to be registered")
	}
	if got := counter.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}

	hist := findMetric(t, reg, "http_request_duration_seconds")
	if hist == nil {
		t.Fatal("expected http_request_duration_seconds to be registered")
	}
	if got := hist.GetMetric()[0].GetHistogram().GetSampleCount(); got != 2 {
		t.Fatalf("expected 2 samples, got %v", got)
	}
}

func TestObserveRequestNormalizesEmptyLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("", "", "", time.Millisecond)

	counter := findMetric(t, reg, "http_requests_total")
	for _, label := range counter.GetMetric()[0].GetLabel() {
		if label.GetValue() != "unknown" {
			t.Fatalf("expected unknown label, got %s", label.GetValue())
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Second)
	m.IncInflight()
	m.DecInflight()
}
