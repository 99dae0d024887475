package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// TestMetricHelpDescription checks that every registered metric carries a
// non-empty help string.
func TestMetricHelpDescription(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry, nil)

	// Gather metrics
	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	// Check each metric has a non-empty help description
	for _, mf := range metricFamilies {
		name := mf.GetName()
		help := mf.GetHelp()

		if help == "" {
			t.Errorf("Metric '%s' has an empty help description", name)
		}

		if len(strings.TrimSpace(help)) == 0 {
			t.Errorf("Metric '%s' has a help description with only whitespace", name)
		}
	}
}

// TestMetricNamingConvention checks that every metric name is snake_case and
// carries the service namespace.
func TestMetricNamingConvention(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)

	// Vec metrics only appear in Gather once a label combination exists
	m.IncrementTransition("close")
	m.IncrementLedgerWriteFailure("transaction_create")
	m.RecordHTTPRequest("GET", "/api/proposals", 200, 0)
	m.RecordDBQuery("select", "proposals", 0, nil)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatal("Expected at least one metric family")
	}

	for _, mf := range metricFamilies {
		name := mf.GetName()

		if !strings.HasPrefix(name, namespace+"_") {
			t.Errorf("Metric '%s' is missing the '%s_' namespace prefix", name, namespace)
		}
		if strings.ToLower(name) != name {
			t.Errorf("Metric '%s' is not snake_case", name)
		}
		if strings.Contains(name, "-") {
			t.Errorf("Metric '%s' contains a hyphen", name)
		}
	}
}
