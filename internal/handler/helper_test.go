package handler

import (
	"github.com/mateusfigmelo/msc-backend/pkg/config"
)

// testMetricsConfig gives the metrics package a prefix for test binaries.
// InitMetrics registers on the default registry, so it runs once per binary.
func testMetricsConfig() *config.Config {
	return &config.Config{
		Metrics: config.MetricsConfig{Prefix: "msclub_test"},
	}
}
