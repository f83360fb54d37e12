package admin

import (
	"context"
	"log/slog"

	"github.com/mchmarny/adminnav/pkg/logger"
	"github.com/mchmarny/adminnav/pkg/metric"
	"github.com/mchmarny/adminnav/pkg/registry"
	"github.com/mchmarny/adminnav/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
)

// Build information, set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Options returns the server options mounting the navigation API, health and
// metrics endpoints. Request counts are registered in promReg.
func Options(reg *registry.Registry, promReg *prometheus.Registry) []server.Option {
	requests := metric.NewCounterWithRegistry(promReg,
		"adminnav_navigation_requests_total",
		"Number of navigation requests served, by status code.",
		"code")

	return []server.Option{
		server.WithRegistry(promReg),
		server.WithPrometheusMetrics(),
		server.WithSimpleHealth(),
		server.WithGet(NavigationPath, Handler(reg, WithRequestCounter(requests))),
	}
}

// Run serves the navigation assembled by reg until ctx is canceled.
// promReg must be the registry reg was created with, or nil. An empty
// logLevel falls back to LOG_LEVEL.
func Run(ctx context.Context, reg *registry.Registry, promReg *prometheus.Registry, logLevel string, opt ...server.Option) error {
	if logLevel == "" {
		logger.SetDefaultLogger("adminnav", Version)
	} else {
		logger.SetDefaultLoggerWithLevel("adminnav", Version, logLevel)
	}
	slog.Info("starting adminnav",
		"commit", Commit,
		"date", Date,
		"providers", reg.Providers(),
	)

	if promReg == nil {
		promReg = prometheus.NewRegistry()
	}

	opts := append([]server.Option{server.WithErrorLog(logger.NewLogLogger(slog.LevelError))}, opt...)
	opts = append(opts, Options(reg, promReg)...)

	return server.New(opts...).Serve(ctx)
}
