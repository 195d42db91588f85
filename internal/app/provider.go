package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/riskapi/internal/db"
	"github.com/ferdiebergado/riskapi/internal/middleware"
	"github.com/ferdiebergado/riskapi/internal/platform/router"
	"github.com/ferdiebergado/riskapi/internal/platform/validation"
	"github.com/ferdiebergado/riskapi/internal/system"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Provider struct {
	DB        *sql.DB
	Migrator  system.Migrator
	Validator validation.Validator
	Router    router.Router
	Metrics   *middleware.Metrics
}

func newProvider(dbConn *sql.DB) (*Provider, error) {
	migrator, err := db.NewMigrator(dbConn)
	if err != nil {
		return nil, fmt.Errorf("new migrator: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbConn, "riskapi"),
	)

	provider := &Provider{
		DB:        dbConn,
		Migrator:  migrator,
		Validator: validation.NewPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Metrics:   middleware.NewMetrics(reg),
	}

	return provider, nil
}
