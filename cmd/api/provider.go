package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"stats-dashboard-service/internal/config"
	"stats-dashboard-service/internal/observability"
	seriesPorts "stats-dashboard-service/internal/series/core/ports"
	statsRepoPg "stats-dashboard-service/internal/stats/adapters/postgres"
	"stats-dashboard-service/internal/stats/adapters/provider"
	statsPorts "stats-dashboard-service/internal/stats/core/ports"
)

// dataSource is satisfied by both the remote client and the postgres repository.
type dataSource interface {
	statsPorts.StatsProviderPort
	seriesPorts.EventSourcePort
}

// openDataSource returns the configured data source and a func releasing its resources.
func openDataSource(conf *config.Config, metrics *observability.Metrics) (dataSource, func(), error) {
	switch conf.Provider.Kind {
	case config.ProviderKindPostgres:
		db, err := sql.Open("postgres", conf.DB.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}

		db.SetMaxOpenConns(conf.DB.MaxOpenConns)
		db.SetMaxIdleConns(conf.DB.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(conf.DB.MaxLifetime) * time.Minute)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}

		repo := statsRepoPg.NewRepository(statsRepoPg.NewSQLDB(db, conf.QueryTimeout()), conf.ActiveWindow())
		return repo, func() { db.Close() }, nil
	default:
		p := conf.Provider.Paths
		client := provider.NewClient(provider.Options{
			BaseURL:    conf.Provider.BaseURL,
			Token:      conf.Provider.Token,
			Timeout:    conf.ProviderTimeout(),
			RetryCount: conf.Provider.RetryCount,
			Paths: provider.Paths{
				Users:         p.Users,
				Conversations: p.Conversations,
				Education:     p.Education,
				Notes:         p.Notes,
				Summary:       p.Summary,
			},
			Metrics: metrics,
		})
		return client, func() {}, nil
	}
}
