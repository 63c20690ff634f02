package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stats-dashboard-service/internal/config"
	"stats-dashboard-service/internal/observability"
	seriesHttp "stats-dashboard-service/internal/series/adapters/http/fiber"
	seriesUsecase "stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/internal/server"
	statsHttp "stats-dashboard-service/internal/stats/adapters/http/fiber"
	statsUsecase "stats-dashboard-service/internal/stats/core/usecase"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	logrus.Infof("provider: %s, addr: %s", conf.Provider.Kind, conf.Addr)

	loc, err := conf.LabelLocation()
	if err != nil {
		logrus.WithError(err).Fatal("label location")
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	source, closeSource, err := openDataSource(conf, metrics)
	if err != nil {
		logrus.WithError(err).Fatal("open data source")
	}
	defer closeSource()

	// Usecases
	getSeriesUC := seriesUsecase.NewGetSeriesUseCase(source, seriesUsecase.WithLabelLocation(loc))
	overviewUC := statsUsecase.NewGetOverviewUseCase(source, conf.Dashboard.LatestNotes).WithLabelLocation(loc)
	listUC := statsUsecase.NewListRecordsUseCase(source)

	srv := server.NewServer(conf.Addr, server.Handlers{
		Series: seriesHttp.NewSeriesHandler(getSeriesUC),
		Stats:  statsHttp.NewStatsHandler(overviewUC, listUC),
	}, metrics, prometheus.DefaultGatherer)

	go func() {
		if err := srv.Start(); err != nil {
			logrus.WithError(err).Error("fiber stopped")
		}
	}()
	logrus.Infof("server started on %s", conf.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logrus.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("fiber shutdown error")
	}
	logrus.Info("server exiting")
}
