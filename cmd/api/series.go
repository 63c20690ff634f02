package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stats-dashboard-service/internal/config"
	"stats-dashboard-service/internal/observability"
	"stats-dashboard-service/internal/series/core/domain"
	"stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/pkg/log"
)

var (
	seriesRange   string
	seriesTimeout time.Duration
)

var seriesCommand = &cobra.Command{
	Use:       "series <users|conversations>",
	Short:     "Print the bucketed counts of a collection",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.CollectionUsers), string(domain.CollectionConversations)},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeries(domain.Collection(args[0]), domain.TimeRange(seriesRange)); err != nil {
			logrus.WithError(err).Fatal("series")
		}
	},
}

func init() {
	seriesCommand.Flags().StringVarP(&seriesRange, "range", "r", string(domain.Range7d), "Time range (12h, 1d, 2d, 7d, 1w, 30d, 1m, 3m, 6m)")
	seriesCommand.Flags().DurationVar(&seriesTimeout, "timeout", 30*time.Second, "Overall fetch timeout")
}

func runSeries(collection domain.Collection, r domain.TimeRange) error {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		return err
	}
	loc, err := conf.LabelLocation()
	if err != nil {
		return err
	}

	// Private registry, nothing is scraped from a one-shot command.
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	source, closeSource, err := openDataSource(conf, metrics)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), seriesTimeout)
	defer cancel()
	ctx = log.WithRequestId(ctx, "cli")

	series, err := usecase.NewGetSeriesUseCase(source, usecase.WithLabelLocation(loc)).
		Execute(ctx, usecase.GetSeriesInput{Collection: collection, Range: r})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", "BUCKET", "COUNT")
	for _, p := range series.Points() {
		fmt.Fprintf(w, "%s\t%d\n", p.Label, p.Count)
	}
	fmt.Fprintf(w, "%s\t%d\n", "TOTAL", series.Total())
	return w.Flush()
}
