package main

import (
	"os"

	"github.com/spf13/cobra"

	"stats-dashboard-service/pkg/log"
)

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "stats-dashboard",
	Short: "stats-dashboard serves chart and table data for the analytics dashboard",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (defaults and env only when empty)")

	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(seriesCommand)
}
