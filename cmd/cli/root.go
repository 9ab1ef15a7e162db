package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhyrak/wolf-scheduler/internal/config"
	"github.com/rhyrak/wolf-scheduler/internal/csvio"
	"github.com/rhyrak/wolf-scheduler/internal/logger"
	"github.com/rhyrak/wolf-scheduler/internal/scheduler"
)

// Program parameters
var (
	cfg   *config.Configuration
	store *csvio.Store
)

var rootCmd = &cobra.Command{
	Use:   "wolfsched",
	Short: "Browse a course catalog and plan a schedule",
	Long: `wolfsched loads a course catalog from a record file, builds a schedule
from the courses you pick and exports it as course records, a CSV table or
an iCalendar file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		if catalog, _ := cmd.Flags().GetString("catalog"); catalog != "" {
			cfg.CatalogFile = catalog
		}

		logger.Configure(logger.Config{
			Level:  cfg.LogLevel,
			Pretty: cfg.LogPretty,
		})
		store = csvio.NewStore(cfg.DelimiterRune())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScheduler() (*scheduler.Scheduler, error) {
	sched, err := scheduler.New(cfg.CatalogFile, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.CatalogFile, err)
	}
	logger.Debug().Str("catalog", cfg.CatalogFile).Int("courses", len(sched.CourseCatalog())).Msg("catalog loaded")
	return sched, nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "wolfsched.yml", "Configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Course record file, overrides the configured catalog")
}
