package cmd

import (
	"fmt"
	"os"

	"classctl/pkg/config"
	"classctl/pkg/logging"
	"classctl/pkg/schedule"
	"classctl/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// skipSchedule marks commands that run without loading the timetable
const skipSchedule = "skip-schedule"

var (
	datasetPath string
	logLevel    string

	logger *zap.Logger
	runCfg *config.AppConfig
	env    *tui.Env
)

var rootCmd = &cobra.Command{
	Use:   "classctl",
	Short: "Browse a class timetable from the terminal",
	Long: `classctl lets students search the class timetable by room, filter it by
day and hour, and see which classes are happening right now.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		runCfg = cfg.WithEnv()
		if datasetPath != "" {
			runCfg.DatasetPath = datasetPath
		}
		if logLevel != "" {
			runCfg.LogLevel = logLevel
		}

		logger, err = logging.New(runCfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cmd.Annotations[skipSchedule] == "true" {
			return nil
		}

		loc, err := runCfg.Location()
		if err != nil {
			return err
		}

		sched, err := loadSchedule(runCfg.DatasetPath)
		if err != nil {
			return err
		}

		env = &tui.Env{Schedule: sched, Config: runCfg, Location: loc}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func loadSchedule(path string) (*schedule.Schedule, error) {
	var sched *schedule.Schedule
	var err error

	if path == "" {
		logger.Debug("loading bundled dataset")
		sched, err = schedule.LoadBundled(schedule.WithLogger(logger))
	} else {
		logger.Debug("loading dataset file", zap.String("path", path))
		sched, err = schedule.LoadFile(path, schedule.WithLogger(logger))
	}
	if err != nil {
		return nil, fmt.Errorf("could not load timetable: %w", err)
	}

	if sched.Len() == 0 {
		logger.Warn("timetable has no sections", zap.String("path", path))
	}
	return sched, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "Timetable file (.json, .yaml) instead of the bundled one")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
