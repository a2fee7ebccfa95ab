package cmd

import (
	"fmt"

	"classctl/pkg/config"
	"classctl/pkg/schedule"
	"classctl/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage classctl configuration",
	Long:        "View or edit your local configuration settings (dataset file, default room, timezone).",
	Annotations: map[string]string{skipSchedule: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setDataset, _ := cmd.Flags().GetString("set-dataset")
		setRoom, _ := cmd.Flags().GetString("set-room")
		setTimezone, _ := cmd.Flags().GetString("set-timezone")
		show, _ := cmd.Flags().GetBool("show")

		changed := false

		if cmd.Flags().Changed("set-dataset") {
			path, err := config.AbsDatasetPath(setDataset)
			if err != nil {
				return err
			}
			if path != "" {
				sched, err := schedule.LoadFile(path, schedule.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Printf("Dataset has %d sections.\n", sched.Len())
			}
			cfg.DatasetPath = path
			changed = true
		}

		if cmd.Flags().Changed("set-room") {
			cfg.DefaultRoom = setRoom
			cfg.RememberRoom(setRoom)
			changed = true
		}

		if cmd.Flags().Changed("set-timezone") {
			probe := &config.AppConfig{Timezone: setTimezone}
			if _, err := probe.Location(); err != nil {
				return err
			}
			cfg.Timezone = setTimezone
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			logger.Debug("configuration saved", zap.Any("config", cfg))
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		if show {
			fmt.Println(tui.DescribeConfig(cfg))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow. A broken dataset
		// still leaves the settings reachable, rooms are typed in then.
		sched, err := loadSchedule(runCfg.DatasetPath)
		if err != nil {
			logger.Warn("room list unavailable", zap.Error(err))
		}
		return tui.RunConfigTUI(sched)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-dataset", "", "Use this timetable file by default (empty resets to bundled)")
	configCmd.Flags().String("set-room", "", "Room to prefill interactive searches with")
	configCmd.Flags().String("set-timezone", "", "IANA timezone for \"currently happening\" (empty for local)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
