package cmd

import (
	"fmt"
	"time"

	"classctl/pkg/schedule"
	"classctl/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the classes happening now or at a chosen day and hour",
	Long: `List the sections that meet on the selected day at the selected hour.
Day and hour default to the current time in the configured timezone.`,
	Example: `  classctl now
  classctl now --room 07
  classctl now --day Th --slot 9
  classctl now --day thursday --hour 16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, _ := cmd.Flags().GetString("room")
		day, _ := cmd.Flags().GetString("day")
		hour, _ := cmd.Flags().GetInt("hour")
		slot, _ := cmd.Flags().GetInt("slot")

		criteria, err := buildCriteria(env.Clock(), room, day,
			hour, cmd.Flags().Changed("hour"),
			slot, cmd.Flags().Changed("slot"))
		if err != nil {
			return err
		}

		logger.Debug("filtering timetable",
			zap.String("room", criteria.Room),
			zap.Stringer("day", criteria.Day),
			zap.Int("hour", criteria.Hour))

		results := schedule.FilterByRoomAndTime(env.Schedule.Sections(), criteria.Room, criteria.Day, criteria.Hour)

		title := "Currently Happening, " + tui.DescribeTime(criteria)
		if criteria.Room != "" {
			title = fmt.Sprintf("Classes in rooms matching %q, %s", criteria.Room, tui.DescribeTime(criteria))
		}
		fmt.Print(tui.RenderSections(title, results))
		return nil
	},
}

// buildCriteria turns the flag values into filter criteria, defaulting day and hour to now.
func buildCriteria(now time.Time, room, day string, hour int, hourSet bool, slot int, slotSet bool) (schedule.Criteria, error) {
	c := schedule.Criteria{Room: room, Day: now.Weekday(), Hour: now.Hour()}

	if day != "" {
		d, err := schedule.ParseWeekday(day)
		if err != nil {
			return c, err
		}
		c.Day = d
	}

	if hourSet && slotSet {
		return c, fmt.Errorf("use either --hour or --slot, not both")
	}
	if hourSet {
		if hour < 0 || hour > 23 {
			return c, fmt.Errorf("hour %d out of range 0-23", hour)
		}
		c.Hour = hour
	}
	if slotSet {
		h, ok := schedule.ResolveSlot(slot)
		if !ok {
			return c, fmt.Errorf("unknown hour slot %d, expected 1-10", slot)
		}
		c.Hour = h
	}

	return c, nil
}

func init() {
	rootCmd.AddCommand(nowCmd)
	nowCmd.Flags().StringP("room", "r", "", "Only rooms containing this text")
	nowCmd.Flags().StringP("day", "d", "", "Day code (Su M T W Th F S), name, or 0-6")
	nowCmd.Flags().Int("hour", 0, "Clock hour 0-23")
	nowCmd.Flags().IntP("slot", "s", 0, "Hour slot 1-10 (Hour 1 = 08:00)")
}
