package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
)

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "format YYYY-MM-DD HH:mm",
		Short:   "Print the card label for a date and time",
		Example: "  guidancectl format 2026-10-15 09:30   # Thursday, 15 09:30",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := models.ParseDate(args[0])
			if err != nil {
				return err
			}
			t, err := models.ParseTimeOfDay(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.FormatDisplay(models.ScheduleEntry{Date: d, Time: t}))
			return nil
		},
	}
}
