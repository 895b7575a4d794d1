package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/guidance-schedule-api/internal/service"
	"github.com/noah-isme/guidance-schedule-api/pkg/config"
	"github.com/noah-isme/guidance-schedule-api/pkg/logger"
)

// Options carries collaborators the commands share.
type Options struct {
	Clock service.Clock
	Hours service.WorkingHours
}

// NewRootCommand builds the guidancectl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Hours == (service.WorkingHours{}) {
		opts.Hours = service.DefaultWorkingHours()
	}

	var (
		verbose bool
		log     = zap.NewNop()
	)

	root := &cobra.Command{
		Use:   "guidancectl",
		Short: "Guidance session schedule tools",
		Long: `guidancectl drives the guidance schedule screen from a terminal.

Examples:
  guidancectl repl
  guidancectl repl --start-hour 7 --end-hour 15
  guidancectl format 2026-10-15 09:30`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := logger.New(config.EnvDevelopment, config.LogConfig{Level: "debug", Format: "console"})
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every event to stderr")

	root.AddCommand(newReplCommand(&opts, func() *zap.Logger { return log }))
	root.AddCommand(newFormatCommand())
	return root
}
