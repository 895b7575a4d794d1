package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
)

const replHelp = `commands:
  add                 open the date picker for a new entry
  menu <i>            open the action menu for entry i
  edit <i>            edit entry i
  date YYYY-MM-DD     submit the date picker
  time HH:mm          submit the time picker
  delete <i>          delete entry i
  dismiss             close the open picker or menu
  import <label>      append an entry such as "Thursday, 15 09:30"
  list                print the entries
  quit                exit`

var errQuit = errors.New("quit")

func newReplCommand(opts *Options, log func() *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive a schedule screen line by line from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &repl{
				manager: service.NewScheduleManager(opts.Hours, opts.Clock),
				out:     cmd.OutOrStdout(),
				logger:  log(),
			}
			return r.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().IntVar(&opts.Hours.StartHour, "start-hour", opts.Hours.StartHour, "first bookable hour")
	cmd.Flags().IntVar(&opts.Hours.EndHour, "end-hour", opts.Hours.EndHour, "last bookable hour, inclusive")
	return cmd
}

type repl struct {
	manager *service.ScheduleManager
	out     io.Writer
	logger  *zap.Logger
}

func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := r.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			var rej *service.RejectionError
			if errors.As(err, &rej) {
				r.logger.Debug("event rejected", zap.String("input", line), zap.String("reason", string(rej.Reason)), zap.String("detail", rej.Detail))
				fmt.Fprintf(r.out, "rejected: %s\n", rej.Reason)
				continue
			}
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (r *repl) exec(line string) error {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	r.logger.Debug("event", zap.String("command", command), zap.String("arg", arg))

	var err error
	switch command {
	case "add":
		r.manager.BeginAdd()
	case "menu":
		err = withIndex(arg, r.manager.SelectEntry)
	case "edit":
		err = withIndex(arg, r.manager.BeginEdit)
	case "delete":
		err = withIndex(arg, r.manager.DeleteEntry)
	case "date":
		var d models.Date
		if d, err = models.ParseDate(arg); err == nil {
			err = r.manager.ProposeDate(d)
		}
	case "time":
		var t models.TimeOfDay
		if t, err = models.ParseTimeOfDay(arg); err == nil {
			err = r.manager.ProposeTime(t)
		}
	case "dismiss":
		r.manager.Dismiss()
	case "import":
		err = r.manager.ImportDisplay([]string{arg})
	case "list":
		r.printEntries()
		return nil
	case "help":
		fmt.Fprintln(r.out, replHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", command)
	}
	if err != nil {
		return err
	}
	r.printView()
	return nil
}

func (r *repl) printEntries() {
	view := r.manager.View()
	if len(view.Entries) == 0 {
		fmt.Fprintln(r.out, "(no entries)")
		return
	}
	for _, entry := range view.Entries {
		fmt.Fprintf(r.out, "[%d] %s\n", entry.Index, entry.Display)
	}
}

func (r *repl) printView() {
	view := r.manager.View()
	r.printEntries()
	dialog := view.Dialog
	switch dialog.Mode {
	case models.DialogDatePicker:
		if dialog.PrefillDate != nil {
			fmt.Fprintf(r.out, "pick a date (was %s)\n", dialog.PrefillDate)
			return
		}
		fmt.Fprintln(r.out, "pick a date")
	case models.DialogTimePicker:
		if dialog.PrefillTime != nil {
			fmt.Fprintf(r.out, "pick a time for %s (was %s)\n", dialog.PendingDate, dialog.PrefillTime)
			return
		}
		fmt.Fprintf(r.out, "pick a time for %s\n", dialog.PendingDate)
	case models.DialogActionMenu:
		fmt.Fprintf(r.out, "entry %d: edit or delete\n", *dialog.Index)
	}
}

func withIndex(arg string, fn func(int) error) error {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("entry index must be an integer: %q", arg)
	}
	return fn(i)
}
