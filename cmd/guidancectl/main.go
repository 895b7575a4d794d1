package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/noah-isme/guidance-schedule-api/internal/cli"
	"github.com/noah-isme/guidance-schedule-api/internal/service"
	"github.com/noah-isme/guidance-schedule-api/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{Hours: service.DefaultWorkingHours()}
	if cfg, err := config.Load(); err == nil {
		opts.Hours = service.WorkingHours{StartHour: cfg.Schedule.WorkingHourStart, EndHour: cfg.Schedule.WorkingHourEnd}
	}

	if err := cli.NewRootCommand(opts).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
