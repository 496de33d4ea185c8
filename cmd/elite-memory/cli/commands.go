package cli

import (
	"context"

	"github.com/felixgeelhaar/elite-memory/internal/memory"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize memory system in current directory",
		Args:  cobra.ArbitraryArgs,
		RunE: opts.runWith("init", func(ctx context.Context, sys *memory.System) error {
			_, err := sys.Init(ctx)
			return err
		}),
	}
}

func newTodayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Create today's daily log file",
		Args:  cobra.ArbitraryArgs,
		RunE: opts.runWith("today", func(ctx context.Context, sys *memory.System) error {
			_, err := sys.Today(ctx)
			return err
		}),
	}
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check memory system health",
		Args:  cobra.ArbitraryArgs,
		RunE: opts.runWith("status", func(ctx context.Context, sys *memory.System) error {
			_, err := sys.Status(ctx)
			return err
		}),
	}
}
