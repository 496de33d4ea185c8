package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/felixgeelhaar/elite-memory/internal/config"
	"github.com/felixgeelhaar/elite-memory/internal/guard"
	"github.com/felixgeelhaar/elite-memory/internal/memory"
	"github.com/felixgeelhaar/elite-memory/internal/observe"
	"github.com/felixgeelhaar/elite-memory/internal/ui"
	"github.com/felixgeelhaar/elite-memory/internal/workspace"
	"github.com/spf13/cobra"
)

func (o *options) observer(cmd *cobra.Command) *observe.Observer {
	if o.logJSON {
		return observe.NewJSON(cmd.ErrOrStderr(), o.verbose)
	}
	return observe.New(cmd.ErrOrStderr(), o.verbose)
}

func (o *options) root() (string, error) {
	if o.dir != "" {
		return o.dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func (o *options) loadConfig(obs *observe.Observer) (config.Config, string, error) {
	root, err := o.root()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, src, err := config.Resolve(root, o.configPath)
	if err != nil {
		return cfg, root, err
	}
	res := cfg.Validate()
	for _, w := range res.Warnings {
		obs.Log().Warn().Str("config", src).Msg(w)
	}
	if err := res.Err(); err != nil {
		return cfg, root, err
	}
	if src != "" {
		obs.Log().Debug().Str("config", src).Msg("loaded config file")
	}
	return cfg, root, nil
}

// newSystem wires the workspace for the command's output streams.
func (o *options) newSystem(cmd *cobra.Command, obs *observe.Observer) (*memory.System, error) {
	cfg, root, err := o.loadConfig(obs)
	if err != nil {
		return nil, err
	}

	store, err := workspace.NewFileStore(root, guard.New(cfg.Guard))
	if err != nil {
		return nil, err
	}

	var opts []memory.Option
	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, memory.WithHome(home))
	}

	return memory.New(store, cfg, obs, ui.NewConsole(cmd.OutOrStdout()), opts...), nil
}

// runWith adapts a memory operation into a cobra RunE that traces it.
func (o *options) runWith(name string, fn func(context.Context, *memory.System) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		obs := o.observer(cmd)
		defer obs.Close()

		sys, err := o.newSystem(cmd, obs)
		if err != nil {
			obs.Log().Error().Err(err).Msg("failed to open workspace")
			return err
		}
		return obs.Trace(cmd.Context(), name, func(ctx context.Context) error {
			return fn(ctx, sys)
		})
	}
}
