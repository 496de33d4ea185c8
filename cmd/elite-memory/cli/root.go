package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const usageText = `
🧠 Elite Longterm Memory CLI

Commands:
  init     Initialize memory system in current directory
  today    Create today's daily log file
  status   Check memory system health
  help     Show this help

Usage:
  npx elite-longterm-memory init
  npx elite-longterm-memory status

`

// options holds the persistent flags shared by every command.
type options struct {
	dir        string
	configPath string
	verbose    bool
	logJSON    bool
}

// NewRootCmd creates the root command. Unknown command names are not an
// error: they print a notice followed by the usage block.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "elite-memory [command]",
		Short: "Scaffold and inspect agent memory files",
		Long: `elite-memory keeps an agent's working memory on disk: a session-state file,
a curated long-term memory file and one log per day.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				fmt.Fprintf(out, "Unknown command: %s\n", args[0])
			}
			printUsage(out)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.dir, "dir", "C", "", "Workspace directory (default: current directory)")
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml or .json)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&opts.logJSON, "log-json", false, "Emit diagnostic logs as JSON")

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newTodayCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())
	cmd.SetHelpCommand(newHelpCmd())

	return cmd
}

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show this help",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printUsage(cmd.OutOrStdout())
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
