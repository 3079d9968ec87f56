// Package cli implements the taskctl command line client.
package cli

import (
	"fmt"
	"slices"

	"github.com/roy-bentley/todo/internal/board"
	"github.com/roy-bentley/todo/internal/client"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	APIURL     string
	Env        string
	ConfigFile string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for taskctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "taskctl - manage an ordered task list",
		Long:          "A command line client for the task API: list, create, update, delete and reorder tasks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "usage: "+c.UseLine(), err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "API base URL including /api (overrides TASKS_API_URL)")
	cmd.PersistentFlags().StringVar(&opts.Env, "env", "", "environment for the fallback URL (development|production)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "YAML config file with an api_url key")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewMoveCommand(opts))

	return cmd
}

// session bundles what a subcommand needs to talk to the API
type session struct {
	client *client.Client
	board  *board.Board
	out    *OutputFormatter
	log    *logrus.Logger
}

func newSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfg, err := LoadClientConfig(opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.ErrorLevel)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(logrus.Fields{"api_url": cfg.APIURL, "env": cfg.Env}).Debug("resolved API endpoint")

	c := client.New(cfg.APIURL, nil)
	return &session{
		client: c,
		board:  board.New(c, log),
		out:    &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
		log:    log,
	}, nil
}
