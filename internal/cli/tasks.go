package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/roy-bentley/todo/internal/board"
	"github.com/roy-bentley/todo/internal/dto"
	"github.com/roy-bentley/todo/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in order",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			if err := applyFilter(s.board, filter); err != nil {
				return err
			}
			if err := s.board.Refresh(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "list tasks", err)
			}
			return s.out.Tasks(s.board.Visible())
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "show only one status (all|todo|in_progress|done)")
	return cmd
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task at the end of the list",
		Args:  minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			task, err := s.board.Create(cmd.Context(), strings.Join(args, " "), models.TaskStatus(status))
			if err != nil {
				return WrapExitError(ExitFailure, "create task", err)
			}
			return s.out.Task(task)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "initial status (default todo)")
	return cmd
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			task, err := s.client.GetTask(cmd.Context(), id)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("get task %d", id), err)
			}
			return s.out.Task(task)
		},
	}
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	var title, status string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title or status",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req dto.UpdateTaskRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("status") {
				st := models.TaskStatus(status)
				req.Status = &st
			}
			if req.Title == nil && req.Status == nil {
				return NewExitError(ExitCommandError, "nothing to change: pass --title or --status")
			}

			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			task, err := s.board.Update(cmd.Context(), id, req)
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("update task %d", id), err)
			}
			return s.out.Task(task)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&status, "status", "s", "", "new status (todo|in_progress|done)")
	return cmd
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a task to another status",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			task, err := s.board.SetStatus(cmd.Context(), id, models.TaskStatus(args[1]))
			if err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("update task %d", id), err)
			}
			return s.out.Task(task)
		},
	}
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			if err := s.board.Delete(cmd.Context(), id); err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("delete task %d", id), err)
			}
			s.out.Message("deleted task %d", id)
			return s.out.Tasks(s.board.Visible())
		},
	}
}

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a task within the (filtered) list",
		Long: `Move the task at position <from> to position <to>.

Positions are 0-based and count only the tasks visible under --filter.
The task lands at index <to> of the full list, and the list is refetched.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			if err := applyFilter(s.board, filter); err != nil {
				return err
			}
			if err := s.board.Refresh(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "list tasks", err)
			}

			moved, err := s.board.Reorder(cmd.Context(), from, to)
			if errors.Is(err, board.ErrNoSuchPosition) {
				return WrapExitError(ExitCommandError, "invalid source", err)
			}
			if err != nil {
				return WrapExitError(ExitFailure, "move task", err)
			}
			if !moved {
				s.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("reorder skipped")
				s.out.Message("nothing to move")
			}
			return s.out.Tasks(s.board.Visible())
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "positions count only this status (all|todo|in_progress|done)")
	return cmd
}

func applyFilter(b *board.Board, value string) error {
	f, err := board.ParseFilter(value)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --filter", err)
	}
	return b.SetFilter(f)
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid task id %q", arg))
	}
	return id, nil
}

func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid position %q", arg))
	}
	return pos, nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "usage: "+cmd.UseLine(), err)
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "usage: "+cmd.UseLine(), err)
		}
		return nil
	}
}
