package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roy-bentley/todo/internal/dto"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The API call failed or was rejected
	ExitCommandError = 2 // Bad arguments or configuration
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not an ExitError map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

const rowFormat = "%-4v %-12v %-5v %s\n"

// OutputFormatter renders tasks as a text table or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Tasks writes a list of tasks
func (f *OutputFormatter) Tasks(tasks []dto.TaskDTO) error {
	if f.Format == "json" {
		if tasks == nil {
			tasks = []dto.TaskDTO{}
		}
		return f.json(tasks)
	}

	if len(tasks) == 0 {
		_, err := fmt.Fprintln(f.Writer, "no tasks")
		return err
	}
	if _, err := fmt.Fprintf(f.Writer, rowFormat, "ID", "STATUS", "ORDER", "TITLE"); err != nil {
		return err
	}
	for _, t := range tasks {
		if _, err := fmt.Fprintf(f.Writer, rowFormat, t.ID, t.Status, t.OrderIndex, t.Title); err != nil {
			return err
		}
	}
	return nil
}

// Task writes a single task
func (f *OutputFormatter) Task(task dto.TaskDTO) error {
	if f.Format == "json" {
		return f.json(task)
	}
	return f.Tasks([]dto.TaskDTO{task})
}

// Message writes a status line. It is suppressed in JSON mode.
func (f *OutputFormatter) Message(format string, args ...any) {
	if f.Format == "json" {
		return
	}
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
