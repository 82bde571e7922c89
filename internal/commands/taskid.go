package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/service"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the task ID from the first positional argument.
// IDs are the server's positive integers, as shown in the Id column.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// taskID parses the task ID or reports the problem. ok is false after a report.
func taskID(args []string, errOut io.Writer) (id int, ok bool) {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, false
	}
	return id, true
}

// reportStatus prints "ok" for a successful mutation or the server's message
// for a failed one. An empty response counts as a failure.
func reportStatus(cfg *config.Config, st service.Status, out, errOut io.Writer) int {
	if !st.Success {
		fmt.Fprintf(errOut, "error: backend error: %s\n", failureMessage(st.Message))
		return exitcode.BackendError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func failureMessage(msg string) string {
	if msg == "" {
		return "empty response"
	}
	return msg
}

// requireLead reports an error unless the stored role is team lead.
func requireLead(svc service.Service, errOut io.Writer) bool {
	if svc.Role() != service.RoleLead {
		fmt.Fprintf(errOut, "error: command requires the %s role\n", service.RoleLead)
		return false
	}
	return true
}

// requireMember reports an error when the stored role is team lead.
func requireMember(svc service.Service, errOut io.Writer) bool {
	if svc.Role() == service.RoleLead {
		fmt.Fprintf(errOut, "error: command requires the %s role\n", service.RoleMember)
		return false
	}
	return true
}
