package commands_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"assigna/internal/commands"
	"assigna/internal/config"
	"assigna/internal/exitcode"
	"assigna/internal/output"
	"assigna/internal/service"
	"assigna/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// runWithFlags parses args with the command's flags before running it.
func runWithFlags(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string) (stdout, stderr string, code int) {
	t.Helper()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return runCommand(t, cmd, svc, fs.Args(), false)
}

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func date(s string) service.Date {
	d, err := time.Parse(service.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return service.Date{Time: d}
}

func leadService() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.LoginAs(service.RoleLead)
	return svc
}

func memberService() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.LoginAs(service.RoleMember)
	return svc
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "assigna 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "assigna tasks", "Common flags:", "Commands:", "tasks (ls)", "Show the stored role and token expiry"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for tasks command
func TestTasksCommand_Table(t *testing.T) {
	svc := leadService()
	tasks := []service.Task{
		{ID: 1, Title: "Write report", Deadline: date("2024-02-01"), Pending: true},
		{ID: 2, Title: "Fix printer", Deadline: date("2024-02-03"), Complete: true},
	}
	for _, task := range tasks {
		svc.AddTask(task)
	}

	stdout, stderr, code := runWithFlags(t, &commands.TasksCmd{}, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	var want bytes.Buffer
	output.FormatTaskTable(&want, tasks)
	if stdout != want.String() {
		t.Errorf("expected %q, got %q", want.String(), stdout)
	}
}

func TestTasksCommand_Filter(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{Title: "Open item", Pending: true, HighPriority: true})
	svc.AddTask(service.Task{Title: "Closed item", Complete: true, LowPriority: true})

	tests := []struct {
		filter  string
		want    string
		notWant string
	}{
		{"pending", "Open item", "Closed item"},
		{"completed", "Closed item", "Open item"},
		{"high", "Open item", "Closed item"},
		{"low", "Closed item", "Open item"},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			stdout, _, code := runWithFlags(t, &commands.TasksCmd{}, svc, []string{"--filter", tt.filter})
			if code != exitcode.Success {
				t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("expected %q in output, got %q", tt.want, stdout)
			}
			if strings.Contains(stdout, tt.notWant) {
				t.Errorf("did not expect %q in output, got %q", tt.notWant, stdout)
			}
		})
	}
}

func TestTasksCommand_Empty(t *testing.T) {
	stdout, _, code := runWithFlags(t, &commands.TasksCmd{}, leadService(), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout)
	}
}

func TestTasksCommand_EmptyQuiet(t *testing.T) {
	cmd := &commands.TasksCmd{}
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	_ = fs.Parse(nil)

	stdout, _, code := runCommand(t, cmd, leadService(), nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	// Quiet mode should suppress "no tasks found"
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestTasksCommand_UnknownFilter(t *testing.T) {
	_, stderr, code := runWithFlags(t, &commands.TasksCmd{}, leadService(), []string{"--filter", "urgent"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown filter: urgent\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestTasksCommand_BackendFailure(t *testing.T) {
	svc := leadService()
	svc.ListFailure = service.MsgRequestFailed

	_, stderr, code := runWithFlags(t, &commands.TasksCmd{}, svc, nil)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Request not succeeded\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for info command
func TestInfoCommand_RoutesByRole(t *testing.T) {
	for _, role := range []string{service.RoleLead, service.RoleMember} {
		t.Run(role, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.LoginAs(role)
			task := service.Task{ID: 4, Title: "Audit", Deadline: date("2024-03-01"), Pending: true}
			svc.AddTask(task)

			stdout, stderr, code := runCommand(t, &commands.InfoCmd{}, svc, []string{"4"}, false)

			if code != exitcode.Success {
				t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
			}
			if len(svc.InfoCalls) != 1 || svc.InfoCalls[0] != role {
				t.Errorf("expected one %s info call, got %v", role, svc.InfoCalls)
			}
			var want bytes.Buffer
			output.FormatTaskInfo(&want, task)
			if stdout != want.String() {
				t.Errorf("expected %q, got %q", want.String(), stdout)
			}
		})
	}
}

func TestInfoCommand_NotFound(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.InfoCmd{}, leadService(), []string{"9"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 9\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestInfoCommand_BadID(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "error: task id required\n"},
		{[]string{"abc"}, "error: invalid task id: abc\n"},
		{[]string{"0"}, "error: invalid task id: 0\n"},
	}
	for _, tt := range tests {
		_, stderr, code := runCommand(t, &commands.InfoCmd{}, leadService(), tt.args, false)
		if code != exitcode.UserError {
			t.Errorf("args %v: expected exit code %d, got %d", tt.args, exitcode.UserError, code)
		}
		if stderr != tt.want {
			t.Errorf("args %v: expected %q, got %q", tt.args, tt.want, stderr)
		}
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := leadService()
	cmd := &commands.AddCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	stdout, stderr, code := runWithFlags(t, cmd, svc, []string{
		"--category", "2", "--deadline", "2024-01-15", "--priority", "high",
		"--member", "3", "--note", "first draft", "Write", "report",
	})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	want := service.NewTask{
		Title:      "Write report",
		CategoryID: 2,
		Deadline:   "2024-01-15",
		Priority:   "High",
		MemberID:   3,
		Note:       "first draft",
	}
	if len(svc.Saved) != 1 || svc.Saved[0] != want {
		t.Errorf("expected saved %+v, got %+v", want, svc.Saved)
	}
}

func TestAddCommand_TodayAllowed(t *testing.T) {
	cmd := &commands.AddCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	_, stderr, code := runWithFlags(t, cmd, leadService(), []string{
		"-c", "1", "-d", "2024-01-10", "-p", "Low", "-m", "1", "-t", "Today",
	})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
}

func TestAddCommand_Validation(t *testing.T) {
	base := map[string]string{
		"--category": "1", "--deadline": "2024-01-15", "--priority": "low", "--member": "1", "--title": "T",
	}
	tests := []struct {
		name     string
		override map[string]string
		want     string
	}{
		{"no title", map[string]string{"--title": ""}, "error: title required\n"},
		{"no category", map[string]string{"--category": "0"}, "error: category id required\n"},
		{"no member", map[string]string{"--member": "0"}, "error: member id required\n"},
		{"past deadline", map[string]string{"--deadline": "2024-01-01"}, "error: deadline is in the past: 2024-01-01\n"},
		{"bad deadline", map[string]string{"--deadline": "15/01/2024"}, "error: invalid deadline: \"15/01/2024\" (want yyyy-MM-dd)\n"},
		{"no priority", map[string]string{"--priority": " "}, "error: priority required\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args []string
			for _, f := range []string{"--category", "--deadline", "--priority", "--member", "--title"} {
				v := base[f]
				if o, ok := tt.override[f]; ok {
					v = o
				}
				args = append(args, f+"="+v)
			}
			svc := leadService()
			cmd := &commands.AddCmd{}
			cmd.SetClock(func() time.Time { return fixedNow })

			_, stderr, code := runWithFlags(t, cmd, svc, args)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
			if len(svc.Saved) != 0 {
				t.Errorf("expected nothing saved, got %+v", svc.Saved)
			}
		})
	}
}

func TestAddCommand_RequiresLead(t *testing.T) {
	cmd := &commands.AddCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	_, stderr, code := runWithFlags(t, cmd, memberService(), []string{
		"-c", "1", "-d", "2024-01-15", "-p", "low", "-m", "1", "Task",
	})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: command requires the team-lead role\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_BackendRefusal(t *testing.T) {
	svc := leadService()
	svc.MutationFailure = "Member not found"
	cmd := &commands.AddCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	_, stderr, code := runWithFlags(t, cmd, svc, []string{
		"-c", "1", "-d", "2024-01-15", "-p", "low", "-m", "99", "Task",
	})

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Member not found\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for edit command
func TestEditCommand_KeepsUnsetFields(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{
		ID:           1,
		Title:        "Old title",
		Deadline:     date("2023-12-01"),
		Note:         "keep me",
		CategoryID:   2,
		AssigneeID:   3,
		HighPriority: true,
		Pending:      true,
	})
	cmd := &commands.EditCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	stdout, stderr, code := runWithFlags(t, cmd, svc, []string{"--title", "New title", "1"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	want := service.TaskEdit{
		ID:         1,
		Title:      "New title",
		CategoryID: 2,
		Deadline:   "2023-12-01",
		Priority:   "High",
		MemberID:   3,
		Note:       "keep me",
	}
	if len(svc.Edits) != 1 || svc.Edits[0] != want {
		t.Errorf("expected edit %+v, got %+v", want, svc.Edits)
	}
}

func TestEditCommand_NewDeadlineChecked(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{ID: 1, Title: "T", Deadline: date("2024-02-01"), CategoryID: 1, AssigneeID: 1})
	cmd := &commands.EditCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	_, stderr, code := runWithFlags(t, cmd, svc, []string{"--deadline", "2024-01-09", "1"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: deadline is in the past: 2024-01-09\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Edits) != 0 {
		t.Errorf("expected no edit, got %+v", svc.Edits)
	}
}

func TestEditCommand_ReuseKeepsClock(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{ID: 1, Title: "Old", Deadline: date("2020-01-01"), CategoryID: 1, AssigneeID: 1})
	cmd := &commands.EditCmd{}
	cmd.SetClock(func() time.Time { return fixedNow })

	if _, stderr, code := runWithFlags(t, cmd, svc, []string{"--title", "Renamed", "1"}); code != exitcode.Success {
		t.Fatalf("first edit: expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}

	_, stderr, code := runWithFlags(t, cmd, svc, []string{"--deadline", "2021-06-01", "1"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: deadline is in the past: 2021-06-01\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Edits) != 1 {
		t.Errorf("expected only the first edit, got %+v", svc.Edits)
	}
}

func TestEditCommand_UnknownTask(t *testing.T) {
	_, stderr, code := runWithFlags(t, &commands.EditCmd{}, leadService(), []string{"--title", "x", "5"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 5\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	svc := leadService()
	id := svc.AddTask(service.Task{Title: "Remove me"})

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	if _, ok := svc.Task(id); ok {
		t.Error("task should have been deleted")
	}
}

func TestRmCommand_Quiet(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{Title: "Remove me"})

	stdout, _, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestRmCommand_NotFound(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RmCmd{}, leadService(), []string{"3"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Task not found\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRmCommand_RequiresLead(t *testing.T) {
	svc := memberService()
	id := svc.AddTask(service.Task{Title: "Keep"})

	_, _, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if _, ok := svc.Task(id); !ok {
		t.Error("task should not have been deleted")
	}
}

// Tests for remind command
func TestRemindCommand(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{Title: "Report"})

	stdout, _, code := runCommand(t, &commands.RemindCmd{}, svc, []string{"1", "due", "tomorrow"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	want := service.Reminder{TaskID: 1, Message: "due tomorrow"}
	if len(svc.Reminders) != 1 || svc.Reminders[0] != want {
		t.Errorf("expected reminder %+v, got %+v", want, svc.Reminders)
	}
}

func TestRemindCommand_NoMessage(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.RemindCmd{}, leadService(), []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: reminder message required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for member commands
func TestNoteCommand(t *testing.T) {
	svc := memberService()
	id := svc.AddTask(service.Task{Title: "Report", Pending: true})

	stdout, _, code := runCommand(t, &commands.NoteCmd{}, svc, []string{"1", "halfway", "done"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	task, _ := svc.Task(id)
	if task.UserNote != "halfway done" {
		t.Errorf("expected note %q, got %q", "halfway done", task.UserNote)
	}
}

func TestNoteCommand_NoText(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.NoteCmd{}, memberService(), []string{"1", " "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: note text required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDoneCommand(t *testing.T) {
	svc := memberService()
	id := svc.AddTask(service.Task{Title: "Report", Pending: true})

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	task, _ := svc.Task(id)
	if !task.Complete || task.Pending {
		t.Errorf("expected task completed, got %+v", task)
	}
}

func TestDoneCommand_RequiresMember(t *testing.T) {
	svc := leadService()
	svc.AddTask(service.Task{Title: "Report", Pending: true})

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: command requires the team-member role\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for lookup commands
func TestLookupCommands(t *testing.T) {
	svc := leadService()
	members := []service.Member{{ID: 1, UserName: "ann", FirstName: "Ann"}, {ID: 2, UserName: "bob", FirstName: "Bob"}}
	for _, m := range members {
		svc.AddMember(m)
	}
	categories := []service.Category{{ID: 1, Name: "Finance"}}
	svc.AddCategory(categories[0])

	var wantMembers, wantCategories, wantPriorities bytes.Buffer
	output.FormatMembers(&wantMembers, members)
	output.FormatCategories(&wantCategories, categories)
	output.FormatPriorities(&wantPriorities, svc.Priorities(context.Background()).Data)

	tests := map[string]string{
		"members":    wantMembers.String(),
		"categories": wantCategories.String(),
		"priorities": wantPriorities.String(),
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, ok := commands.DefaultRegistry.Find(name)
			if !ok {
				t.Fatalf("command %s not registered", name)
			}
			stdout, stderr, code := runCommand(t, cmd, svc, nil, false)
			if code != exitcode.Success {
				t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
			}
			if stdout != want {
				t.Errorf("expected %q, got %q", want, stdout)
			}
		})
	}
}

func TestLookupCommand_Empty(t *testing.T) {
	cmd, _ := commands.DefaultRegistry.Find("members")

	stdout, _, code := runCommand(t, cmd, leadService(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no members found\n" {
		t.Errorf("expected %q, got %q", "no members found\n", stdout)
	}
}

func TestLookupCommand_Failure(t *testing.T) {
	svc := leadService()
	svc.LookupFailure = service.MsgInternalError
	cmd, _ := commands.DefaultRegistry.Find("categories")

	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: Internal error\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for the registry
func TestRegistry_Aliases(t *testing.T) {
	aliases := map[string]string{
		"ls":     "tasks",
		"show":   "info",
		"create": "add",
		"delete": "rm",
		"forgot": "forgot-password",
		"reset":  "reset-password",
		"signup": "register",
		"menu":   "shell",
	}
	for alias, name := range aliases {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %s not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %s: expected %s, got %s", alias, name, cmd.Name())
		}
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.RmCmd{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(&commands.RmCmd{}); err == nil {
		t.Error("expected error registering a duplicate name")
	}
	if len(r.All()) != 1 {
		t.Errorf("expected 1 command, got %d", len(r.All()))
	}
}

func TestRegistry_AllSorted(t *testing.T) {
	all := commands.DefaultRegistry.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Name() >= all[i].Name() {
			t.Errorf("commands not sorted: %s before %s", all[i-1].Name(), all[i].Name())
		}
	}
}
