// Package session implements the interactive menu-driven console.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"assigna/internal/output"
	"assigna/internal/service"
)

// Messages shown to the user.
const (
	MsgTryAgain   = "Error, please try again"
	MsgSuccessful = "Successful"
	MsgLoggedOut  = "You are logged out"
	MsgCompleted  = "Already completed"
	MsgBadLogin   = "Username or password is incorrect"
	MsgWelcome    = "HELLO, WELCOME TO ASSIGNA CONSOLE APPLICATION"
	confirmLogout = "Are you sure to logout? [Yes / No]"
)

// errInvalid marks input that cannot be used. The enclosing step prints
// MsgTryAgain and starts over.
var errInvalid = errors.New("invalid input")

// Session drives the start, lead and member menus over a line-oriented
// reader. It issues one call at a time.
type Session struct {
	svc    service.Service
	in     *lineReader
	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

// New creates a session reading answers from in and writing menus to out.
func New(svc service.Service, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		svc:    svc,
		in:     newLineReader(in),
		out:    out,
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
}

// SetClock overrides the clock used to reject past deadlines (for testing).
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Run shows the start menu until the user logs out from it or input ends.
// Running out of input is not an error; a cancelled ctx is.
func (s *Session) Run(ctx context.Context) error {
	defer s.in.stop()

	err := s.start(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) start(ctx context.Context) error {
	for {
		s.menu("Please select option to continue", 32, "Register", "Login", "Forgot password", "Logout")
		choice, err := s.readInt(ctx)
		if err != nil {
			if err = s.handleInputErr(err); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			err = s.register(ctx)
		case 2:
			err = s.login(ctx)
		case 3:
			err = s.forgotPassword(ctx)
		default:
			var yes bool
			yes, err = s.confirm(ctx, confirmLogout)
			if err == nil && yes {
				s.println()
				s.println(MsgLoggedOut)
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

// handleInputErr swallows errInvalid after telling the user; anything else ends
// the session.
func (s *Session) handleInputErr(err error) error {
	if errors.Is(err, errInvalid) {
		s.tryAgain()
		return nil
	}
	return err
}

func (s *Session) tryAgain() {
	s.println()
	s.println(MsgTryAgain)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) prompt(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) menu(title string, rule int, items ...string) {
	s.println()
	s.println(title)
	s.println(strings.Repeat("-", rule))
	s.options(items...)
}

func (s *Session) options(items ...string) {
	for i, item := range items {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item)
	}
	s.println()
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	return s.in.next(ctx)
}

func (s *Session) readInt(ctx context.Context) (int, error) {
	line, err := s.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalid, line)
	}
	return n, nil
}

func (s *Session) confirm(ctx context.Context, question string) (bool, error) {
	s.prompt(question)
	answer, err := s.readLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// showTasks prints the task table. With back set it waits for any line
// before returning, as the list screens do.
func (s *Session) showTasks(ctx context.Context, tasks []service.Task, back bool) error {
	s.println()
	output.FormatTaskTable(s.out, tasks)
	if len(tasks) == 0 {
		return nil
	}
	s.println()
	if !back {
		return nil
	}
	s.options("Back")
	_, err := s.readLine(ctx)
	return err
}

// listTasks runs list operation n (1-6) of the list menus.
func (s *Session) listTasks(ctx context.Context, n int) service.Result[[]service.Task] {
	lists := []func(context.Context) service.Result[[]service.Task]{
		s.svc.AllTasks,
		s.svc.Pendings,
		s.svc.Completed,
		s.svc.HighPriority,
		s.svc.MediumPriority,
		s.svc.LowPriority,
	}
	return lists[n-1](ctx)
}

// listMenu returns the lead and member list menu ending with last.
func listMenu(last string) []string {
	return []string{
		"All tasks",
		"Pending tasks",
		"Completed tasks",
		"High priority tasks",
		"Medium priority tasks",
		"Low priority tasks",
		"Task Information",
		last,
	}
}

// lineReader delivers input lines without blocking cancellation.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error // set before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	l := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(l.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case l.lines <- sc.Text():
			case <-l.done:
				return
			}
		}
		l.err = sc.Err()
	}()
	return l
}

// next returns the next trimmed line, io.EOF at end of input.
func (l *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			if l.err != nil {
				return "", l.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (l *lineReader) stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}
