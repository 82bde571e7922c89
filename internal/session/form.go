package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"assigna/internal/output"
	"assigna/internal/service"
)

// keep is the answer that leaves a field unchanged when editing.
const keep = "-"

const lookupFailed = "Error, enter any number to continue:"

// taskForm asks for every task field. With current set, answering keep
// reuses its value and the returned edit carries its ID.
func (s *Session) taskForm(ctx context.Context, current *service.Task) (service.TaskEdit, error) {
	var (
		t   service.TaskEdit
		err error
	)
	if current != nil {
		t.ID = current.ID
	}

	s.prompt("Enter task title:")
	if t.Title, err = s.readField(ctx, current, func(c *service.Task) string { return c.Title }); err != nil {
		return t, err
	}

	s.prompt("Select category:")
	if cats := s.svc.AllCategories(ctx); cats.Success && len(cats.Data) > 0 {
		output.FormatCategories(s.out, cats.Data)
	} else {
		s.prompt(lookupFailed)
	}
	if t.CategoryID, err = s.readID(ctx, current, func(c *service.Task) int { return c.CategoryID }); err != nil {
		return t, err
	}

	s.prompt("Enter due date (yyyy-MM-dd):")
	first, err := s.readField(ctx, current, func(c *service.Task) string { return c.Deadline.String() })
	if err != nil {
		return t, err
	}
	if t.Deadline, err = s.readDeadline(ctx, first); err != nil {
		return t, err
	}

	s.prompt("Select task assignee:")
	if members := s.svc.TeamMembers(ctx); members.Success && len(members.Data) > 0 {
		output.FormatMembers(s.out, members.Data)
	} else {
		s.prompt(lookupFailed)
	}
	if t.MemberID, err = s.readID(ctx, current, func(c *service.Task) int { return c.AssigneeID }); err != nil {
		return t, err
	}

	s.prompt("Select task priority:")
	if prios := s.svc.Priorities(ctx); prios.Success && len(prios.Data) > 0 {
		output.FormatPriorities(s.out, prios.Data)
	} else {
		s.prompt("Error, enter High, Medium or Low to continue:")
	}
	priority, err := s.readField(ctx, current, func(c *service.Task) string { return c.Priority() })
	if err != nil {
		return t, err
	}
	if t.Priority, err = CapitalizePriority(priority); err != nil {
		return t, err
	}

	s.prompt("Enter task note:")
	if t.Note, err = s.readField(ctx, current, func(c *service.Task) string { return c.Note }); err != nil {
		return t, err
	}
	s.println()
	return t, nil
}

func (s *Session) readField(ctx context.Context, current *service.Task, get func(*service.Task) string) (string, error) {
	line, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == keep && current != nil {
		return get(current), nil
	}
	return line, nil
}

func (s *Session) readID(ctx context.Context, current *service.Task, get func(*service.Task) int) (int, error) {
	line, err := s.readLine(ctx)
	if err != nil {
		return 0, err
	}
	if line == keep && current != nil {
		return get(current), nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalid, line)
	}
	return n, nil
}

// readDeadline re-prompts until value is a yyyy-MM-dd date not before today.
func (s *Session) readDeadline(ctx context.Context, value string) (string, error) {
	for {
		switch err := CheckDeadline(value, s.now()); err {
		case nil:
			return value, nil
		case ErrDeadlineFormat:
			s.prompt("Not valid format, enter due date (yyyy-MM-dd):")
		default:
			s.prompt("Please enter future date:")
		}

		var err error
		if value, err = s.readLine(ctx); err != nil {
			return "", err
		}
	}
}

// Deadline validation errors.
var (
	ErrDeadlineFormat = fmt.Errorf("%w: deadline must be yyyy-MM-dd", errInvalid)
	ErrDeadlinePast   = fmt.Errorf("%w: deadline is in the past", errInvalid)
)

// CheckDeadline validates a yyyy-MM-dd deadline against today's date in now's location.
func CheckDeadline(value string, now time.Time) error {
	d, err := time.ParseInLocation(service.DateLayout, value, now.Location())
	if err != nil {
		return ErrDeadlineFormat
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrDeadlinePast
	}
	return nil
}

// CapitalizePriority upper-cases the first letter of a priority name.
func CapitalizePriority(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("%w: priority required", errInvalid)
	}
	r, size := utf8.DecodeRuneInString(p)
	return string(unicode.ToUpper(r)) + p[size:], nil
}
