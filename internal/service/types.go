// Package service defines the backend-agnostic interface for auth and task operations.
package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Messages reported in failed envelopes.
const (
	MsgOK            = "Ok"
	MsgInternalError = "Internal error"
	MsgRequestFailed = "Request not succeeded"
)

// Roles as they appear in the access token's role claim.
const (
	RoleLead   = "team-lead"
	RoleMember = "team-member"
)

// DateLayout is the wire and display format for deadlines.
const DateLayout = "2006-01-02"

// AuthResult is returned by every auth call.
type AuthResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ResetToken   string `json:"resetToken,omitempty"`
}

// Result is the envelope for calls that return data.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Status is the envelope for mutations.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// InternalError is the result reported for transport and decoding failures.
func InternalError[T any]() Result[T] {
	return Result[T]{Message: MsgInternalError}
}

// Date is a calendar date. It decodes the server's DateTime strings and
// encodes as yyyy-MM-dd.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// String formats the date as yyyy-MM-dd.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Task is a task record as returned by the list and info endpoints.
type Task struct {
	ID             int    `json:"tskId"`
	Title          string `json:"tskTitle"`
	Deadline       Date   `json:"deadline"`
	Note           string `json:"tskNote"`
	CategoryID     int    `json:"catId"`
	CategoryName   string `json:"catName"`
	AssigneeID     int    `json:"userId"`
	AssigneeName   string `json:"firstName"`
	HighPriority   bool   `json:"priHigh"`
	MediumPriority bool   `json:"priMedium"`
	LowPriority    bool   `json:"priLow"`
	Pending        bool   `json:"pending"`
	Complete       bool   `json:"complete"`
	UserNote       string `json:"userNote"`
}

// Priority returns the priority name from the exclusive flags.
func (t Task) Priority() string {
	switch {
	case t.HighPriority:
		return "High"
	case t.MediumPriority:
		return "Medium"
	default:
		return "Low"
	}
}

// Status returns "Pending" or "Completed".
func (t Task) Status() string {
	if t.Pending {
		return "Pending"
	}
	return "Completed"
}

// AssigneeNote returns the assignee's note or "Not available".
func (t Task) AssigneeNote() string {
	if t.UserNote == "" {
		return "Not available"
	}
	return t.UserNote
}

// Member is a team member.
type Member struct {
	ID        int    `json:"userId"`
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
}

// Category is a task category.
type Category struct {
	ID   int    `json:"catId"`
	Name string `json:"catName"`
}

// Priority is a priority level.
type Priority struct {
	ID   int    `json:"priId"`
	Name string `json:"priName"`
}

// Registration is the register request body.
type Registration struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// NewTask is the add-task request body.
type NewTask struct {
	Title      string `json:"tskTitle"`
	CategoryID int    `json:"tskCategory"`
	Deadline   string `json:"deadline"`
	Priority   string `json:"priority"`
	MemberID   int    `json:"member"`
	Note       string `json:"tskNote"`
}

// TaskEdit is the edit-task request body.
type TaskEdit struct {
	ID         int    `json:"tskId"`
	Title      string `json:"tskTitle"`
	CategoryID int    `json:"tskCategory"`
	Deadline   string `json:"deadline"`
	Priority   string `json:"priority"`
	MemberID   int    `json:"member"`
	Note       string `json:"tskNote"`
}

// Reminder is the send-remind request body.
type Reminder struct {
	TaskID  int    `json:"tskId"`
	Message string `json:"message"`
}

// Note is the write-note request body.
type Note struct {
	TaskID   int    `json:"tskId"`
	UserNote string `json:"userNote"`
}

// TaskRef identifies a task in delete-task and mark-done bodies.
type TaskRef struct {
	TaskID int `json:"tskId"`
}
