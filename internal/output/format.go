// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"assigna/internal/service"
)

const (
	// TableRule is the rule printed around the task table.
	TableRule = "---------------------------------------------"

	// TableHeader is the task table column header.
	TableHeader = "Id  | Task Title               | Deadline    "

	// NoData is printed instead of an empty table.
	NoData = "No data found to display"
)

// FormatTaskTable writes tasks as the Id/Title/Deadline table.
// An empty slice prints NoData instead.
func FormatTaskTable(w io.Writer, tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, NoData)
		return
	}
	fmt.Fprintln(w, TableRule)
	fmt.Fprintln(w, TableHeader)
	fmt.Fprintln(w, TableRule)
	for _, t := range tasks {
		FormatTaskRow(w, t)
	}
	fmt.Fprintln(w, TableRule)
}

// FormatTaskRow formats one table row.
// Format: "{ID:<3} | {TITLE:<24} | {DEADLINE:<12}"
func FormatTaskRow(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "%-3d | %-24s | %-12s\n", t.ID, normalizeTitle(t.Title), t.Deadline.String())
}

// FormatTaskInfo writes the detail block for one task.
func FormatTaskInfo(w io.Writer, t service.Task) {
	field(w, "Id", fmt.Sprint(t.ID))
	field(w, "Title", normalizeTitle(t.Title))
	field(w, "Category", t.CategoryName)
	field(w, "Deadline", t.Deadline.String())
	field(w, "Priority", t.Priority())
	field(w, "Assignee", t.AssigneeName)
	field(w, "Note", oneLine(t.Note))
	field(w, "Status", t.Status())
	field(w, "Asi.Note", oneLine(t.AssigneeNote()))
}

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-10s:    %s\n", label, value)
}

// FormatMembers writes "{ID}. {FIRST NAME}" per member.
func FormatMembers(w io.Writer, members []service.Member) {
	for _, m := range members {
		fmt.Fprintf(w, "%d. %s\n", m.ID, m.FirstName)
	}
}

// FormatCategories writes "{ID}. {NAME}" per category.
func FormatCategories(w io.Writer, categories []service.Category) {
	for _, c := range categories {
		fmt.Fprintf(w, "%d. %s\n", c.ID, c.Name)
	}
}

// FormatPriorities writes "- {NAME}" per priority.
func FormatPriorities(w io.Writer, priorities []service.Priority) {
	for _, p := range priorities {
		fmt.Fprintf(w, "- %s\n", p.Name)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = oneLine(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
